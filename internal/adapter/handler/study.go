package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/errors"
	"github.com/johnquangdev/voicenotes/internal/adapter/dto/common"
	studyDTO "github.com/johnquangdev/voicenotes/internal/adapter/dto/study"
	"github.com/johnquangdev/voicenotes/internal/adapter/presenter"
	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/voicenotes/internal/usecase/errors"
	"github.com/johnquangdev/voicenotes/internal/usecase/pipeline"
	"github.com/johnquangdev/voicenotes/internal/usecase/report"
	"github.com/johnquangdev/voicenotes/pkg/runcontext"
)

const defaultRunsLimit = 20

// ReportExporter writes a result bundle out as a downloadable report
type ReportExporter interface {
	Export(ctx context.Context, b *entities.ResultBundle, format string) (*report.Exported, error)
}

// Study handles audio upload, results and report endpoints
type Study struct {
	svc          pipeline.Service
	reports      ReportExporter
	maxUpload    int64
	linksEnabled bool
	logger       *zap.Logger
}

// NewStudy creates a new study handler. linksEnabled reports whether
// exported reports are mirrored to object storage.
func NewStudy(svc pipeline.Service, reports ReportExporter, maxUploadMB int64, linksEnabled bool, logger *zap.Logger) *Study {
	return &Study{
		svc:          svc,
		reports:      reports,
		maxUpload:    maxUploadMB,
		linksEnabled: linksEnabled,
		logger:       logger,
	}
}

// Process uploads an audio file and runs the full pipeline on it
// @Summary      Process audio
// @Description  Transcribes the uploaded audio and generates summary, keywords, notes, flashcards and quiz. The result replaces the session's previous result.
// @Tags         Study
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID (falls back to cookie)"
// @Param        audio         formData  file    true   "Audio file (.wav, .mp3, .m4a)"
// @Param        model         formData  string  false  "Speech model size"  Enums(fast, balanced)
// @Success      200  {object}  studyDTO.ResultResponse
// @Failure      400  {object}  map[string]interface{}  "Missing audio or invalid model"
// @Failure      413  {object}  map[string]interface{}  "Audio too large"
// @Failure      415  {object}  map[string]interface{}  "Unsupported audio format"
// @Failure      500  {object}  map[string]interface{}  "Processing failed"
// @Router       /process [post]
func (h *Study) Process(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	var req studyDTO.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("model must be fast or balanced"))
	}
	modelSize, _ := entities.ParseModelSize(req.Model)

	file, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrAudioMissing())
	}
	if err := pipeline.ValidateAudioName(file.Filename); err != nil {
		return HandleError(h.logger, c, errors.ErrUnsupportedAudioFormat(filepath.Ext(file.Filename)))
	}
	if h.maxUpload > 0 && file.Size > h.maxUpload<<20 {
		return HandleError(h.logger, c, errors.ErrAudioTooLarge(h.maxUpload))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	audioPath, err := saveUpload(file.Filename, src)
	src.Close()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer os.Remove(audioPath)

	bundle, err := h.svc.Process(c.Request().Context(), pipeline.Input{
		SessionID: sessionID,
		AudioName: filepath.Base(file.Filename),
		AudioPath: audioPath,
		ModelSize: modelSize,
	})
	if err != nil {
		return HandleError(h.logger, c, processError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToResultResponse(bundle))
}

// Results returns the session's latest result
// @Summary      Latest result
// @Description  Returns transcript, notes, summary, keywords, flashcards and quiz from the session's most recent run
// @Tags         Study
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID (falls back to cookie)"
// @Success      200  {object}  studyDTO.ResultResponse
// @Failure      404  {object}  map[string]interface{}  "No processed result for this session"
// @Router       /results [get]
func (h *Study) Results(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	bundle, err := h.svc.Latest(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, resultError(sessionID, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToResultResponse(bundle))
}

// Export builds the combined report in the requested format
// @Summary      Export report
// @Description  Exports the session's latest result as PDF or DOCX. With link=true the report is uploaded to object storage and a presigned URL is returned instead of the file.
// @Tags         Study
// @Produce      application/pdf,application/vnd.openxmlformats-officedocument.wordprocessingml.document,json
// @Param        X-Session-ID  header  string  false  "Session ID (falls back to cookie)"
// @Param        format        path    string  true   "Report format"  Enums(pdf, docx)
// @Param        link          query   bool    false  "Return a download link instead of the file"
// @Success      200  {file}    file  "Report file, or studyDTO.ExportResponse with link=true"
// @Failure      400  {object}  map[string]interface{}  "Unsupported format"
// @Failure      404  {object}  map[string]interface{}  "No processed result for this session"
// @Failure      500  {object}  map[string]interface{}  "Export failed"
// @Router       /results/export/{format} [get]
func (h *Study) Export(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	var req studyDTO.ExportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrReportFormatInvalid(req.Format))
	}
	if req.Link && !h.linksEnabled {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("download links need object storage to be enabled"))
	}

	ctx := c.Request().Context()
	bundle, err := h.svc.Latest(ctx, sessionID)
	if err != nil {
		return HandleError(h.logger, c, resultError(sessionID, err))
	}

	exported, err := h.reports.Export(ctx, bundle, req.Format)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUnsupportedReport) {
			return HandleError(h.logger, c, errors.ErrReportFormatInvalid(req.Format))
		}
		if stdErrors.Is(err, usecaseErrors.ErrObjectStorage) {
			return HandleError(h.logger, c, errors.ErrStorageFailed("upload report", err))
		}
		return HandleError(h.logger, c, errors.ErrReportExportFailed(req.Format, err))
	}

	if req.Link {
		return HandleSuccess(h.logger, c, presenter.ToExportResponse(exported))
	}

	if h.logger != nil {
		h.logger.Info("http.response.file",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("file", exported.FileName),
		)
	}
	return c.Attachment(exported.Path, exported.FileName)
}

// Runs lists past pipeline runs
// @Summary      Run history
// @Description  Lists recent pipeline runs for the session, or for every session with all=true. Requires the database.
// @Tags         Study
// @Produce      json
// @Param        X-Session-ID  header  string  false  "Session ID (falls back to cookie)"
// @Param        limit         query   int     false  "Max rows (1-100)"
// @Param        all           query   bool    false  "List runs of every session"
// @Success      200  {object}  common.ListResponse{data=[]studyDTO.RunResponse}
// @Failure      400  {object}  map[string]interface{}  "Invalid limit"
// @Failure      501  {object}  map[string]interface{}  "Run history is disabled"
// @Router       /runs [get]
func (h *Study) Runs(c echo.Context) error {
	var req studyDTO.ListRunsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("limit must be between 1 and 100"))
	}
	if req.Limit == 0 {
		req.Limit = defaultRunsLimit
	}

	sessionID := middleware.GetSessionID(c)
	if req.All {
		sessionID = ""
	}

	runs, err := h.svc.History(c.Request().Context(), sessionID, req.Limit)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrHistoryDisabled) {
			return HandleError(h.logger, c, errors.ErrDBDisabled())
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list study runs", err))
	}

	items := presenter.ToRunResponses(runs)
	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: items,
		Pagination: &common.PaginationResponse{
			Limit: req.Limit,
			Count: len(items),
		},
	})
}

// saveUpload copies an uploaded file to a temp file keeping its extension
func saveUpload(name string, src io.Reader) (string, error) {
	dst, err := os.CreateTemp("", "voicenotes-*"+strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return dst.Name(), nil
}

// processError maps pipeline failures onto API errors
func processError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedFormat):
		return errors.ErrUnsupportedAudioFormat("")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyAudio):
		return errors.ErrInvalidArgument("Audio file is empty")
	case runcontext.IsTimeout(err):
		return errors.ErrProcessingFailed(err)
	}

	var stageErr *pipeline.StageError
	if !stdErrors.As(err, &stageErr) {
		return errors.ErrProcessingFailed(err)
	}

	switch stageErr.Stage {
	case pipeline.StageTranscribe:
		return errors.ErrAITranscriptionFailed(stageErr.Err)
	case pipeline.StageSummarize:
		if stdErrors.Is(stageErr.Err, usecaseErrors.ErrGeneratorNotConfigured) {
			return errors.ErrAIServiceUnavailable("text generation")
		}
		return errors.ErrAISummaryFailed(stageErr.Err)
	case pipeline.StageFlashcards:
		return errors.ErrAIGenerationFailed("flashcards", stageErr.Err)
	case pipeline.StageStore:
		return errors.ErrCacheFailed("save result", stageErr.Err)
	default:
		return errors.ErrProcessingFailed(err)
	}
}

// resultError maps a failed result lookup onto an API error
func resultError(sessionID string, err error) error {
	if stdErrors.Is(err, usecaseErrors.ErrResultNotFound) {
		return errors.ErrResultNotFound(sessionID)
	}
	return errors.ErrCacheFailed("load result", err)
}
