package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type returned by handlers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}

// Audio Errors
func ErrAudioMissing() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUDIO_MISSING,
		Message:  "Audio file is required",
	}
}

func ErrUnsupportedAudioFormat(ext string) AppError {
	return AppError{
		HTTPCode: http.StatusUnsupportedMediaType,
		Code:     ErrorCode_AUDIO_UNSUPPORTED_FORMAT,
		Message:  "Unsupported audio format",
	}.WithDetail("extension", ext)
}

func ErrAudioTooLarge(limitMB int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_AUDIO_TOO_LARGE,
		Message:  "Audio file is too large",
	}.WithDetail("limit_mb", fmt.Sprintf("%d", limitMB))
}

// AI Errors
func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

func ErrAISummaryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SUMMARY_FAILED,
		Message:  "Failed to generate summary",
	}
}

func ErrAIGenerationFailed(artifact string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_GENERATION_FAILED,
		Message:  "Failed to generate study material",
	}.WithDetail("artifact", artifact)
}

func ErrAIServiceUnavailable(service string) AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_AI_SERVICE_UNAVAILABLE,
		Message:  "AI service temporarily unavailable",
	}.WithDetail("service", service)
}

// Result & Report Errors
func ErrResultNotFound(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_RESULT_NOT_FOUND,
		Message:  "No processed result for this session",
	}.WithDetail("session_id", sessionID)
}

func ErrReportFormatInvalid(format string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_REPORT_FORMAT_INVALID,
		Message:  "Unsupported report format",
	}.WithDetail("format", format)
}

func ErrReportExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_REPORT_EXPORT_FAILED,
		Message:  "Failed to export report",
	}.WithDetail("format", format)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

// Database Errors
func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

func ErrDBDisabled() AppError {
	return AppError{
		HTTPCode: http.StatusNotImplemented,
		Code:     ErrorCode_DB_DISABLED,
		Message:  "Run history is disabled",
	}
}
