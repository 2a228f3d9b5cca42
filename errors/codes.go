package errors

// ErrorCode is the machine readable code carried by every AppError
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General (1xxx)
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_PROCESSING_FAILED ErrorCode = 1004

	// Audio (2xxx)
	ErrorCode_AUDIO_MISSING            ErrorCode = 2000
	ErrorCode_AUDIO_UNSUPPORTED_FORMAT ErrorCode = 2001
	ErrorCode_AUDIO_TOO_LARGE          ErrorCode = 2002

	// AI (3xxx)
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001
	ErrorCode_AI_GENERATION_FAILED    ErrorCode = 3002
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3003

	// Results & reports (4xxx)
	ErrorCode_RESULT_NOT_FOUND      ErrorCode = 4000
	ErrorCode_REPORT_EXPORT_FAILED  ErrorCode = 4001
	ErrorCode_REPORT_FORMAT_INVALID ErrorCode = 4002

	// Integrations (5xxx)
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5001

	// Database (6xxx)
	ErrorCode_DB_QUERY_FAILED ErrorCode = 6000
	ErrorCode_DB_DISABLED     ErrorCode = 6001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_AUDIO_MISSING:              "AUDIO_MISSING",
	ErrorCode_AUDIO_UNSUPPORTED_FORMAT:   "AUDIO_UNSUPPORTED_FORMAT",
	ErrorCode_AUDIO_TOO_LARGE:            "AUDIO_TOO_LARGE",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_GENERATION_FAILED:       "AI_GENERATION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_RESULT_NOT_FOUND:           "RESULT_NOT_FOUND",
	ErrorCode_REPORT_EXPORT_FAILED:       "REPORT_EXPORT_FAILED",
	ErrorCode_REPORT_FORMAT_INVALID:      "REPORT_FORMAT_INVALID",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_DB_DISABLED:                "DB_DISABLED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
