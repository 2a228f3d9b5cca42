package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Audio errors
var (
	ErrEmptyAudio        = errors.New("audio file is empty")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Pipeline errors
var (
	ErrResultNotFound         = errors.New("no result for session")
	ErrGeneratorNotConfigured = errors.New("text generator not configured")
	ErrTranscriberMissing     = errors.New("transcriber not configured")
	ErrUnsupportedReport      = errors.New("unsupported report format")
	ErrHistoryDisabled        = errors.New("run history is disabled")
	ErrObjectStorage          = errors.New("object storage failed")
)
