package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrResultNotReady      = errors.New("extraction result not ready")
	ErrJobNotQueueable     = errors.New("job cannot be queued in its current status")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrExtractionFailed    = errors.New("document extraction failed")
)
