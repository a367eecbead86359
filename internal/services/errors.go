package services

import "errors"

var (
	// ErrMissingAPIKey means the feedback provider has no credential configured.
	ErrMissingAPIKey = errors.New("missing API key for feedback provider")

	ErrExtraction          = errors.New("failed to extract text")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFeedbackUnavailable covers transport failures, non-2xx responses and
	// responses without a usable choice.
	ErrFeedbackUnavailable = errors.New("feedback service unavailable")

	ErrPersistence = errors.New("failed to persist submission")
)
