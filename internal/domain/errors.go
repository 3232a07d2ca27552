package domain

import "errors"

var (
	ErrInvalidTranscript       = errors.New("invalid transcript")
	ErrInvalidLLMOutput        = errors.New("invalid JSON response from model")
	ErrSchemaValidation        = errors.New("model output does not match the document schema")
	ErrInvalidSegmentReference = errors.New("source segment index out of range")
	ErrProviderNotConfigured   = errors.New("llm provider is not configured")
	ErrProviderFailure         = errors.New("llm provider request failed")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
