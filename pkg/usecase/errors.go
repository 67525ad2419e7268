package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	ErrReasoningUnavailable = errors.New("reasoning service unavailable")
	ErrCatalogUnavailable   = errors.New("catalog unavailable")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrSessionNotFound      = errors.New("session not found")
)
