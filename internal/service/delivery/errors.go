package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyBatch       = errors.New("empty ingest batch")
)
