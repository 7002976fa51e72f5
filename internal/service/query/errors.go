package query

import "errors"

var (
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidCursor         = errors.New("invalid cursor")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
	ErrInvalidPriorityFilter = errors.New("invalid priority filter")
)
