package cache

import "errors"

var (
	// ErrUnknownLayer is returned when a layer hint names no configured layer.
	ErrUnknownLayer = errors.New("unknown cache layer")
	// ErrBadPattern is returned by Invalidate for malformed glob patterns.
	ErrBadPattern = errors.New("bad invalidation pattern")
)
