package domain

import "errors"

// Domain errors
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrInvalidMode = errors.New("invalid mode")
	ErrLoopStopped = errors.New("event loop stopped")
)
