package session

import "errors"

var (
	// ErrCapacity is returned when no room could be reclaimed for a new session
	ErrCapacity = errors.New("session capacity reached")

	// ErrShuttingDown is returned by CreateSession once Shutdown has begun
	ErrShuttingDown = errors.New("session tracker is shutting down")

	// ErrSessionExists is returned when an explicit id is already active
	ErrSessionExists = errors.New("session already exists")
)
