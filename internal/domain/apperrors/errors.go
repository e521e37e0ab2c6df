package apperrors

import "errors"

var (
	// ErrSessionNotFound means the client must restart the interview.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNodeNotFound is a graph configuration bug, not a user error.
	ErrNodeNotFound = errors.New("question node not found")

	// ErrGraphConfiguration indicates the interview graph references a node
	// that does not exist. Raised by startup validation, fatal.
	ErrGraphConfiguration = errors.New("invalid question graph configuration")

	// ErrProviderDegraded means speech synthesis is unavailable; turns
	// proceed without audio and this is never surfaced to the end user.
	ErrProviderDegraded = errors.New("speech provider degraded")

	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidToken   = errors.New("invalid token")
)
