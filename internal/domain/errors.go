package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoFrameYet means the session exists but nothing has been captured.
	// Distinct from an error condition at the HTTP edge.
	ErrNoFrameYet           = errors.New("no frame captured yet")
	ErrSessionInactive      = errors.New("session is not active")
	ErrUnsupportedAction    = errors.New("unsupported input action")
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrInvalidTransferState = errors.New("transfer already in terminal state")
	// ErrFrameSourceConflict: a session's buffer is fed by one origin only;
	// first publisher wins, the other path is refused.
	ErrFrameSourceConflict = errors.New("frame source conflict")
)

// InjectionError wraps an Input Injector failure so the serving path can
// surface a structured reason without crashing other sessions.
type InjectionError struct {
	Reason string
	Err    error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("input injection failed: %s", e.Reason)
}

func (e *InjectionError) Unwrap() error { return e.Err }
