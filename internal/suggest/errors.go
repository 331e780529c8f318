package suggest

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind distinguishes how a suggestion request failed. Cancellation is
// deliberately its own kind: it is reported as an informational outcome,
// never as a failure.
type ErrorKind int

const (
	// KindProvider covers non-2xx responses and malformed response bodies.
	KindProvider ErrorKind = iota
	// KindTransport covers network-level failures reaching the backend.
	KindTransport
	// KindCancelled covers requests aborted through their context.
	KindCancelled
)

// Error is a classified suggestion request failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps err as a suggest.Error if it is not one already.
func Classify(err error) *Error {
	var serr *Error
	if errors.As(err, &serr) {
		return serr
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: KindCancelled, Message: "Request cancelled", Err: err}
	}
	return &Error{Kind: KindTransport, Message: "Could not reach the suggestion backend", Err: err}
}
