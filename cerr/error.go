package cerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the rich error value threaded through the pipeline: a kind for
// structured handling, a retry status, the operation that failed, an
// optional unit path for per-unit reporting, and the wrapped cause.
type Error struct {
	Op     string
	Kind   Kind
	Status Status
	Unit   string
	cause  error
}

// New creates an Error whose cause is a plain error carrying msg.
func New(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Status: defaultStatus(kind), cause: errors.New(msg)}
}

// Wrap attaches an operation and kind to an existing error, preserving it as
// the cause so errors.Is/errors.As keep working. A nil err yields a nil *Error.
func Wrap(op string, kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Status: defaultStatus(kind), cause: errors.WithStack(err)}
}

// WithUnit attaches the compilation unit path this error was reported against.
func (e *Error) WithUnit(unit string) *Error {
	if e == nil {
		return nil
	}
	e.Unit = unit
	return e
}

func defaultStatus(k Kind) Status {
	if k.Retryable() {
		return Temporary
	}
	return Permanent
}

// Persist transitions a Temporary error to Persistent after exhausted retries.
func (e *Error) Persist() *Error {
	if e == nil {
		return nil
	}
	e.Status = e.Status.Persist()
	return e
}

func (e *Error) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("%s: %s [%s] (%s): %v", e.Unit, e.Op, e.Kind, e.Status, e.cause)
	}
	return fmt.Sprintf("%s [%s] (%s): %v", e.Op, e.Kind, e.Status, e.cause)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the error's kind is retryable and its status
// has not already given up.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable() && e.Status.Retryable()
}
