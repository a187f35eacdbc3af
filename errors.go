package mih

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the failures an Index can report, per the error taxonomy
// a build or query operation can surface.
type Kind int

const (
	// EmptyInput is returned by Build when the input code slice has length 0.
	EmptyInput Kind = iota
	// InvalidM is returned by Build when a user-supplied m falls outside [1, W].
	InvalidM
	// InvalidQueryParam is returned by a searcher when K < 1 or K > N, or
	// when a range radius r is negative.
	InvalidQueryParam
	// CorruptStream is returned by UnmarshalBinary/ReadFrom on a malformed
	// or truncated serialized index.
	CorruptStream
	// IoFailure wraps an underlying byte sink/source error during
	// serialization or deserialization.
	IoFailure
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidM:
		return "InvalidM"
	case InvalidQueryParam:
		return "InvalidQueryParam"
	case CorruptStream:
		return "CorruptStream"
	case IoFailure:
		return "IoFailure"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by Build, the searchers' Run methods and
// (de)serialization. It carries a Kind so callers can branch on failure category via
// errors.As, plus a human-readable message and, where applicable, a wrapped
// cause. ParallelRangeSearch and ParallelTopK may instead return the
// context's error when their context is cancelled.
type Error struct {
	Kind Kind
	msg  string
	// cause is the underlying error, if any (e.g. an io.Reader failure).
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("mih: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("mih: %s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

func newErrorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// wrapError attaches cause to a new Error of the given kind, preserving the
// cause's stack trace via github.com/pkg/errors so callers that care can
// still recover the original failure site.
func wrapError(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, msg: msg, cause: errors.Wrap(cause, msg)}
}
