package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a rule violation so controllers can map it to an HTTP
// status without string matching.
type Kind string

const (
	KindNotFound        Kind = "NotFound"        // entity absent
	KindInvalidState    Kind = "InvalidState"    // operation not legal from current status
	KindInvalidArgument Kind = "InvalidArgument" // malformed/out-of-range input
	KindConflict        Kind = "Conflict"        // would violate a uniqueness/exclusivity rule
	KindUnavailable     Kind = "Unavailable"     // referenced product disabled
)

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}
func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Detail: fmt.Sprintf(format, args...)}
}
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}
func Unavailable(format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
