package accounting

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure so the HTTP boundary can map it to a
// status code without string matching.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	// KindConsistency marks computed totals diverging from the source
	// document; it signals upstream data corruption and is never
	// silently corrected.
	KindConsistency Kind = "consistency"
)

// Error is a classified domain error.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Consistencyf(format string, args ...any) *Error {
	return &Error{Kind: KindConsistency, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the classification of err, or an empty Kind for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
