// Package apperr defines the error taxonomy shared across discipline
package apperr

import (
	"fmt"
)

// Kind classifies an error so that callers can decide how to surface it.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindIO
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "i/o error"
	case KindParse:
		return "parse error"
	}

	return "error"
}

// Error is an application error. Package level values act as templates:
// Fmt and Wrap return copies that still match the template with errors.Is.
type Error struct {
	Cause   error
	Message string
	Kind    Kind
	tmpl    string
}

// Category sentinels. errors.Is(err, apperr.NotFound) reports whether err is
// any not-found error.
var (
	Validation = &Error{Kind: KindValidation}
	NotFound   = &Error{Kind: KindNotFound}
	IO         = &Error{Kind: KindIO}
	Parse      = &Error{Kind: KindParse}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same kind. A target with a message only matches
// errors derived from the same template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Kind != e.Kind {
		return false
	}

	if t.Message == "" {
		return true
	}

	return t.template() == e.template()
}

func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	c := *e
	c.tmpl = e.template()
	c.Message = fmt.Sprintf(c.tmpl, args...)

	return &c
}

// Wrap returns a copy of the error with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.tmpl = e.template()
	c.Cause = err

	return &c
}

// New creates a template error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
