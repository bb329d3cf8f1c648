package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-exported so callers need a single errors import
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// appError is the Error implementation handed out by Factory. Values are
// never mutated after construction; With* return modified copies.
type appError struct {
	code    ErrorCode
	message string
	err     error
	data    any
}

func (e *appError) Error() string {
	var b strings.Builder

	if e.message != "" {
		b.WriteString(e.message)
	} else {
		b.WriteString(GetErrorMessage(e.code))
	}
	if e.data != nil {
		fmt.Fprintf(&b, ": %v", e.data)
	}
	if e.err != nil {
		fmt.Fprintf(&b, ": %v", e.err)
	}

	return b.String()
}

func (e *appError) Code() ErrorCode { return e.code }

func (e *appError) GetData() any { return e.data }

func (e *appError) Unwrap() error { return e.err }

func (e *appError) WithMessage(msg string) Error {
	c := *e
	c.message = msg
	return &c
}

func (e *appError) WithData(data any) Error {
	c := *e
	c.data = data
	return &c
}

type factory struct{}

func (factory) New(code ErrorCode) Error {
	return &appError{code: code}
}

func (factory) Wrap(code ErrorCode, err error) Error {
	return &appError{code: code, err: err}
}

func (factory) WithMessage(code ErrorCode, msg string) Error {
	return &appError{code: code, message: msg}
}

func (factory) WithData(code ErrorCode, data any) Error {
	return &appError{code: code, data: data}
}

// New creates a Factory instance for error creation
func New() Factory {
	return factory{}
}

// CodeOf returns the code of the outermost coded error in the chain.
func CodeOf(err error) (ErrorCode, bool) {
	var c Coder
	if !As(err, &c) {
		return "", false
	}

	return c.Code(), true
}

// HasCode reports whether any coded error in the chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var c Coder
		if !As(err, &c) {
			return false
		}
		if c.Code() == code {
			return true
		}

		next, ok := c.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = next.Unwrap()
	}

	return false
}
