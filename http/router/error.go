package router

import (
	"fmt"
	"net/http"
)

// An Error is an error carrying the HTTP status and message
// the default error handler responds with.
type Error struct {
	Status  int
	Message string
	Err     error
}

// NewError constructs an *Error for status.
// If msg is empty, the status text is used.
func NewError(status int, msg string) *Error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

// Wrap sets err as the cause of e.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// A PanicError is the error a [HandlerFunc] panicking with Value is reported as.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
