package booking

import (
	"errors"
	"fmt"
)

const (
	CodeMissingField       = "missingField"
	CodeInvalidTimeRange   = "invalidTimeRange"
	CodeDateConflict       = "dateConflict"
	CodePersistenceFailure = "persistenceFailure"
	CodeNotFound           = "notFound"
)

// BookingError is a domain failure surfaced to the guest.
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewMissingFieldError(msg string) error {
	return &BookingError{Code: CodeMissingField, Message: msg}
}

func NewInvalidTimeRangeError(msg string) error {
	return &BookingError{Code: CodeInvalidTimeRange, Message: msg}
}

func NewDateConflictError(msg string) error {
	return &BookingError{Code: CodeDateConflict, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewPersistenceError(msg string, err error) error {
	return &BookingError{Code: CodePersistenceFailure, Message: msg, Err: err}
}

// ErrInvalidTransition is returned when a booking flow is asked to move to a
// state it cannot reach from its current one.
var ErrInvalidTransition = errors.New("invalid booking flow transition")

// CodeOf returns the BookingError code wrapped in err, or "" if there is none.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// MessageOf returns the guest-facing message of a BookingError, or the
// error text for anything else.
func MessageOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return err.Error()
}
