package qrtables

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EFETCH     = "fetch"     // source page could not be retrieved
	ENOTFOUND  = "not_found" // selector matched no table
	ESTRUCTURE = "structure" // table layout differs from the expected encoding
	EMALFORMED = "malformed" // cell text is not a non-negative integer
	ESHAPE     = "shape"     // bucket length differs from the table's expected length
	EINVALID   = "invalid"
	EINTERNAL  = "internal"
)

// Error represents an application-specific error. Every failure in the
// pipeline is fatal, so the code only exists to tell the operator which
// stage gave up.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
