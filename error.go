package folkweb

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be human readable and stable. They map loosely onto
// HTTP-style semantics but are transport-agnostic.
const (
	EINTERNAL    = "internal"    // internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // transport-level failure reaching the site
	EUPSTREAM    = "upstream"    // the site responded with a non-success status
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// HTTP status returned by the remote site. Only set for EUPSTREAM errors.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("folkweb error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus returns the remote HTTP status carried by an EUPSTREAM error,
// or zero for any other error.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Errorf is a helper for constructing an Error with formatting.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusErrorf constructs an EUPSTREAM Error carrying the remote HTTP status.
func StatusErrorf(status int, format string, args ...interface{}) *Error {
	return &Error{
		Code:    EUPSTREAM,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}
