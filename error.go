package optcg

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be branched on by callers. Field-level extraction
// failures carry the specific code of the failing step even after being
// wrapped with card context.
const (
	EAMBIGUOUS   = "ambiguous"    // selector matched more than one node
	EINTERNAL    = "internal"     // internal error
	EINVALID     = "invalid"      // validation failed
	EMALFORMED   = "malformed"    // numeric field was neither absent nor an integer
	ENOATTR      = "no_attribute" // expected HTML attribute absent on a located node
	ENOTFOUND    = "not_found"    // selector or dictionary lookup matched nothing
	EUNSUPPORTED = "unsupported"  // token did not map to any enumerator value
)

// Error represents an application-specific error. Application errors can
// be unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("optcg error: code=%s message=%s", e.Code, e.Message)
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

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
