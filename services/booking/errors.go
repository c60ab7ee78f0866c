package booking

import (
	"errors"
	"fmt"
)

// Error codes for lifecycle validation failures. All are local
// validation outcomes recovered at the call site, never panics.
const (
	CodeInvalidTransition = "invalidTransition"
	CodeMissingReason     = "missingReason"
	CodeNotEligible       = "notEligible"
	CodeInvalidRating     = "invalidRating"
	CodeTextTooLong       = "textTooLong"
	CodeNotAllowed        = "notAllowed"
	CodeNotFound          = "notFound"
	CodeConflict          = "conflict"
)

// LifecycleError is a coded validation failure from the booking engine.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewLifecycleError(code, msg string) error {
	return &LifecycleError{
		Code:    code,
		Message: msg,
	}
}

// ErrCode returns the lifecycle error code, or an empty string for
// other errors.
func ErrCode(err error) string {
	var le *LifecycleError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
