package errors

import (
	"errors"
	"strings"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported so callers need only this package
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func find(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of err. nil is OK and foreign errors are internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	if e, ok := find(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message of the outermost *Error, or err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// Reason returns the machine-readable reason for err: the MetaReason entry
// when one was recorded, the lowercased code otherwise.
func Reason(err error) string {
	if r, ok := GetMeta(err)[MetaReason].(string); ok && r != "" {
		return r
	}
	return strings.ToLower(GetCode(err).String())
}

// HasCode reports whether err carries any of the given codes
func HasCode(err error, codes ...Code) bool {
	got := GetCode(err)
	for _, c := range codes {
		if got == c {
			return true
		}
	}
	return false
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return HasCode(err, CodeAlreadyExists) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }

// IsNoFormFields checks if a document was rejected for lacking form fields
func IsNoFormFields(err error) bool { return HasCode(err, CodeNoFormFields) }

// IsExtractionFailed checks if an error is an extraction failure
func IsExtractionFailed(err error) bool { return HasCode(err, CodeExtractionFailed) }

// IsContextDone reports whether err came from a canceled or expired context
func IsContextDone(err error) bool { return HasCode(err, CodeCanceled, CodeDeadlineExceeded) }
