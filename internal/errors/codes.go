package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodeNoFormFields means a document carries no fillable form fields.
	// The import flow treats it as the signal to try OCR instead.
	CodeNoFormFields Code = "NO_FORM_FIELDS"
	// CodeExtractionFailed means no source produced a usable record.
	CodeExtractionFailed Code = "EXTRACTION_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps a code to the process exit status used by the CLI.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeFailedPrecondition:
		return 2
	case CodeNotFound:
		return 3
	case CodeNoFormFields, CodeExtractionFailed:
		return 4
	case CodeUnavailable, CodeDeadlineExceeded, CodeCanceled:
		return 5
	default:
		return 1
	}
}
