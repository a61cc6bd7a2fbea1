package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrStorageFailed = errors.New("storage operation failed")

	// Session errors
	ErrNoActiveSession = errors.New("no active session")
)

// Entity errors
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrRoundNotFound        = errors.New("round not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrUserNotFound         = errors.New("user not found")
)

// Round editor errors
var (
	ErrNoEditorSession      = errors.New("no round editor session in progress")
	ErrEditorNotStarted     = errors.New("round drafting has not been started")
	ErrEditorFinished       = errors.New("round editor session already finished")
	ErrQuestionIndexInvalid = errors.New("question index out of range")
	ErrAttachmentTooLarge   = errors.New("attachment exceeds the 5 MiB limit")
)

// Export errors
var (
	ErrNothingToExport = errors.New("no data to export")
)

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStorageError marks a failure from the persistence layer so it maps
// onto the storage error code instead of the generic server error.
func NewStorageError(cause error) error {
	return &CustomError{
		Err:     ErrStorageFailed,
		Message: cause.Error(),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
