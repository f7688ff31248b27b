package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Course errors
var (
	ErrCourseNotFound         = NewResourceNotFoundError("Course not found")
	ErrCourseTitleExists      = NewConflictError("Course already exists")
	ErrNoCoursesForInstructor = NewResourceNotFoundError("No courses found for this instructor")
	ErrNotAuthorizedToModify  = NewForbiddenError("Not authorized to modify this course")
	ErrVideoTooLarge          = NewValidationError("Video exceeds the maximum upload size")
	ErrCourseTitleRequired    = NewValidationError("Course title is required")
	ErrInvalidCourseID        = NewCustomError(ErrBadRequest, "Invalid course ID")
	ErrInvalidInstructorID    = NewCustomError(ErrBadRequest, "Invalid instructor ID")
	ErrEmptySearchQuery       = NewCustomError(ErrBadRequest, "Search query is required")
	ErrCallerIdentityMissing  = NewCustomError(ErrTokenInvalid, "Caller identity not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) *CustomError {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed validation with a message
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
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

// WithDetails returns a copy of the error carrying context details.
// Package-level sentinels are shared, so they are never mutated in place.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	clone := *e
	clone.Details = details
	return &clone
}

// Message returns the user-facing message of err if it carries one.
func Message(err error) (string, bool) {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message, true
	}
	return "", false
}
