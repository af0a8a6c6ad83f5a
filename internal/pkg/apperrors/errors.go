package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// ErrPartialUpdate marks a multi-write operation whose companion write
	// could not be applied. The primary write is rolled back before this is
	// returned, so callers can safely retry the whole operation.
	ErrPartialUpdate = errors.New("partial update")

	// Image store errors
	ErrUploadFailed = errors.New("image upload failed")
)

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRollNoExists       = errors.New("roll number already registered")
)

// Student / hostel errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrHostelNotFound  = errors.New("hostel not found")
)

// Laundry errors
var (
	ErrBagNotFound            = errors.New("laundry bag not found")
	ErrBagAssignmentNotFound  = errors.New("no bag assigned to student")
	ErrLaundryInProcess       = errors.New("laundry already in process")
	ErrBackwardStatusMove     = errors.New("status cannot move backwards")
	ErrUnknownLaundryStatus   = errors.New("unknown laundry status")
	ErrClothesCountOutOfRange = errors.New("clothes count out of range")
)

// Item board errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrUnknownItemTag = errors.New("item tag must be lost or found")
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
