package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("authentication required")
)

// Account errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email is required for registration")
	ErrMissingCredentials = errors.New("username and password are required")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentEmailExists = errors.New("a student with this email already exists")
)

// Club errors
var (
	ErrClubNotFound         = errors.New("club not found")
	ErrClubAlreadyExists    = errors.New("club with this name already exists")
	ErrClubHasActiveMembers = errors.New("club has active members and cannot be deleted")
)

// Lookup errors
var (
	ErrIndustryAlreadyExists = errors.New("industry already exists")
	ErrUnknownReference      = errors.New("referenced location, club or industry does not exist")
)

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
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

// ActiveMembersError is returned when a club delete is refused by the
// active-membership guard.
type ActiveMembersError struct {
	ClubID int64
	Count  int64
}

func (e *ActiveMembersError) Error() string {
	return fmt.Sprintf("Cannot delete club: it has %d active member(s).", e.Count)
}

func (e *ActiveMembersError) Unwrap() error {
	return ErrClubHasActiveMembers
}
