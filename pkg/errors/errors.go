package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeDuplicate signals an insert rejected because the id or edge
	// already exists; store state is unchanged.
	ErrorTypeDuplicate ErrorType = "DUPLICATE"

	// ErrorTypeNotFound signals that a lookup or query target is absent.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation signals a record that failed ingest-side validation.
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypePrecondition signals an operation on a graph node that was
	// never registered.
	ErrorTypePrecondition ErrorType = "PRECONDITION"
)

// StoreError represents a store-specific error
type StoreError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *StoreError) WithDetails(details map[string]interface{}) *StoreError {
	e.Details = details
	return e
}

// WithDetail adds a single error detail
func (e *StoreError) WithDetail(key string, value interface{}) *StoreError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error
func (e *StoreError) WithCause(err error) *StoreError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewDuplicateError creates a duplicate error for a resource and id
func NewDuplicateError(resource string, id int64) *StoreError {
	return &StoreError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("%s %d already exists", resource, id),
		Details: map[string]interface{}{"id": id},
	}
}

// NewDuplicateEdgeError creates a duplicate error for a follow edge
func NewDuplicateEdgeError(followerID, followeeID int64) *StoreError {
	return &StoreError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("user %d already follows user %d", followerID, followeeID),
		Details: map[string]interface{}{"follower_id": followerID, "followee_id": followeeID},
	}
}

// NewNotFoundError creates a not found error for a resource and id
func NewNotFoundError(resource string, id int64) *StoreError {
	return &StoreError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
		Details: map[string]interface{}{"id": id},
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *StoreError {
	return &StoreError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewPreconditionError creates a precondition error
func NewPreconditionError(message string) *StoreError {
	return &StoreError{
		Type:    ErrorTypePrecondition,
		Message: message,
	}
}

// Helper functions

// IsStoreError checks if an error is a StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// GetStoreError extracts a StoreError from an error chain
func GetStoreError(err error) *StoreError {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	storeErr := GetStoreError(err)
	return storeErr != nil && storeErr.Type == errType
}

// IsDuplicate checks if an error is a duplicate error
func IsDuplicate(err error) bool {
	return IsType(err, ErrorTypeDuplicate)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsPrecondition checks if an error is a precondition error
func IsPrecondition(err error) bool {
	return IsType(err, ErrorTypePrecondition)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already a StoreError, add context to the message
	if storeErr := GetStoreError(err); storeErr != nil {
		storeErr.Message = fmt.Sprintf("%s: %s", message, storeErr.Message)
		return storeErr
	}

	return NewValidationError(message).WithCause(err)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
