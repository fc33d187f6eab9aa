// Package prk structured error types for better error handling
package prk

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Malformed or out-of-range input parameters
	ErrTypeParameter ErrorType = iota
	// Configurations with no kernel available
	ErrTypeUnsupported
	// Checksum divergence from the analytic reference
	ErrTypeValidation
	// Memory errors
	ErrTypeMemory
	// Execution errors
	ErrTypeExecution
	// Device errors
	ErrTypeDevice
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("PRK %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("PRK %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeParameter:
		return "Parameter"
	case ErrTypeUnsupported:
		return "Unsupported"
	case ErrTypeValidation:
		return "Validation"
	case ErrTypeMemory:
		return "Memory"
	case ErrTypeExecution:
		return "Execution"
	case ErrTypeDevice:
		return "Device"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewParameterError creates an invalid parameter error
func NewParameterError(op string, message string) error {
	return &Error{
		Type:    ErrTypeParameter,
		Op:      op,
		Message: message,
	}
}

// NewUnsupportedError creates an unsupported configuration error.
// A computation that cannot run must fail with this rather than
// silently return a wrong answer.
func NewUnsupportedError(op string, message string) error {
	return &Error{
		Type:    ErrTypeUnsupported,
		Op:      op,
		Message: message,
	}
}

// NewValidationError creates a validation failure error.
// Context carries the observed and reference values for reporting.
func NewValidationError(op string, message string, context interface{}) error {
	return &Error{
		Type:    ErrTypeValidation,
		Op:      op,
		Message: message,
		Context: context,
	}
}

// NewMemoryError creates a memory-related error
func NewMemoryError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewExecutionError creates an execution error
func NewExecutionError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeExecution,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewDeviceError creates a device error
func NewDeviceError(op string, message string) error {
	return &Error{
		Type:    ErrTypeDevice,
		Op:      op,
		Message: message,
	}
}

// Common pre-defined errors

var (
	// ErrOutOfMemory indicates memory allocation failure
	ErrOutOfMemory = NewMemoryError("Malloc", "out of memory", nil)

	// ErrInvalidSize indicates invalid size parameter
	ErrInvalidSize = NewParameterError("Malloc", "size must be positive")

	// ErrNullPointer indicates null pointer access
	ErrNullPointer = NewParameterError("Memory", "null pointer")

	// ErrDoubleFree indicates double free attempt
	ErrDoubleFree = NewMemoryError("Free", "double free detected", nil)

	// ErrInvalidDevice indicates invalid device ID
	ErrInvalidDevice = NewDeviceError("SetDevice", "invalid device ID")
)

// IsParameterError checks if an error is an invalid parameter error
func IsParameterError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeParameter
	}
	return false
}

// IsUnsupportedError checks if an error is an unsupported configuration error
func IsUnsupportedError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeUnsupported
	}
	return false
}

// IsValidationError checks if an error is a validation failure
func IsValidationError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeValidation
	}
	return false
}

// IsMemoryError checks if an error is a memory error
func IsMemoryError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeMemory
	}
	return false
}

// IsDeviceError checks if an error is a device error
func IsDeviceError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeDevice
	}
	return false
}
