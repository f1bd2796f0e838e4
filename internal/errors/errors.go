package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrWrongStep       = errors.New("step does not match the current container")
	ErrUnknownType     = errors.New("unknown field type")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidDefault  = errors.New("default value does not match the field type")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeNavigation ErrorType = "navigation"
	ErrorTypeRead       ErrorType = "read"
	ErrorTypeRender     ErrorType = "render"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newAppError(t ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: message,
		Err:     err,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return newAppError(ErrorTypeInput, message, err)
}

// NewConfigError creates a new error related to loading configuration
func NewConfigError(message string, err error) *AppError {
	return newAppError(ErrorTypeConfig, message, err)
}

// NewNavigationError creates a new error for a step that cannot be applied
func NewNavigationError(message string, err error) *AppError {
	return newAppError(ErrorTypeNavigation, message, err)
}

// NewReadError creates a new error related to reading a field
func NewReadError(message string, err error) *AppError {
	return newAppError(ErrorTypeRead, message, err)
}

// NewRenderError creates a new error related to rendering a value
func NewRenderError(message string, err error) *AppError {
	return newAppError(ErrorTypeRender, message, err)
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return newAppError(ErrorTypeOutput, message, err)
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeNavigation:
			return fmt.Sprintf("Navigation error: %s", appErr.Message)
		case ErrorTypeRead:
			return fmt.Sprintf("Field error: %s", appErr.Message)
		case ErrorTypeRender:
			return fmt.Sprintf("Rendering error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide JSON data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrWrongStep) {
		return "Error: A step does not fit the document. Use object keys on objects and numeric indices on arrays."
	}
	if errors.Is(err, ErrUnknownType) {
		return "Error: Unknown field type. Use string, int, int64, float, bool, object or array."
	}
	if errors.Is(err, ErrUnknownFormat) {
		return "Error: Unknown output format. Use json or yaml."
	}
	if errors.Is(err, ErrInvalidDefault) {
		return "Error: The default value cannot be read as the requested field type."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
