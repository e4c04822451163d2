// Package errors provides a lightweight structured error type for
// category-based classification across the CLI and library packages.
package errors

import "fmt"

// ErrorCategory classifies an error for exit-code mapping and logging.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content tree errors
	CategoryContent    ErrorCategory = "content"
	CategoryFileSystem ErrorCategory = "filesystem"

	// External system errors
	CategoryGit     ErrorCategory = "git"
	CategoryStorage ErrorCategory = "storage"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
)

// ContextFields carries structured context for BlogBuilderError.
type ContextFields map[string]any

// BlogBuilderError is a structured error with category, severity, and context.
type BlogBuilderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// New creates a BlogBuilderError without a cause.
func New(category ErrorCategory, severity ErrorSeverity, message string) *BlogBuilderError {
	return &BlogBuilderError{Category: category, Severity: severity, Message: message}
}

// Wrap creates a BlogBuilderError wrapping an underlying cause.
func Wrap(cause error, category ErrorCategory, severity ErrorSeverity, message string) *BlogBuilderError {
	return &BlogBuilderError{Category: category, Severity: severity, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *BlogBuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap supports errors.Is / errors.As chains.
func (e *BlogBuilderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *BlogBuilderError) WithContext(key string, value any) *BlogBuilderError {
	if e.Context == nil {
		e.Context = ContextFields{}
	}
	e.Context[key] = value
	return e
}
