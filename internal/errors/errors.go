// Package errors provides a lightweight structured error type (DocsLinkError)
// for category-based classification in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a DocsLinkError for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Reading and writing local files
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// DocsLinkError is a structured error with category, severity and context
type DocsLinkError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocsLinkError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocsLinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocsLinkError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocsLinkError) WithContext(key string, value any) *DocsLinkError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocsLinkError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocsLinkError {
	return &DocsLinkError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DocsLinkError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocsLinkError {
	return &DocsLinkError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first DocsLinkError in err's chain.
func As(err error) (*DocsLinkError, bool) {
	var dle *DocsLinkError
	if stderrors.As(err, &dle) {
		return dle, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if dle, ok := As(err); ok {
		return dle.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocsLinkError
func GetCategory(err error) ErrorCategory {
	if dle, ok := As(err); ok {
		return dle.Category
	}
	return CategoryInternal
}
