// Package errors provides structured error types for skein.
// Errors include context, causes, and actionable suggestions.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryConfig     Category = "config"     // Configuration loading/parsing errors
	CategoryNetwork    Category = "network"    // Connection and websocket errors
	CategoryProtocol   Category = "protocol"   // Malformed or unexpected server messages
	CategoryValidation Category = "validation" // Input validation errors
	CategoryCommand    Category = "command"    // Shell command errors
	CategoryIO         Category = "io"         // File/IO errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// SkeinError is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type SkeinError struct {
	// Code is a unique identifier for this error type (e.g., "CONN_FAILED")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *SkeinError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *SkeinError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target. Two SkeinErrors match if they have
// the same Code.
func (e *SkeinError) Is(target error) bool {
	if t, ok := target.(*SkeinError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new SkeinError with the given code, category, and message.
func New(code string, category Category, message string) *SkeinError {
	return &SkeinError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *SkeinError) WithContext(key, value string) *SkeinError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *SkeinError) WithCause(cause error) *SkeinError {
	e.Cause = cause
	return e
}

// WithSuggestion adds a remediation suggestion and returns the error for chaining.
func (e *SkeinError) WithSuggestion(suggestion string) *SkeinError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// Display returns a multi-line, user-facing rendering: message, context
// lines, and suggestions. Context keys are sorted for stable output.
func (e *SkeinError) Display() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, "  cause: %v\n", e.Cause)
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, e.Context[k])
		}
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("Try:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	return b.String()
}
