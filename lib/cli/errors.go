// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies a command failure so main can choose an
// exit code without parsing error text.
type ErrorCategory string

const (
	// CategoryValidation means the user passed bad input: unknown
	// flags, unexpected arguments, an invalid config file.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound means a named file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal means an unexpected failure such as a terminal
	// that could not be initialized.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by a command. It wraps the
// underlying error so errors.Is and errors.As still see the full chain.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step for the user, printed after the
	// message separated by a blank line.
	Hint string
}

// Error returns the underlying message with the hint appended.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// ExitCode maps the category onto a process exit code: 2 for bad
// input, 1 for everything else.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation, CategoryNotFound:
		return 2
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced file does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
