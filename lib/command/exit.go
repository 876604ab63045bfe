// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/argspec/lib/validate"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command returns an ExitError, main exits with
// the code and prints nothing: the command has already written its
// own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this method to tell
// a handled non-zero exit from an error to display.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError wraps a validation failure of one invocation. Its message
// is the validation message followed by a pointer to --help, suitable
// for printing without further context.
type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%v\n\nRun '%s --help' for usage.", e.Err, e.Command)
}

func (e *UsageError) Unwrap() error { return e.Err }

// ErrorCategory classifies errors for callers that act on them without
// parsing message text.
type ErrorCategory string

const (
	// CategoryValidation: the input was wrong; fix it and retry.
	CategoryValidation ErrorCategory = validate.Category

	// CategoryNotFound: a referenced command or file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal: anything else.
	CategoryInternal ErrorCategory = "internal"
)

// categorized is implemented by errors that know their category.
type categorized interface {
	Category() string
}

// CategoryOf returns the category of the first error in err's chain
// that declares one, or [CategoryInternal].
func CategoryOf(err error) ErrorCategory {
	var known categorized
	if errors.As(err, &known) {
		return ErrorCategory(known.Category())
	}
	return CategoryInternal
}

// NotFoundError reports a missing command input such as a definition
// file.
type NotFoundError struct {
	Err error
}

// NotFound wraps err as a not-found error.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Err: fmt.Errorf(format, args...)}
}

func (e *NotFoundError) Error() string    { return e.Err.Error() }
func (e *NotFoundError) Unwrap() error    { return e.Err }
func (e *NotFoundError) Category() string { return string(CategoryNotFound) }
