// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import "errors"

// Declaration-time error kinds. Errors returned by the add operations
// wrap exactly one of these; test with errors.Is.
var (
	// ErrInvalidSpec reports a malformed declaration: an unknown mode
	// value, an empty option name, or a multi-character shortcut.
	ErrInvalidSpec = errors.New("invalid declaration")

	// ErrDuplicateName reports an argument or option name that is
	// already registered.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrDuplicateShortcut reports a shortcut character already bound
	// to another option.
	ErrDuplicateShortcut = errors.New("duplicate shortcut")

	// ErrOrderingViolation reports an argument declared after an array
	// argument, or a required argument declared after an optional one.
	ErrOrderingViolation = errors.New("argument ordering violation")

	// ErrInvalidDefault reports a default value incompatible with the
	// declared mode.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrNotFound reports a lookup of an undeclared argument, option,
	// or shortcut. Unlike the kinds above it is recoverable.
	ErrNotFound = errors.New("not declared")
)
