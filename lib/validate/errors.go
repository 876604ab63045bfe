// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput matches every validation failure under errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Category is the error category every validation failure reports.
// It matches the "validation" category of lib/command errors.
const Category = "validation"

// UnknownArgumentsError reports positional entries that were supplied
// under a name rather than an index.
type UnknownArgumentsError struct {
	// Keys are the offending names, sorted.
	Keys []string
}

func (e *UnknownArgumentsError) Error() string {
	return fmt.Sprintf("unknown arguments (error: %q)", strings.Join(e.Keys, ", "))
}

func (e *UnknownArgumentsError) Is(target error) bool { return target == ErrInvalidInput }

// Category returns [Category].
func (e *UnknownArgumentsError) Category() string { return Category }

// MissingArgumentsError reports required arguments with no value.
type MissingArgumentsError struct {
	// Names are the argument names in declaration order.
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("not enough arguments (missing: %q)", strings.Join(e.Names, ", "))
}

func (e *MissingArgumentsError) Is(target error) bool { return target == ErrInvalidInput }

// Category returns [Category].
func (e *MissingArgumentsError) Category() string { return Category }

// MissingOptionsError reports required options that were not supplied.
type MissingOptionsError struct {
	// Names are rendered as "--name", or "--name|-n" when the option
	// has shortcuts, in declaration order.
	Names []string
}

func (e *MissingOptionsError) Error() string {
	return fmt.Sprintf("not enough options (missing: %q)", strings.Join(e.Names, ", "))
}

func (e *MissingOptionsError) Is(target error) bool { return target == ErrInvalidInput }

// Category returns [Category].
func (e *MissingOptionsError) Category() string { return Category }
