// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"reflect"
)

// Argument declares one positional argument. Position is given by the
// order of declaration.
type Argument struct {
	// Name identifies the argument in the normalized input. Unique
	// within a registry.
	Name string `json:"name"`

	// Mode is one of the ArgumentMode constants; zero means optional.
	Mode ArgumentMode `json:"mode,omitempty"`

	Description string `json:"description,omitempty"`

	// Default is used when no value is supplied. Must be nil for a
	// required argument and a slice for an array argument (nil becomes
	// an empty slice).
	Default any `json:"default,omitempty"`
}

// Required reports whether the argument must be supplied.
func (a Argument) Required() bool { return a.Mode == ArgumentRequired }

// IsArray reports whether the argument collects trailing values.
func (a Argument) IsArray() bool { return a.Mode == ArgumentIsArray }

// normalize fills the zero mode and checks it. It does not look at
// the default or at registry state.
func (a Argument) normalize() (Argument, error) {
	if a.Mode == 0 {
		a.Mode = ArgumentOptional
	}
	if !a.Mode.Valid() {
		return a, fmt.Errorf("argument %q: mode %d: %w", a.Name, int(a.Mode), ErrInvalidSpec)
	}
	return a, nil
}

// withDefault checks the default against the mode and fills the empty
// slice of an array argument. Runs after the registry checks.
func (a Argument) withDefault() (Argument, error) {
	switch a.Mode {
	case ArgumentRequired:
		if a.Default != nil {
			return a, fmt.Errorf("argument %q: a required argument cannot have a default: %w", a.Name, ErrInvalidDefault)
		}
	case ArgumentIsArray:
		if a.Default == nil {
			a.Default = []any{}
		} else if !isSequence(a.Default) {
			return a, fmt.Errorf("argument %q: default for an array argument must be a slice, got %T: %w", a.Name, a.Default, ErrInvalidDefault)
		}
	}
	return a, nil
}

// isSequence reports whether value is a slice or array.
func isSequence(value any) bool {
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
