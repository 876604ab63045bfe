// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Option declares one named option.
type Option struct {
	// Name is the long name. A leading "--" is stripped on registration.
	Name string `json:"name"`

	// Shortcut holds zero or more single-character aliases joined with
	// "|", e.g. "f" or "f|F". Leading dashes on each part are ignored.
	// Use [Shortcuts] to build it from a list.
	Shortcut string `json:"shortcut,omitempty"`

	// Mode is one of the OptionMode constants; zero means boolean.
	Mode OptionMode `json:"mode,omitempty"`

	Description string `json:"description,omitempty"`

	// Default applies when the option is not supplied. Must be nil or
	// false for a boolean option, which always defaults to false, and
	// a slice for an array option (nil becomes an empty slice).
	Default any `json:"default,omitempty"`
}

// Required reports whether the option must be supplied.
func (o Option) Required() bool { return o.Mode == OptionRequired }

// AcceptsValue reports whether the option takes a value.
func (o Option) AcceptsValue() bool { return o.Mode.AcceptsValue() }

// IsArray reports whether the option may be repeated.
func (o Option) IsArray() bool { return o.Mode == OptionIsArray }

// ShortcutList returns the option's shortcut characters in declaration
// order.
func (o Option) ShortcutList() []string {
	if o.Shortcut == "" {
		return nil
	}
	return strings.Split(o.Shortcut, "|")
}

// Shortcuts joins a sequence of shortcut characters into the "|" form
// accepted by [Option.Shortcut].
func Shortcuts(chars ...string) string {
	return strings.Join(chars, "|")
}

// parseShortcuts splits a "|"-delimited shortcut declaration, dropping
// leading dashes, empty parts, and repeats.
func parseShortcuts(declared string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(declared, "|") {
		part = strings.TrimLeft(strings.TrimSpace(part), "-")
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		result = append(result, part)
	}
	return result
}

// normalize strips the name prefix, fills the zero mode and
// normalizes the shortcut list. It does not look at the default or at
// registry state; the returned slice holds the shortcut characters.
func (o Option) normalize() (Option, []string, error) {
	o.Name = strings.TrimPrefix(o.Name, "--")
	if o.Name == "" {
		return o, nil, fmt.Errorf("an option name cannot be empty: %w", ErrInvalidSpec)
	}

	if o.Mode == 0 {
		o.Mode = OptionBoolean
	}
	if !o.Mode.Valid() {
		return o, nil, fmt.Errorf("option %q: mode %d: %w", o.Name, int(o.Mode), ErrInvalidSpec)
	}

	shortcuts := parseShortcuts(o.Shortcut)
	for _, shortcut := range shortcuts {
		if utf8.RuneCountInString(shortcut) != 1 {
			return o, nil, fmt.Errorf("option %q: shortcut %q must be a single character: %w", o.Name, shortcut, ErrInvalidSpec)
		}
	}
	o.Shortcut = strings.Join(shortcuts, "|")
	return o, shortcuts, nil
}

// withDefault checks the default against the mode: a boolean option
// gets false, an array option an empty slice when none is given. Runs
// after the name check and before shortcuts are bound.
func (o Option) withDefault() (Option, error) {
	switch o.Mode {
	case OptionBoolean:
		if o.Default != nil && o.Default != false {
			return o, fmt.Errorf("option %q: a boolean option cannot have a default: %w", o.Name, ErrInvalidDefault)
		}
		o.Default = false
	case OptionIsArray:
		if o.Default == nil {
			o.Default = []any{}
		} else if !isSequence(o.Default) {
			return o, fmt.Errorf("option %q: default for an array option must be a slice, got %T: %w", o.Name, o.Default, ErrInvalidDefault)
		}
	}
	return o, nil
}
