// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"strings"
)

// ArgumentMode classifies a positional argument. The zero value means
// "not specified" and is treated as [ArgumentOptional].
type ArgumentMode int

const (
	ArgumentRequired ArgumentMode = 1
	ArgumentOptional ArgumentMode = 2
	// ArgumentIsArray collects every positional value from the
	// argument's index onward. It implies an optional, value-accepting
	// argument and must be declared last.
	ArgumentIsArray ArgumentMode = 4
)

// Valid reports whether m is one of the declared modes.
func (m ArgumentMode) Valid() bool {
	return m == ArgumentRequired || m == ArgumentOptional || m == ArgumentIsArray
}

func (m ArgumentMode) String() string {
	switch m {
	case ArgumentRequired:
		return "required"
	case ArgumentOptional:
		return "optional"
	case ArgumentIsArray:
		return "array"
	case 0:
		return ""
	default:
		return fmt.Sprintf("ArgumentMode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name so that YAML, JSON and CBOR
// documents carry readable modes.
func (m ArgumentMode) MarshalText() ([]byte, error) {
	if m != 0 && !m.Valid() {
		return nil, fmt.Errorf("argument mode %d: %w", int(m), ErrInvalidSpec)
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts "required", "optional", "array" (or "is_array"),
// case-insensitively. An empty string leaves the mode unspecified.
func (m *ArgumentMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "":
		*m = 0
	case "required":
		*m = ArgumentRequired
	case "optional":
		*m = ArgumentOptional
	case "array", "is_array":
		*m = ArgumentIsArray
	default:
		return fmt.Errorf("argument mode %q: %w", text, ErrInvalidSpec)
	}
	return nil
}

// OptionMode classifies a named option. The zero value means "not
// specified" and is treated as [OptionBoolean].
type OptionMode int

const (
	// OptionBoolean is a flag that takes no value.
	OptionBoolean OptionMode = 1
	OptionRequired OptionMode = 2
	// OptionOptional accepts a value but may also be given bare.
	OptionOptional OptionMode = 4
	// OptionIsArray accepts a value and may be repeated.
	OptionIsArray OptionMode = 8
)

// Valid reports whether m is one of the declared modes.
func (m OptionMode) Valid() bool {
	switch m {
	case OptionBoolean, OptionRequired, OptionOptional, OptionIsArray:
		return true
	}
	return false
}

// AcceptsValue reports whether an option in this mode takes a value.
func (m OptionMode) AcceptsValue() bool {
	return m == OptionRequired || m == OptionOptional || m == OptionIsArray
}

func (m OptionMode) String() string {
	switch m {
	case OptionBoolean:
		return "boolean"
	case OptionRequired:
		return "required"
	case OptionOptional:
		return "optional"
	case OptionIsArray:
		return "array"
	case 0:
		return ""
	default:
		return fmt.Sprintf("OptionMode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m OptionMode) MarshalText() ([]byte, error) {
	if m != 0 && !m.Valid() {
		return nil, fmt.Errorf("option mode %d: %w", int(m), ErrInvalidSpec)
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts "boolean" (or "bool", "none"), "required",
// "optional", "array" (or "is_array"), case-insensitively.
func (m *OptionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "":
		*m = 0
	case "boolean", "bool", "none":
		*m = OptionBoolean
	case "required":
		*m = OptionRequired
	case "optional":
		*m = OptionOptional
	case "array", "is_array":
		*m = OptionIsArray
	default:
		return fmt.Errorf("option mode %q: %w", text, ErrInvalidSpec)
	}
	return nil
}
