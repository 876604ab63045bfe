// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"log/slog"

	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/input"
)

// Invocation is what the lifecycle hooks of one run receive.
type Invocation struct {
	Command    *Command
	Definition *definition.Registry

	// Input is normalized by the time Run is called.
	Input *input.Input

	// Logger carries a "command" attribute with the full command path.
	Logger *slog.Logger

	Stdout io.Writer
	Stderr io.Writer
}

// Arg returns the normalized value of an argument, or nil.
func (inv *Invocation) Arg(name string) any {
	value, _ := inv.Input.Arg(name)
	return value
}

// StringArg returns an argument's value when it is a string.
func (inv *Invocation) StringArg(name string) string {
	value, _ := inv.Arg(name).(string)
	return value
}

// Option returns the supplied value of an option, falling back to its
// declared default. Undeclared options return nil.
func (inv *Invocation) Option(name string) any {
	if inv.Input.HasLongOpt(name) {
		return inv.Input.LongOpt(name)
	}
	option, err := inv.Definition.Option(name)
	if err != nil {
		return nil
	}
	return option.Default
}

// StringOption returns an option's value when it is a string.
func (inv *Invocation) StringOption(name string) string {
	value, _ := inv.Option(name).(string)
	return value
}

// BoolOption reports whether a flag is set to true.
func (inv *Invocation) BoolOption(name string) bool {
	value, _ := inv.Option(name).(bool)
	return value
}

// OptionSet reports whether the option was supplied, in either form.
func (inv *Invocation) OptionSet(name string) bool {
	return inv.Input.HasLongOpt(name)
}
