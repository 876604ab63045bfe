// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"slices"
	"strings"

	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/input"
)

// Validate checks in against registry and, on success, normalizes in:
// positional values are replaced by a map from argument name to value,
// and values given through an option shortcut are stored under the
// long name. On failure in is left untouched, except that a failure in
// the option phase happens after arguments were normalized.
//
// An array argument receives every positional value from its index
// onward, in index order, as a []any. Positional values beyond the
// declared arguments are ignored when there is no array argument.
//
// Validate keeps no state between calls and only reads registry, so
// concurrent calls with distinct inputs are safe.
func Validate(registry *definition.Registry, in *input.Input) error {
	if unknown := in.StringKeyed(); len(unknown) > 0 {
		keys := make([]string, 0, len(unknown))
		for key := range unknown {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		return &UnknownArgumentsError{Keys: keys}
	}

	arguments := registry.Arguments()

	var missingArguments []string
	for index, argument := range arguments {
		if _, given := in.PositionalAt(index); !given && argument.Required() {
			missingArguments = append(missingArguments, argument.Name)
		}
	}
	if len(missingArguments) > 0 {
		return &MissingArgumentsError{Names: missingArguments}
	}

	args := make(map[string]any, len(arguments))
	for index, argument := range arguments {
		if argument.IsArray() {
			args[argument.Name] = collectFrom(in, index, argument.Default)
			continue
		}
		if value, given := in.PositionalAt(index); given {
			args[argument.Name] = value
		} else {
			args[argument.Name] = argument.Default
		}
	}
	in.SetArgs(args)

	var missingOptions []string
	for _, option := range registry.Options() {
		if in.HasLongOpt(option.Name) {
			continue
		}
		shortcuts := option.ShortcutList()
		if shortcut, ok := firstGiven(in, shortcuts); ok {
			in.SetLongOpt(option.Name, in.ShortOpt(shortcut))
			continue
		}
		if option.Required() {
			missingOptions = append(missingOptions, renderOption(option.Name, shortcuts))
		}
	}
	if len(missingOptions) > 0 {
		return &MissingOptionsError{Names: missingOptions}
	}

	return nil
}

// collectFrom gathers positional values at index and beyond. The
// declared default is returned when there are none.
func collectFrom(in *input.Input, start int, fallback any) any {
	var values []any
	for _, index := range in.PositionalIndexes() {
		if index >= start {
			value, _ := in.PositionalAt(index)
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}

// firstGiven returns the first shortcut present in the input.
func firstGiven(in *input.Input, shortcuts []string) (string, bool) {
	for _, shortcut := range shortcuts {
		if in.HasShortOpt(shortcut) {
			return shortcut, true
		}
	}
	return "", false
}

// renderOption formats a missing option as "--name|-a|-b".
func renderOption(name string, shortcuts []string) string {
	var builder strings.Builder
	builder.WriteString("--" + name)
	for _, shortcut := range shortcuts {
		builder.WriteString("|-" + shortcut)
	}
	return builder.String()
}
