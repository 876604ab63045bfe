// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"maps"
	"slices"
)

// Input is the parsed input of one invocation.
type Input struct {
	// Script is the program name as invoked (argv[0]).
	Script string

	// Command is the resolved command path, e.g. "argspec check".
	Command string

	positional map[int]any
	// stringKeyed holds positional entries a tokenizer produced under
	// a name instead of an index. A declaration never accepts them.
	stringKeyed map[string]any

	args       map[string]any
	normalized bool

	longOpts  map[string]any
	shortOpts map[string]any
}

// New returns an empty Input.
func New() *Input {
	return &Input{
		positional:  make(map[int]any),
		stringKeyed: make(map[string]any),
		longOpts:    make(map[string]any),
		shortOpts:   make(map[string]any),
	}
}

// FromValues returns an Input whose positional values are values, in
// order from index zero.
func FromValues(values ...any) *Input {
	in := New()
	for index, value := range values {
		in.SetArgument(index, value)
	}
	return in
}

// SetArgument stores a positional value at index.
func (in *Input) SetArgument(index int, value any) {
	if in.positional == nil {
		in.positional = make(map[int]any)
	}
	in.positional[index] = value
}

// SetNamedArgument stores a positional entry keyed by a string, as
// some tokenizers produce for "key=value" words.
func (in *Input) SetNamedArgument(key string, value any) {
	if in.stringKeyed == nil {
		in.stringKeyed = make(map[string]any)
	}
	in.stringKeyed[key] = value
}

// Positional returns a copy of the index-keyed positional values.
func (in *Input) Positional() map[int]any {
	return maps.Clone(in.positional)
}

// PositionalAt returns the value at index and whether one was given.
func (in *Input) PositionalAt(index int) (any, bool) {
	value, ok := in.positional[index]
	return value, ok
}

// PositionalIndexes returns the supplied indexes in ascending order.
func (in *Input) PositionalIndexes() []int {
	return slices.Sorted(maps.Keys(in.positional))
}

// StringKeyed returns a copy of the string-keyed positional entries.
func (in *Input) StringKeyed() map[string]any {
	return maps.Clone(in.stringKeyed)
}

// SetArgs replaces the positional form with a name-keyed argument map.
// After this call Positional and StringKeyed are empty and Normalized
// reports true.
func (in *Input) SetArgs(args map[string]any) {
	in.args = args
	in.positional = make(map[int]any)
	in.stringKeyed = make(map[string]any)
	in.normalized = true
}

// Normalized reports whether SetArgs has been called.
func (in *Input) Normalized() bool { return in.normalized }

// Args returns a copy of the name-keyed arguments. Empty until the
// input is normalized.
func (in *Input) Args() map[string]any {
	return maps.Clone(in.args)
}

// Arg returns the normalized value of the argument name.
func (in *Input) Arg(name string) (any, bool) {
	value, ok := in.args[name]
	return value, ok
}

// SetLongOpt stores the value of a long option.
func (in *Input) SetLongOpt(name string, value any) {
	if in.longOpts == nil {
		in.longOpts = make(map[string]any)
	}
	in.longOpts[name] = value
}

// HasLongOpt reports whether the long option was supplied.
func (in *Input) HasLongOpt(name string) bool {
	_, ok := in.longOpts[name]
	return ok
}

// LongOpt returns the long option's value, or nil.
func (in *Input) LongOpt(name string) any {
	return in.longOpts[name]
}

// LongOpts returns a copy of the long options.
func (in *Input) LongOpts() map[string]any {
	return maps.Clone(in.longOpts)
}

// SetShortOpt stores the value of a short option character.
func (in *Input) SetShortOpt(char string, value any) {
	if in.shortOpts == nil {
		in.shortOpts = make(map[string]any)
	}
	in.shortOpts[char] = value
}

// HasShortOpt reports whether the short option was supplied.
func (in *Input) HasShortOpt(char string) bool {
	_, ok := in.shortOpts[char]
	return ok
}

// ShortOpt returns the short option's value, or nil.
func (in *Input) ShortOpt(char string) any {
	return in.shortOpts[char]
}

// ShortOpts returns a copy of the short options.
func (in *Input) ShortOpts() map[string]any {
	return maps.Clone(in.shortOpts)
}

// HasOpt reports whether the option was supplied in either form: the
// long name, or any of the given shortcut characters.
func (in *Input) HasOpt(name string, shortcuts ...string) bool {
	if in.HasLongOpt(name) {
		return true
	}
	for _, shortcut := range shortcuts {
		if in.HasShortOpt(shortcut) {
			return true
		}
	}
	return false
}
