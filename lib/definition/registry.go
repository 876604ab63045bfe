// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"maps"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry holds the declared arguments and options of one command.
//
// A Registry is built during configuration and then only read. Reads
// may happen from several goroutines once configuration is done; the
// add and set operations are not safe to call concurrently with
// anything else. To change a command's declarations at run time,
// build a new Registry.
type Registry struct {
	description string
	example     string

	// arguments is ordered by declaration, which is positional order.
	arguments *orderedmap.OrderedMap[string, Argument]
	options   *orderedmap.OrderedMap[string, Option]

	// shortcuts maps a shortcut character to its option's long name.
	shortcuts map[string]string

	requiredCount       int
	hasArrayArgument    bool
	hasOptionalArgument bool
}

// New returns a registry populated with arguments and options, in
// order. It stops at the first declaration error.
func New(arguments []Argument, options []Option) (*Registry, error) {
	registry := &Registry{}
	registry.resetArguments()
	registry.resetOptions()
	if err := registry.AddArguments(arguments); err != nil {
		return nil, err
	}
	if err := registry.AddOptions(options); err != nil {
		return nil, err
	}
	return registry, nil
}

// MustNew is [New] for static declarations. It panics on error.
func MustNew(arguments []Argument, options []Option) *Registry {
	registry, err := New(arguments, options)
	if err != nil {
		panic("definition.MustNew: " + err.Error())
	}
	return registry
}

func (r *Registry) resetArguments() {
	r.arguments = orderedmap.New[string, Argument]()
	r.requiredCount = 0
	r.hasArrayArgument = false
	r.hasOptionalArgument = false
}

func (r *Registry) resetOptions() {
	r.options = orderedmap.New[string, Option]()
	r.shortcuts = make(map[string]string)
}

// lazyInit makes the zero Registry usable.
func (r *Registry) lazyInit() {
	if r.arguments == nil {
		r.resetArguments()
	}
	if r.options == nil {
		r.resetOptions()
	}
}

// SetDescription sets the free text shown at the top of the synopsis.
func (r *Registry) SetDescription(description string) { r.description = description }

// Description returns the free text set by SetDescription.
func (r *Registry) Description() string { return r.description }

// SetExample sets the example text shown at the end of the synopsis.
func (r *Registry) SetExample(example string) { r.example = example }

// Example returns the text set by SetExample.
func (r *Registry) Example() string { return r.example }

// SetArguments discards every declared argument and declares the given
// ones in order.
func (r *Registry) SetArguments(arguments []Argument) error {
	r.lazyInit()
	r.resetArguments()
	return r.AddArguments(arguments)
}

// AddArguments declares each argument in order, stopping at the first
// error. Arguments declared before the failing one stay registered.
func (r *Registry) AddArguments(arguments []Argument) error {
	for _, argument := range arguments {
		if err := r.AddArgument(argument); err != nil {
			return err
		}
	}
	return nil
}

// AddArgument declares one positional argument after those already
// declared.
func (r *Registry) AddArgument(argument Argument) error {
	r.lazyInit()

	argument, err := argument.normalize()
	if err != nil {
		return err
	}

	if _, exists := r.arguments.Get(argument.Name); exists {
		return fmt.Errorf("an argument named %q already exists: %w", argument.Name, ErrDuplicateName)
	}
	if r.hasArrayArgument {
		return fmt.Errorf("argument %q: cannot add an argument after an array argument: %w", argument.Name, ErrOrderingViolation)
	}
	if argument.Required() && r.hasOptionalArgument {
		return fmt.Errorf("argument %q: cannot add a required argument after an optional one: %w", argument.Name, ErrOrderingViolation)
	}
	argument, err = argument.withDefault()
	if err != nil {
		return err
	}

	if argument.Required() {
		r.requiredCount++
	} else {
		r.hasOptionalArgument = true
	}
	if argument.IsArray() {
		r.hasArrayArgument = true
	}

	r.arguments.Set(argument.Name, argument)
	return nil
}

// MustAddArgument is AddArgument for static declarations. It panics
// on error.
func (r *Registry) MustAddArgument(argument Argument) *Registry {
	if err := r.AddArgument(argument); err != nil {
		panic("definition: " + err.Error())
	}
	return r
}

// Argument returns the argument declared under name.
func (r *Registry) Argument(name string) (Argument, error) {
	if r.arguments != nil {
		if argument, ok := r.arguments.Get(name); ok {
			return argument, nil
		}
	}
	return Argument{}, fmt.Errorf("argument %q: %w", name, ErrNotFound)
}

// ArgumentAt returns the argument at the zero-based position index.
func (r *Registry) ArgumentAt(index int) (Argument, error) {
	if index >= 0 && r.arguments != nil {
		position := 0
		for pair := r.arguments.Oldest(); pair != nil; pair = pair.Next() {
			if position == index {
				return pair.Value, nil
			}
			position++
		}
	}
	return Argument{}, fmt.Errorf("argument at position %d: %w", index, ErrNotFound)
}

// HasArgument reports whether an argument named name is declared.
func (r *Registry) HasArgument(name string) bool {
	_, err := r.Argument(name)
	return err == nil
}

// HasArgumentAt reports whether an argument is declared at position
// index.
func (r *Registry) HasArgumentAt(index int) bool {
	return index >= 0 && index < r.ArgumentCount()
}

// Arguments returns the declared arguments in positional order.
func (r *Registry) Arguments() []Argument {
	if r.arguments == nil {
		return nil
	}
	result := make([]Argument, 0, r.arguments.Len())
	for pair := r.arguments.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}

// ArgumentCount returns the number of declared arguments.
func (r *Registry) ArgumentCount() int {
	if r.arguments == nil {
		return 0
	}
	return r.arguments.Len()
}

// RequiredArgumentCount returns the number of required arguments.
func (r *Registry) RequiredArgumentCount() int { return r.requiredCount }

// HasArrayArgument reports whether the last argument is an array.
func (r *Registry) HasArrayArgument() bool { return r.hasArrayArgument }

// ArgumentIsRequired reports whether name is declared and required.
// Undeclared names are not required.
func (r *Registry) ArgumentIsRequired(name string) bool {
	argument, err := r.Argument(name)
	return err == nil && argument.Required()
}

// SetOptions discards every declared option and shortcut and declares
// the given options in order.
func (r *Registry) SetOptions(options []Option) error {
	r.lazyInit()
	r.resetOptions()
	return r.AddOptions(options)
}

// AddOptions declares each option in order, stopping at the first
// error.
func (r *Registry) AddOptions(options []Option) error {
	for _, option := range options {
		if err := r.AddOption(option); err != nil {
			return err
		}
	}
	return nil
}

// AddOption declares one option and binds its shortcuts. Nothing is
// registered when an error is returned.
func (r *Registry) AddOption(option Option) error {
	r.lazyInit()

	option, shortcuts, err := option.normalize()
	if err != nil {
		return err
	}

	if _, exists := r.options.Get(option.Name); exists {
		return fmt.Errorf("an option named %q already exists: %w", option.Name, ErrDuplicateName)
	}
	option, err = option.withDefault()
	if err != nil {
		return err
	}
	for _, shortcut := range shortcuts {
		if owner, bound := r.shortcuts[shortcut]; bound {
			return fmt.Errorf("option %q: shortcut %q is already bound to --%s: %w", option.Name, shortcut, owner, ErrDuplicateShortcut)
		}
	}

	for _, shortcut := range shortcuts {
		r.shortcuts[shortcut] = option.Name
	}
	r.options.Set(option.Name, option)
	return nil
}

// MustAddOption is AddOption for static declarations. It panics on
// error.
func (r *Registry) MustAddOption(option Option) *Registry {
	if err := r.AddOption(option); err != nil {
		panic("definition: " + err.Error())
	}
	return r
}

// Option returns the option declared under the long name.
func (r *Registry) Option(name string) (Option, error) {
	if r.options != nil {
		if option, ok := r.options.Get(name); ok {
			return option, nil
		}
	}
	return Option{}, fmt.Errorf("option --%s: %w", name, ErrNotFound)
}

// HasOption reports whether an option with the long name is declared.
func (r *Registry) HasOption(name string) bool {
	_, err := r.Option(name)
	return err == nil
}

// Options returns the declared options in declaration order.
func (r *Registry) Options() []Option {
	if r.options == nil {
		return nil
	}
	result := make([]Option, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}

// OptionCount returns the number of declared options.
func (r *Registry) OptionCount() int {
	if r.options == nil {
		return 0
	}
	return r.options.Len()
}

// HasShortcut reports whether the shortcut character is bound.
func (r *Registry) HasShortcut(shortcut string) bool {
	_, bound := r.shortcuts[shortcut]
	return bound
}

// OptionByShortcut resolves a shortcut character to its option.
func (r *Registry) OptionByShortcut(shortcut string) (Option, error) {
	name, bound := r.shortcuts[shortcut]
	if !bound {
		return Option{}, fmt.Errorf("option -%s: %w", shortcut, ErrNotFound)
	}
	return r.Option(name)
}

// Shortcuts returns a copy of the shortcut table, character to long
// option name.
func (r *Registry) Shortcuts() map[string]string {
	return maps.Clone(r.shortcuts)
}
