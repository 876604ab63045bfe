// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/input"
)

// bareValue is the NoOptDefVal of options in optional-value mode. pflag
// hands it to Set when the option is given without "=value".
const bareValue = "\x00bare"

// aliasPrefix starts the pflag name of a hidden alias flag. No
// command-line word contains a NUL byte, so the alias is reachable only
// through its shorthand.
const aliasPrefix = "\x00"

// optionValue is the pflag.Value behind every declared option. Values
// are kept as any so the input carries bool, string, or []any exactly
// as a hand-built input would.
type optionValue struct {
	mode  definition.OptionMode
	value any
}

func (v *optionValue) String() string {
	if v.value == nil {
		return ""
	}
	return fmt.Sprint(v.value)
}

func (v *optionValue) Set(raw string) error {
	switch v.mode {
	case definition.OptionBoolean:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.value = parsed
	case definition.OptionOptional:
		if raw == bareValue {
			v.value = true
		} else {
			v.value = raw
		}
	case definition.OptionIsArray:
		values, _ := v.value.([]any)
		v.value = append(values, raw)
	default:
		v.value = raw
	}
	return nil
}

func (v *optionValue) Type() string {
	switch v.mode {
	case definition.OptionBoolean:
		return "bool"
	case definition.OptionIsArray:
		return "stringArray"
	default:
		return "string"
	}
}

// boundFlag records which option a pflag entry stands for. Shortcuts
// beyond the first become hidden flags with alias set.
type boundFlag struct {
	option string
	alias  string
	value  *optionValue
}

// Tokenize splits command-line words into an [input.Input] using a
// pflag.FlagSet derived from registry:
//
//   - boolean options take no value ("--force", "--force=false")
//   - required and array options take a value ("--mode 0644",
//     "-m0644"); array options may repeat
//   - optional-value options take a value only in "--log=path" form and
//     are recorded as true when bare
//   - the first shortcut of an option is its pflag shorthand; further
//     shortcuts are hidden aliases recorded as short options
//   - "-h"/"--help" are added when the registry does not use them
//
// Words that are not options become positional values in order; "--"
// ends option parsing. Shortcuts that are not single-byte characters
// cannot be expressed as pflag shorthands and are not recognized.
func Tokenize(name string, registry *definition.Registry, args []string) (*input.Input, error) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	bound := make(map[string]boundFlag)

	for _, option := range registry.Options() {
		value := &optionValue{mode: option.Mode}
		shortcuts := option.ShortcutList()

		shorthand := ""
		if len(shortcuts) > 0 && len(shortcuts[0]) == 1 {
			shorthand = shortcuts[0]
		}
		flag := flagSet.VarPF(value, option.Name, shorthand, option.Description)
		applyNoOptDefault(flag, option.Mode)
		bound[option.Name] = boundFlag{option: option.Name, value: value}

		for _, extra := range shortcuts[min(1, len(shortcuts)):] {
			aliasName := aliasPrefix + extra
			if len(extra) != 1 || registry.HasOption(aliasName) {
				continue
			}
			aliasFlag := flagSet.VarPF(value, aliasName, extra, "")
			aliasFlag.Hidden = true
			applyNoOptDefault(aliasFlag, option.Mode)
			bound[aliasName] = boundFlag{option: option.Name, alias: extra, value: value}
		}
	}

	if !registry.HasOption("help") {
		helpShorthand := "h"
		if registry.HasShortcut("h") {
			helpShorthand = ""
		}
		flagSet.BoolP("help", helpShorthand, false, definition.HelpOptionDescription)
	}

	if err := flagSet.Parse(args); err != nil {
		message := parseErrorMessage(err, bound)
		if strings.Contains(message, "unknown") {
			if suggestion := suggestFlag(args, flagSet); suggestion != "" {
				return nil, fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.", message, suggestion, name)
			}
		}
		return nil, fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, name)
	}

	in := input.New()
	in.Command = name

	flagSet.Visit(func(flag *pflag.Flag) {
		if flag.Name == "help" && !registry.HasOption("help") {
			in.SetLongOpt("help", true)
			return
		}
		entry, ok := bound[flag.Name]
		if !ok {
			return
		}
		if entry.alias != "" {
			in.SetShortOpt(entry.alias, entry.value.value)
		} else {
			in.SetLongOpt(entry.option, entry.value.value)
		}
	})

	for index, word := range flagSet.Args() {
		in.SetArgument(index, word)
	}

	return in, nil
}

// parseErrorMessage renders a pflag parse error. Errors on a hidden
// alias flag name the shortcut the user typed instead of the alias.
func parseErrorMessage(err error, bound map[string]boundFlag) string {
	var invalid *pflag.InvalidValueError
	if errors.As(err, &invalid) {
		if entry := bound[invalid.GetFlag().Name]; entry.alias != "" {
			return fmt.Sprintf("invalid argument %q for %q flag: %v", invalid.GetValue(), "-"+entry.alias, errors.Unwrap(invalid))
		}
	}
	return err.Error()
}

func applyNoOptDefault(flag *pflag.Flag, mode definition.OptionMode) {
	switch mode {
	case definition.OptionBoolean:
		flag.NoOptDefVal = "true"
	case definition.OptionOptional:
		flag.NoOptDefVal = bareValue
	}
}
