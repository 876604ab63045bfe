// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bureau-foundation/argspec/lib/command"
	"github.com/bureau-foundation/argspec/lib/config"
	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/input"
	"github.com/bureau-foundation/argspec/lib/validate"
)

func checkCommand() *command.Command {
	return &command.Command{
		Name:    "check",
		Summary: "Validate input against a definition",
		Description: `Validate one invocation of the defined command and print its
normalized arguments and options.

Input is either the words after "--", tokenized the way a shell
command line is, or a pre-parsed input document given with
--input=FILE (YAML or JSONC). A bare --input reads a YAML document
from stdin.

Options that were not given are listed with their declared default.
With --json, a rejected input is reported on stdout and the exit
status is 1.`,
		Usage: "argspec check [-d FILE] [--input[=FILE]] [--json] [--] [ARGS...]",
		Examples: []command.Example{
			{
				Description: "Check a command line",
				Command:     "{command} -d copy.yaml -- -m 0644 a.txt b/",
			},
			{
				Description: "Check a pre-parsed document from stdin",
				Command:     "{command} -d copy.yaml --input --json < request.yaml",
			},
		},
		Configure: func(registry *definition.Registry) error {
			err := registry.AddArgument(definition.Argument{
				Name:        "args",
				Mode:        definition.ArgumentIsArray,
				Description: "words to validate, given after --",
			})
			if err != nil {
				return err
			}
			return registry.AddOptions([]definition.Option{
				definitionOption,
				{
					Name:        "input",
					Mode:        definition.OptionOptional,
					Description: "pre-parsed input document; stdin when given without a file",
				},
				jsonOption,
			})
		},
		Before: definitionFromEnvironment,
		Run:    runCheck,
	}
}

// checkResult is the outcome of one check.
type checkResult struct {
	Valid     bool                                `json:"valid"`
	Error     string                              `json:"error,omitempty"`
	Category  string                              `json:"category,omitempty"`
	Arguments *orderedmap.OrderedMap[string, any] `json:"arguments,omitempty"`
	Options   *orderedmap.OrderedMap[string, any] `json:"options,omitempty"`

	defaulted map[string]bool
}

func runCheck(_ context.Context, invocation *command.Invocation) error {
	registry, err := loadDefinition(invocation)
	if err != nil {
		return err
	}
	path := invocation.StringOption("definition")
	name := commandName(path)

	in, err := checkInput(invocation, registry, name)
	if err != nil {
		return err
	}

	asJSON := invocation.BoolOption("json")
	if err := validate.Validate(registry, in); err != nil {
		category := command.CategoryOf(err)
		invocation.Logger.Info("input rejected", "definition", path, "category", category)
		if !asJSON {
			return err
		}
		result := checkResult{Error: err.Error(), Category: string(category)}
		if writeErr := writeJSON(invocation.Stdout, result); writeErr != nil {
			return writeErr
		}
		return &command.ExitError{Code: 1}
	}

	result := resolve(registry, in)
	if asJSON {
		return writeJSON(invocation.Stdout, result)
	}
	return result.writeText(invocation.Stdout)
}

// checkInput builds the input to validate from either --input or the
// words after "--".
func checkInput(invocation *command.Invocation, registry *definition.Registry, name string) (*input.Input, error) {
	words, err := stringWords(invocation.Arg("args"))
	if err != nil {
		return nil, err
	}

	if !invocation.OptionSet("input") {
		return command.Tokenize(name, registry, words)
	}
	if len(words) > 0 {
		return nil, fmt.Errorf("--input and command-line words are mutually exclusive (got %q)", words[0])
	}

	var in *input.Input
	switch source := invocation.Option("input").(type) {
	case string:
		in, err = config.LoadInput(source)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, command.NotFound("input file %s does not exist", source)
		}
	default:
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		in, err = config.ParseInput(data, config.FormatYAML)
	}
	if err != nil {
		return nil, err
	}
	if in.Command == "" {
		in.Command = name
	}
	return in, nil
}

func stringWords(value any) ([]string, error) {
	values, _ := value.([]any)
	words := make([]string, 0, len(values))
	for _, element := range values {
		word, ok := element.(string)
		if !ok {
			return nil, fmt.Errorf("argument word %v is %T, not a string", element, element)
		}
		words = append(words, word)
	}
	return words, nil
}

// resolve lists every declared argument and option in declaration
// order. Options that were not given take their declared default.
func resolve(registry *definition.Registry, in *input.Input) checkResult {
	result := checkResult{
		Valid:     true,
		Arguments: orderedmap.New[string, any](),
		Options:   orderedmap.New[string, any](),
		defaulted: make(map[string]bool),
	}
	for _, argument := range registry.Arguments() {
		value, _ := in.Arg(argument.Name)
		result.Arguments.Set(argument.Name, value)
	}
	for _, option := range registry.Options() {
		if in.HasLongOpt(option.Name) {
			result.Options.Set(option.Name, in.LongOpt(option.Name))
			continue
		}
		result.Options.Set(option.Name, option.Default)
		result.defaulted[option.Name] = true
	}
	return result
}

func (r checkResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	if r.Arguments.Len() > 0 {
		fmt.Fprintln(tw, "arguments:")
		for pair := r.Arguments.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(tw, "  %s\t%s\n", pair.Key, formatValue(pair.Value))
		}
	}
	if r.Options.Len() > 0 {
		fmt.Fprintln(tw, "options:")
		for pair := r.Options.Oldest(); pair != nil; pair = pair.Next() {
			suffix := ""
			if r.defaulted[pair.Key] {
				suffix = "\t(default)"
			}
			fmt.Fprintf(tw, "  %s\t%s%s\n", pair.Key, formatValue(pair.Value), suffix)
		}
	}
	return tw.Flush()
}

func formatValue(value any) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprint(value)
}
