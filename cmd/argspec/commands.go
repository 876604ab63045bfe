// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/argspec/lib/command"
	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/version"
)

// rootCommand builds the argspec command tree.
func rootCommand() *command.Command {
	return &command.Command{
		Name: "argspec",
		Description: `Argspec: check command-line input against a definition.

A definition file (YAML or JSONC) declares a command's positional
arguments and named options. Argspec validates input against it,
renders its help view, and exports its normalized form.

The definition is taken from --definition or, when that is absent,
from the ARGSPEC_DEFINITION environment variable.`,
		Subcommands: []*command.Command{
			checkCommand(),
			synopsisCommand(),
			exportCommand(),
			versionCommand(),
		},
		Examples: []command.Example{
			{
				Description: "Validate arguments for a command",
				Command:     "argspec check -d copy.yaml -- -f a.txt b/",
			},
			{
				Description: "Validate a pre-parsed input document",
				Command:     "argspec check -d copy.yaml --input=request.yaml --json",
			},
			{
				Description: "Show the help view of a definition",
				Command:     "argspec synopsis -d copy.yaml",
			},
			{
				Description: "Inspect the CBOR snapshot of a definition",
				Command:     "argspec export -d copy.yaml --format=diag",
			},
		},
	}
}

func versionCommand() *command.Command {
	return &command.Command{
		Name:    "version",
		Summary: "Print version information",
		Configure: func(registry *definition.Registry) error {
			return registry.AddOption(jsonOption)
		},
		Run: func(_ context.Context, invocation *command.Invocation) error {
			if invocation.BoolOption("json") {
				return writeJSON(invocation.Stdout, version.Current())
			}
			_, err := fmt.Fprintf(invocation.Stdout, "argspec %s\n", version.Full())
			return err
		},
	}
}
