// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/argspec/lib/command"
	"github.com/bureau-foundation/argspec/lib/definition"
)

func synopsisCommand() *command.Command {
	return &command.Command{
		Name:    "synopsis",
		Summary: "Print the help view of a definition",
		Description: `Print the usage line, arguments and options of the defined
command. Required entries are marked with "` + definition.RequiredMarker + `".

With --short all options collapse into a single [options] token and
only the help option is listed.`,
		Configure: func(registry *definition.Registry) error {
			return registry.AddOptions([]definition.Option{
				definitionOption,
				{Name: "short", Shortcut: "s", Description: "collapse options into [options]"},
				jsonOption,
			})
		},
		Before: definitionFromEnvironment,
		Run: func(_ context.Context, invocation *command.Invocation) error {
			registry, err := loadDefinition(invocation)
			if err != nil {
				return err
			}
			synopsis := registry.Synopsis(invocation.BoolOption("short"))
			if invocation.BoolOption("json") {
				return writeJSON(invocation.Stdout, synopsis)
			}
			name := commandName(invocation.StringOption("definition"))
			return writeSynopsis(invocation.Stdout, name, synopsis)
		},
	}
}

func writeSynopsis(w io.Writer, name string, synopsis definition.Synopsis) error {
	vars := map[string]string{"name": name, "command": name, "script": name}

	if synopsis.Description != "" {
		fmt.Fprintf(w, "%s\n\n", command.ExpandVars(synopsis.Description, vars))
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", strings.TrimSpace(name+" "+synopsis.UsageLine()))

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	if len(synopsis.Arguments) > 0 {
		fmt.Fprintf(tw, "\nArguments:\n")
		for _, entry := range synopsis.Arguments {
			fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Description)
		}
	}
	fmt.Fprintf(tw, "\nOptions:\n")
	for _, entry := range synopsis.Options {
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if synopsis.Example != "" {
		fmt.Fprintf(w, "\nExample:\n")
		for _, line := range strings.Split(command.ExpandVars(synopsis.Example, vars), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
	return nil
}
