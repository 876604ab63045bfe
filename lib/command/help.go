// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/argspec/lib/input"
)

// ExpandVars replaces each "{key}" in text with vars[key]. Unknown
// placeholders are left alone.
func ExpandVars(text string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(text, "{") {
		return text
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, "{"+key+"}", vars[key])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// helpVars returns the placeholders available to help text: {name},
// {command} and {script}.
func (c *Command) helpVars(in *input.Input) map[string]string {
	script := ""
	if in != nil {
		script = in.Script
	}
	if script == "" && len(os.Args) > 0 {
		script = filepath.Base(os.Args[0])
	}
	return map[string]string{
		"name":    c.Name,
		"command": c.fullName(),
		"script":  script,
	}
}

// PrintHelp writes the help text of the command to w: description,
// usage line, subcommands, arguments, options and examples. in may be
// nil; when given, its Script fills the {script} placeholder.
func (c *Command) PrintHelp(w io.Writer, in *input.Input) {
	name := c.fullName()
	vars := c.helpVars(in)
	synopsis := c.Definition().Synopsis(false)

	description := c.Description
	if description == "" {
		description = synopsis.Description
	}
	if description == "" {
		description = c.Summary
	}
	if description != "" {
		fmt.Fprintf(w, "%s\n\n", ExpandVars(description, vars))
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", ExpandVars(c.Usage, vars))
	case len(c.Subcommands) > 0 && c.Run == nil:
		fmt.Fprintf(w, "Usage:\n  %s <command> [options]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s\n", strings.TrimSpace(name+" "+synopsis.UsageLine()))
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if len(synopsis.Arguments) > 0 {
		fmt.Fprintf(w, "\nArguments:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, entry := range synopsis.Arguments {
			fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Description)
		}
		tw.Flush()
	}

	if len(synopsis.Options) > 0 {
		fmt.Fprintf(w, "\nOptions:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, entry := range synopsis.Options {
			fmt.Fprintf(tw, "  %s\t%s\n", entry.Name, entry.Description)
		}
		tw.Flush()
	}

	if len(c.Examples) > 0 || synopsis.Example != "" {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", ExpandVars(example.Command, vars))
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
		if synopsis.Example != "" {
			for _, line := range strings.Split(ExpandVars(synopsis.Example, vars), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}
