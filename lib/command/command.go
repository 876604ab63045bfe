// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bureau-foundation/argspec/lib/definition"
	"github.com/bureau-foundation/argspec/lib/input"
	"github.com/bureau-foundation/argspec/lib/validate"
)

// Command is a command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g. "check").
	Name string

	// Summary is a one-line description shown in the parent's command
	// listing.
	Summary string

	// Description is the detailed text at the top of the command's own
	// help. Falls back to the registry description, then Summary.
	Description string

	// Usage overrides the synthesized usage line.
	Usage string

	// Examples are shown at the end of the help output.
	Examples []Example

	// Configure declares the command's arguments and options. Called
	// once, on first use. An error here is a defect in the command and
	// makes that first use panic.
	Configure func(registry *definition.Registry) error

	// Subcommands are dispatched by the first positional word.
	Subcommands []*Command

	// Before runs after help handling and before validation.
	Before func(ctx context.Context, invocation *Invocation) error

	// Run executes the command with validated input. When both Run and
	// Subcommands are set, Run handles words that match no subcommand.
	Run func(ctx context.Context, invocation *Invocation) error

	// After runs when Run succeeds.
	After func(ctx context.Context, invocation *Invocation) error

	// OnError observes any error returned by Before, Run or After
	// before it is passed back to the caller.
	OnError func(ctx context.Context, invocation *Invocation, err error)

	// Logger, Stdout and Stderr are inherited from the parent when nil.
	// At the root the defaults are a discarding logger, os.Stdout and
	// os.Stderr.
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// parent is set once by link. A command belongs to a single tree.
	parent   *Command
	linkOnce sync.Once

	configureOnce sync.Once
	registry      *definition.Registry
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Definition returns the command's registry, running Configure on the
// first call. Panics if Configure fails.
func (c *Command) Definition() *definition.Registry {
	c.configureOnce.Do(func() {
		registry := &definition.Registry{}
		if c.Configure != nil {
			if err := c.Configure(registry); err != nil {
				panic(fmt.Sprintf("command %q: invalid definition: %v", c.fullName(), err))
			}
		}
		c.registry = registry
	})
	return c.registry
}

// link points every subcommand below c at its parent. Dispatch only
// reads the links, so concurrent Execute calls on one tree are safe.
func (c *Command) link() {
	c.linkOnce.Do(func() {
		for _, sub := range c.Subcommands {
			sub.parent = c
			sub.link()
		}
	})
}

// Execute dispatches args to the matching subcommand, or tokenizes them
// and runs this command.
func (c *Command) Execute(ctx context.Context, args []string) error {
	c.link()
	if len(c.Subcommands) > 0 && len(args) > 0 {
		first := args[0]
		if first == "help" {
			c.PrintHelp(c.stdout(), nil)
			return nil
		}
		if !strings.HasPrefix(first, "-") {
			for _, sub := range c.Subcommands {
				if sub.Name == first {
					return sub.Execute(ctx, args[1:])
				}
			}
			if c.Run == nil {
				if suggestion := suggestCommand(first, c.Subcommands); suggestion != "" {
					return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
						first, suggestion, c.fullName())
				}
				return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.", first, c.fullName())
			}
		}
	}

	if len(c.Subcommands) > 0 && c.Run == nil {
		if len(args) > 0 && isHelpFlag(args[0]) {
			c.PrintHelp(c.stdout(), nil)
			return nil
		}
		c.PrintHelp(c.stderr(), nil)
		if len(args) == 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("subcommand required (got flag %q)", args[0])
	}

	in, err := Tokenize(c.fullName(), c.Definition(), args)
	if err != nil {
		return err
	}
	return c.ExecuteInput(ctx, in)
}

// ExecuteInput runs this command with already-tokenized input: help
// handling, Before, validation, Run, After. On success in has been
// normalized by lib/validate.
func (c *Command) ExecuteInput(ctx context.Context, in *input.Input) error {
	registry := c.Definition()
	name := c.fullName()

	if in.Command == "" {
		in.Command = name
	}
	if in.Script == "" && len(os.Args) > 0 {
		in.Script = filepath.Base(os.Args[0])
	}

	if helpRequested(registry, in) {
		c.PrintHelp(c.stdout(), in)
		return nil
	}

	logger := c.logger().With("command", name)
	invocation := &Invocation{
		Command:    c,
		Definition: registry,
		Input:      in,
		Logger:     logger,
		Stdout:     c.stdout(),
		Stderr:     c.stderr(),
	}

	if c.Before != nil {
		if err := c.Before(ctx, invocation); err != nil {
			return c.fail(ctx, invocation, err)
		}
	}

	if err := validate.Validate(registry, in); err != nil {
		logger.Info("input rejected", "error", err)
		return &UsageError{Command: name, Err: err}
	}
	logger.Debug("input validated", "arguments", len(in.Args()), "options", len(in.LongOpts()))

	if c.Run == nil {
		c.PrintHelp(c.stderr(), in)
		return fmt.Errorf("no action defined for %q", name)
	}
	if err := c.Run(ctx, invocation); err != nil {
		return c.fail(ctx, invocation, err)
	}

	if c.After != nil {
		if err := c.After(ctx, invocation); err != nil {
			return c.fail(ctx, invocation, err)
		}
	}
	logger.Debug("command finished")
	return nil
}

func (c *Command) fail(ctx context.Context, invocation *Invocation, err error) error {
	invocation.Logger.Debug("command failed", "error", err)
	if c.OnError != nil {
		c.OnError(ctx, invocation, err)
	}
	return err
}

// helpRequested reports whether the input asks for help through the
// built-in -h/--help, which exists only where the registry does not
// claim those names itself.
func helpRequested(registry *definition.Registry, in *input.Input) bool {
	if !registry.HasOption("help") && in.HasLongOpt("help") {
		return true
	}
	return !registry.HasShortcut("h") && in.HasShortOpt("h")
}

// fullName returns the command path (e.g. "argspec check").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) logger() *slog.Logger {
	for node := c; node != nil; node = node.parent {
		if node.Logger != nil {
			return node.Logger
		}
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Command) stdout() io.Writer {
	for node := c; node != nil; node = node.parent {
		if node.Stdout != nil {
			return node.Stdout
		}
	}
	return os.Stdout
}

func (c *Command) stderr() io.Writer {
	for node := c; node != nil; node = node.parent {
		if node.Stderr != nil {
			return node.Stderr
		}
	}
	return os.Stderr
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
