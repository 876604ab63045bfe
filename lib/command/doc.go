// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package command runs commands declared with lib/definition.
//
// A [Command] is a node in a statically declared tree: a name, help
// metadata, a Configure function that declares its arguments and
// options, optional Subcommands, and lifecycle hooks. [Command.Execute]
// drives one invocation:
//
//  1. dispatch to a subcommand by the first word, suggesting the
//     closest name (edit distance <= 3) for typos
//  2. tokenize the remaining words with pflag ([Tokenize])
//  3. short-circuit to help output on -h or --help
//  4. run Before, validate the input (lib/validate), run Run, run After
//
// Configuration errors are coding defects: a Configure function that
// returns an error makes the first use of the command panic. Validation
// errors are user errors: they come back as a [UsageError] and Run is
// never entered. [Command.ExecuteInput] starts at step 3 for callers
// that already hold a parsed [input.Input].
//
// Help text is rendered from [definition.Synopsis] plus the command's
// metadata. The placeholders {name}, {command} and {script} in the
// description, usage and example text are replaced with the command
// name, the full command path, and the program name.
package command
