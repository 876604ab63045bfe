// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package validate reconciles one invocation's raw input with a
// command's declared arguments and options.
//
// [Validate] runs four phases in order and stops at the first phase
// that finds a problem, reporting every problem of that phase at once:
//
//  1. string-keyed positional entries: [UnknownArgumentsError]
//  2. required arguments without a value: [MissingArgumentsError]
//  3. normalization: positional values become a name-keyed map, with
//     declared defaults for anything not supplied
//  4. required options supplied neither by long name nor by shortcut:
//     [MissingOptionsError]
//
// Values are passed through as given; there is no type coercion. The
// three error types are expected, user-facing outcomes: each matches
// [ErrInvalidInput] under errors.Is and has a message fit to show as is.
package validate
