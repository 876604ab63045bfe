// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package input holds the raw, already-tokenized input of one command
// invocation: positional values by index, long options by name, and
// short options by character.
//
// An upstream tokenizer fills an [Input]; lib/validate then checks it
// against a declaration and rewrites the positional values into a
// name-keyed map in place ([Input.SetArgs]). An Input belongs to a
// single invocation and is not safe for concurrent use.
package input
