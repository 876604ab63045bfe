// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package definition declares the positional arguments and named options
// a command accepts.
//
// A [Registry] is populated once while a command is configured and is
// read-only afterwards. Every add operation enforces the structural rules
// at the point of declaration:
//
//   - argument and option names are unique
//   - at most one array argument exists, and nothing may follow it
//   - a required argument may not follow an optional one
//   - an option shortcut character is bound to at most one option
//   - defaults must fit the mode (no default for required arguments,
//     none or false for boolean options, a slice for array modes)
//
// Violations are returned as errors wrapping one of the sentinel kinds
// ([ErrInvalidSpec], [ErrDuplicateName], [ErrDuplicateShortcut],
// [ErrOrderingViolation], [ErrInvalidDefault]). They signal a defect in
// the command's configuration, so the Must variants panic instead.
//
// [Registry.Synopsis] produces the structured help view (usage tokens,
// argument and option descriptions, example text). Rendering that view
// as text is left to the caller; see lib/command.
//
// [Registry.Snapshot] and [FromSnapshot] convert a registry to and from
// a serializable form, and [Registry.Fingerprint] hashes the snapshot's
// deterministic CBOR encoding so that two registries with the same
// declarations can be compared by value.
package definition
