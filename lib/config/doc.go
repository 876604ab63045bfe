// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads command definitions and raw inputs from files.
//
// A definition file is YAML (.yaml, .yml) or JSONC (.json, .jsonc)
// describing one command:
//
//	description: Copy files
//	example: "{script} {name} -m 0644 a.txt b/"
//	arguments:
//	  - name: source
//	    mode: required
//	  - name: targets
//	    mode: array
//	options:
//	  - name: force
//	    shortcut: [f, F]
//	  - name: mode
//	    shortcut: m
//	    mode: required
//	  - name: log
//	    mode: optional
//	    default: ${HOME}/copy.log
//
// The definition path comes from a --definition flag or the
// ARGSPEC_DEFINITION environment variable (via [DefinitionPath]).
// There is no discovery and no search path.
//
// String defaults expand ${VAR} and ${VAR:-default} from the
// environment when the file is loaded. Nothing else is expanded.
//
// An input file holds a pre-parsed invocation for validation without
// tokenizing:
//
//	arguments:
//	  0: a.txt
//	  1: b/
//	long:
//	  mode: "0644"
//	short:
//	  f: true
//
// Argument keys that are non-negative integers are positions; any
// other key is kept as a string key, which validation reports as
// unknown.
//
// Key exports:
//
//   - [LoadDefinition] and [ParseDefinition] -- file or bytes to a
//     [definition.Registry]
//   - [LoadInput] and [ParseInput] -- file or bytes to an [input.Input]
//   - [DefinitionPath] -- flag value or environment fallback
package config
