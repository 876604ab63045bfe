// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Argspec checks command-line input against a command definition
// file. It validates argument words or pre-parsed input documents
// (check), renders the help view of a definition (synopsis), and
// exports a definition's normalized snapshot with its fingerprint
// (export). Its own commands are declared with the same definition
// registry it checks others against.
package main
