// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for argspec packages.
//
// [WriteFile] writes a fixture (definition or input document) into a
// fresh t.TempDir() and returns its path. The file name matters: its
// extension selects the document format, and cmd/argspec derives the
// checked command's name from it.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no argspec-internal dependencies.
package testutil
