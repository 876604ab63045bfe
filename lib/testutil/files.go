// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
)

// WriteFile writes content to name inside a new temporary directory
// and returns the file's path. The directory is removed when the test
// completes.
//
//	path := testutil.WriteFile(t, "copy.yaml", definitionYAML)
func WriteFile(t interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
