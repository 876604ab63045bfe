// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestApplyVCSSettings(t *testing.T) {
	info := BuildInfo{Version: "1.0.0", Commit: "unknown", BuildTime: "unknown"}
	applyVCSSettings(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "GOARCH", Value: "amd64"},
	})

	if info.Commit != "0123456789ab" {
		t.Errorf("Commit = %q, want 12-character revision", info.Commit)
	}
	if !info.Dirty {
		t.Error("Dirty = false, want true")
	}
	if info.BuildTime != "2026-10-01T12:00:00Z" {
		t.Errorf("BuildTime = %q", info.BuildTime)
	}
	if got := info.info(); got != "1.0.0 (0123456789ab-dirty, 2026-10-01T12:00:00Z)" {
		t.Errorf("info() = %q", got)
	}
}

func TestCurrent_PrefersInjectedCommit(t *testing.T) {
	saved := GitCommit
	t.Cleanup(func() { GitCommit = saved })
	GitCommit = "abc1234"

	if got := Current().Commit; got != "abc1234" {
		t.Errorf("Commit = %q, want injected abc1234", got)
	}
	if full := Full(); !strings.Contains(full, "abc1234") || !strings.Contains(full, "Platform: ") {
		t.Errorf("Full() = %q", full)
	}
}
