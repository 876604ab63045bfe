// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"chatty", slog.LevelInfo},
	}
	for _, test := range tests {
		if got := levelFromEnv(test.value); got != test.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestNewLogger_Handlers(t *testing.T) {
	var piped bytes.Buffer
	newLogger(&piped, false, slog.LevelInfo).Info("input rejected", "command", "copy")

	var record map[string]any
	if err := json.Unmarshal(piped.Bytes(), &record); err != nil {
		t.Fatalf("piped output is not JSON: %v (%q)", err, piped.String())
	}
	if record["msg"] != "input rejected" || record["command"] != "copy" {
		t.Errorf("record = %v", record)
	}

	var terminal bytes.Buffer
	newLogger(&terminal, true, slog.LevelInfo).Info("input rejected")
	if !strings.Contains(terminal.String(), `msg="input rejected"`) {
		t.Errorf("terminal output = %q, want text handler format", terminal.String())
	}

	var filtered bytes.Buffer
	newLogger(&filtered, false, slog.LevelWarn).Info("dropped")
	if filtered.Len() != 0 {
		t.Errorf("info record written at warn level: %q", filtered.String())
	}
}
