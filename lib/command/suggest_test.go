// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/argspec/lib/definition"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"check", "check", 0},
		{"chek", "check", 1},
		{"kitten", "sitting", 3},
		{"synopsis", "sinopsys", 2},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := levenshtein(test.b, test.a); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestFlag_SkipsHiddenAndKnown(t *testing.T) {
	flagSet := pflag.NewFlagSet("tool", pflag.ContinueOnError)
	flagSet.Bool("format", false, "")
	hidden := flagSet.VarPF(&optionValue{mode: definition.OptionBoolean}, "formal", "", "")
	hidden.Hidden = true

	if got := suggestFlag([]string{"--format", "--formt"}, flagSet); got != "--format" {
		t.Errorf("suggestFlag() = %q, want --format", got)
	}
	if got := suggestFlag([]string{"--formall=x"}, flagSet); got != "--format" {
		t.Errorf("suggestFlag() = %q, want --format (hidden flags are never suggested)", got)
	}
	if got := suggestFlag([]string{"--", "--formt"}, flagSet); got != "" {
		t.Errorf("suggestFlag() after -- = %q, want empty", got)
	}
}
