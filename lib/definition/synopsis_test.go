// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"reflect"
	"testing"
)

func sampleRegistry() *Registry {
	registry := MustNew(
		[]Argument{
			{Name: "source", Mode: ArgumentRequired, Description: "file to copy"},
			{Name: "targets", Mode: ArgumentIsArray, Description: "destinations"},
		},
		[]Option{
			{Name: "force", Shortcut: "f", Description: "overwrite"},
			{Name: "mode", Shortcut: "m|M", Mode: OptionRequired, Description: "file mode"},
			{Name: "log", Mode: OptionOptional, Description: "log file"},
			{Name: "exclude", Mode: OptionIsArray, Description: "patterns to skip"},
		},
	)
	registry.SetDescription("Copy a file to one or more places.")
	registry.SetExample("{command} a.txt b/ c/")
	return registry
}

func TestSynopsis_Long(t *testing.T) {
	synopsis := sampleRegistry().Synopsis(false)

	wantUsage := []string{
		"[-f|--force]",
		"[-m|-M|--mode MODE]",
		"[--log [LOG]]",
		"[--exclude EXCLUDE...]",
		"[--]",
		"<source>",
		"[<targets>]...",
	}
	if !reflect.DeepEqual(synopsis.Usage, wantUsage) {
		t.Errorf("Usage = %q, want %q", synopsis.Usage, wantUsage)
	}

	wantOptions := []Entry{
		{Name: "-f|--force", Description: "overwrite"},
		{Name: "-m|-M|--mode", Description: "*file mode", Required: true},
		{Name: "--log", Description: "log file"},
		{Name: "--exclude", Description: "patterns to skip"},
		{Name: HelpOptionName, Description: HelpOptionDescription},
	}
	if !reflect.DeepEqual(synopsis.Options, wantOptions) {
		t.Errorf("Options = %+v, want %+v", synopsis.Options, wantOptions)
	}

	wantArguments := []Entry{
		{Name: "source", Description: "*file to copy", Required: true},
		{Name: "targets", Description: "destinations"},
	}
	if !reflect.DeepEqual(synopsis.Arguments, wantArguments) {
		t.Errorf("Arguments = %+v, want %+v", synopsis.Arguments, wantArguments)
	}

	if synopsis.Description != "Copy a file to one or more places." {
		t.Errorf("Description = %q", synopsis.Description)
	}
	if synopsis.Example != "{command} a.txt b/ c/" {
		t.Errorf("Example = %q", synopsis.Example)
	}
}

func TestSynopsis_ShortCollapsesOptions(t *testing.T) {
	synopsis := sampleRegistry().Synopsis(true)

	wantUsage := []string{"[options]", "[--]", "<source>", "[<targets>]..."}
	if !reflect.DeepEqual(synopsis.Usage, wantUsage) {
		t.Errorf("Usage = %q, want %q", synopsis.Usage, wantUsage)
	}
	if synopsis.UsageLine() != "[options] [--] <source> [<targets>]..." {
		t.Errorf("UsageLine() = %q", synopsis.UsageLine())
	}
	if len(synopsis.Options) != 1 || synopsis.Options[0].Name != HelpOptionName {
		t.Errorf("Options = %+v, want only the help entry", synopsis.Options)
	}
}

func TestSynopsis_NoSeparatorWithoutOptions(t *testing.T) {
	registry := MustNew([]Argument{{Name: "path"}}, nil)

	for _, short := range []bool{false, true} {
		synopsis := registry.Synopsis(short)
		if !reflect.DeepEqual(synopsis.Usage, []string{"[<path>]"}) {
			t.Errorf("Synopsis(%v).Usage = %q, want [[<path>]]", short, synopsis.Usage)
		}
		if len(synopsis.Options) != 1 || synopsis.Options[0].Name != HelpOptionName {
			t.Errorf("Synopsis(%v).Options = %+v, want only the help entry", short, synopsis.Options)
		}
	}
}

func TestSynopsis_Empty(t *testing.T) {
	var registry Registry
	synopsis := registry.Synopsis(false)
	if len(synopsis.Usage) != 0 || len(synopsis.Arguments) != 0 {
		t.Errorf("empty registry synopsis = %+v", synopsis)
	}
	if len(synopsis.Options) != 1 {
		t.Errorf("Options = %+v, want the help entry", synopsis.Options)
	}
}

func TestSynopsis_HelpEntryYieldsToDeclaredNames(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		want    []Entry
	}{
		{
			name:    "free",
			options: []Option{{Name: "force", Shortcut: "f"}},
			want: []Entry{
				{Name: "-f|--force"},
				{Name: HelpOptionName, Description: HelpOptionDescription},
			},
		},
		{
			name:    "h shortcut bound",
			options: []Option{{Name: "host", Shortcut: "h", Mode: OptionRequired}},
			want: []Entry{
				{Name: "-h|--host", Description: "*", Required: true},
				{Name: "--help", Description: HelpOptionDescription},
			},
		},
		{
			name:    "help option declared",
			options: []Option{{Name: "help", Description: "show the manual"}},
			want: []Entry{
				{Name: "--help", Description: "show the manual"},
			},
		},
		{
			name:    "help option declared with h shortcut",
			options: []Option{{Name: "help", Shortcut: "h"}},
			want: []Entry{
				{Name: "-h|--help"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			synopsis := MustNew(nil, test.options).Synopsis(false)
			if !reflect.DeepEqual(synopsis.Options, test.want) {
				t.Errorf("Synopsis(false).Options = %+v, want %+v", synopsis.Options, test.want)
			}
			seen := make(map[string]bool)
			for _, entry := range synopsis.Options {
				if seen[entry.Name] {
					t.Errorf("Options has duplicate key %q", entry.Name)
				}
				seen[entry.Name] = true
			}
		})
	}
}

func TestSynopsis_ShortOmitsHelpWhenDeclared(t *testing.T) {
	registry := MustNew(nil, []Option{{Name: "help"}})
	synopsis := registry.Synopsis(true)
	if len(synopsis.Options) != 0 {
		t.Errorf("Synopsis(true).Options = %+v, want none", synopsis.Options)
	}
	if !reflect.DeepEqual(synopsis.Usage, []string{"[options]"}) {
		t.Errorf("Synopsis(true).Usage = %q, want [[options]]", synopsis.Usage)
	}
}
