// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bureau-foundation/argspec/lib/definition"
)

func tokenizeRegistry(t *testing.T) *definition.Registry {
	t.Helper()
	registry, err := definition.New(
		[]definition.Argument{
			{Name: "paths", Mode: definition.ArgumentIsArray},
		},
		[]definition.Option{
			{Name: "verbose", Shortcut: "v|V"},
			{Name: "output", Shortcut: "o", Mode: definition.OptionRequired},
			{Name: "log", Mode: definition.OptionOptional},
			{Name: "include", Shortcut: "I", Mode: definition.OptionIsArray},
		},
	)
	if err != nil {
		t.Fatalf("definition.New() error: %v", err)
	}
	return registry
}

func TestTokenize_Options(t *testing.T) {
	registry := tokenizeRegistry(t)

	tests := []struct {
		name      string
		args      []string
		wantLong  map[string]any
		wantShort map[string]any
		wantArgs  map[int]any
	}{
		{
			name:      "boolean long",
			args:      []string{"--verbose"},
			wantLong:  map[string]any{"verbose": true},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "boolean explicit false",
			args:      []string{"--verbose=false"},
			wantLong:  map[string]any{"verbose": false},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "first shortcut records long name",
			args:      []string{"-v"},
			wantLong:  map[string]any{"verbose": true},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "further shortcut records short option",
			args:      []string{"-V"},
			wantLong:  map[string]any{},
			wantShort: map[string]any{"V": true},
			wantArgs:  map[int]any{},
		},
		{
			name:      "required value separate",
			args:      []string{"--output", "out.txt"},
			wantLong:  map[string]any{"output": "out.txt"},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "required value attached to shorthand",
			args:      []string{"-oout.txt"},
			wantLong:  map[string]any{"output": "out.txt"},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "optional bare does not consume next word",
			args:      []string{"--log", "a"},
			wantLong:  map[string]any{"log": true},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{0: "a"},
		},
		{
			name:      "optional with value",
			args:      []string{"--log=run.log"},
			wantLong:  map[string]any{"log": "run.log"},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "array repeats",
			args:      []string{"-I", "a", "--include", "b"},
			wantLong:  map[string]any{"include": []any{"a", "b"}},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{},
		},
		{
			name:      "positionals interspersed",
			args:      []string{"x", "-v", "y"},
			wantLong:  map[string]any{"verbose": true},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{0: "x", 1: "y"},
		},
		{
			name:      "double dash ends options",
			args:      []string{"--", "-v", "--output"},
			wantLong:  map[string]any{},
			wantShort: map[string]any{},
			wantArgs:  map[int]any{0: "-v", 1: "--output"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in, err := Tokenize("tool", registry, test.args)
			if err != nil {
				t.Fatalf("Tokenize(%v) error: %v", test.args, err)
			}
			if !reflect.DeepEqual(in.LongOpts(), test.wantLong) {
				t.Errorf("long options = %#v, want %#v", in.LongOpts(), test.wantLong)
			}
			if !reflect.DeepEqual(in.ShortOpts(), test.wantShort) {
				t.Errorf("short options = %#v, want %#v", in.ShortOpts(), test.wantShort)
			}
			if !reflect.DeepEqual(in.Positional(), test.wantArgs) {
				t.Errorf("positional = %#v, want %#v", in.Positional(), test.wantArgs)
			}
			if in.Command != "tool" {
				t.Errorf("Command = %q, want tool", in.Command)
			}
		})
	}
}

func TestTokenize_Help(t *testing.T) {
	registry := tokenizeRegistry(t)

	for _, arg := range []string{"-h", "--help"} {
		in, err := Tokenize("tool", registry, []string{arg})
		if err != nil {
			t.Fatalf("Tokenize(%s) error: %v", arg, err)
		}
		if in.LongOpt("help") != true {
			t.Errorf("Tokenize(%s): help = %v, want true", arg, in.LongOpt("help"))
		}
	}
}

func TestTokenize_ShortcutClaimsHelpShorthand(t *testing.T) {
	registry, err := definition.New(nil, []definition.Option{
		{Name: "host", Shortcut: "h", Mode: definition.OptionRequired},
	})
	if err != nil {
		t.Fatalf("definition.New() error: %v", err)
	}

	in, err := Tokenize("tool", registry, []string{"-h", "example.org"})
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if got := in.LongOpt("host"); got != "example.org" {
		t.Errorf("host = %v, want example.org", got)
	}
	if in.HasLongOpt("help") {
		t.Error("-h was read as help although a declared option owns it")
	}
}

func TestTokenize_Errors(t *testing.T) {
	registry := tokenizeRegistry(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "unknown flag with suggestion",
			args: []string{"--verbos"},
			want: []string{"unknown flag: --verbos", "did you mean --verbose?", "Run 'tool --help' for usage."},
		},
		{
			name: "unknown flag without suggestion",
			args: []string{"--zzzzzzzzz"},
			want: []string{"unknown flag: --zzzzzzzzz", "Run 'tool --help' for usage."},
		},
		{
			name: "required value missing",
			args: []string{"--output"},
			want: []string{"output", "Run 'tool --help' for usage."},
		},
		{
			name: "bad boolean",
			args: []string{"--verbose=maybe"},
			want: []string{"verbose"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Tokenize("tool", registry, test.args)
			if err == nil {
				t.Fatalf("Tokenize(%v) = nil error", test.args)
			}
			for _, fragment := range test.want {
				if !strings.Contains(err.Error(), fragment) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), fragment)
				}
			}
		})
	}

	_, err := Tokenize("tool", registry, []string{"--zzzzzzzzz"})
	if err != nil && strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, want no suggestion for distant input", err.Error())
	}
}

func TestTokenize_SecondShortcutErrorsNameTheShortcut(t *testing.T) {
	registry := tokenizeRegistry(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bad boolean value",
			args: []string{"-V=maybe"},
			want: `invalid argument "maybe" for "-V" flag`,
		},
		{
			name: "internal alias name is not a long flag",
			args: []string{"--verbose:V"},
			want: "unknown flag: --verbose:V",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Tokenize("tool", registry, test.args)
			if err == nil {
				t.Fatalf("Tokenize(%v) = nil error", test.args)
			}
			message := err.Error()
			if !strings.Contains(message, test.want) {
				t.Errorf("error = %q, want it to contain %q", message, test.want)
			}
			if strings.Contains(message, "\x00") || strings.Contains(message, `\x00`) {
				t.Errorf("error = %q, leaks the internal alias flag name", message)
			}
		})
	}
}
