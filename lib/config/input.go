// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bureau-foundation/argspec/lib/input"
)

// InputFile is the document form of a pre-parsed invocation.
type InputFile struct {
	Script    string         `yaml:"script" json:"script"`
	Command   string         `yaml:"command" json:"command"`
	Arguments map[string]any `yaml:"arguments" json:"arguments"`
	Long      map[string]any `yaml:"long" json:"long"`
	Short     map[string]any `yaml:"short" json:"short"`
}

// LoadInput reads an input document from path.
func LoadInput(path string) (*input.Input, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	in, err := ParseInput(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// ParseInput decodes an input document.
func ParseInput(data []byte, format Format) (*input.Input, error) {
	var file InputFile
	if err := decode(data, format, &file); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	return file.Input(), nil
}

// Input converts the document into an [input.Input].
func (f *InputFile) Input() *input.Input {
	in := input.New()
	in.Script = f.Script
	in.Command = f.Command

	for key, value := range f.Arguments {
		if index, err := strconv.Atoi(key); err == nil && index >= 0 {
			in.SetArgument(index, value)
		} else {
			in.SetNamedArgument(key, value)
		}
	}
	for name, value := range f.Long {
		in.SetLongOpt(name, value)
	}
	for char, value := range f.Short {
		in.SetShortOpt(char, value)
	}
	return in
}
