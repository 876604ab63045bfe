// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bureau-foundation/argspec/lib/command"
	"github.com/bureau-foundation/argspec/lib/config"
	"github.com/bureau-foundation/argspec/lib/definition"
)

var (
	definitionOption = definition.Option{
		Name:        "definition",
		Shortcut:    "d",
		Mode:        definition.OptionRequired,
		Description: "definition file (.yaml, .yml, .json, .jsonc); defaults to $" + config.DefinitionEnv,
	}
	jsonOption = definition.Option{
		Name:        "json",
		Description: "output as JSON",
	}
)

// definitionFromEnvironment fills --definition from ARGSPEC_DEFINITION
// before validation, so a missing definition is reported like any
// other missing option.
func definitionFromEnvironment(_ context.Context, invocation *command.Invocation) error {
	in := invocation.Input
	if in.HasLongOpt("definition") || in.HasShortOpt("d") {
		return nil
	}
	if path, err := config.DefinitionPath(""); err == nil {
		in.SetLongOpt("definition", path)
	}
	return nil
}

// loadDefinition loads the registry named by --definition.
func loadDefinition(invocation *command.Invocation) (*definition.Registry, error) {
	path := invocation.StringOption("definition")
	registry, err := config.LoadDefinition(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, command.NotFound("definition file %s does not exist", path)
	}
	if err != nil {
		return nil, err
	}
	invocation.Logger.Debug("definition loaded",
		"path", path,
		"arguments", registry.ArgumentCount(),
		"options", registry.OptionCount(),
	)
	return registry, nil
}

// commandName derives the checked command's name from the definition
// file name: "defs/copy.yaml" is "copy".
func commandName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
