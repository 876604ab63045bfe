// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/argspec/lib/codec"
	"github.com/bureau-foundation/argspec/lib/command"
	"github.com/bureau-foundation/argspec/lib/definition"
)

// exportDocument is what export writes: the normalized declarations
// and their fingerprint.
type exportDocument struct {
	Fingerprint string              `json:"fingerprint"`
	Definition  definition.Snapshot `json:"definition"`
}

func exportCommand() *command.Command {
	return &command.Command{
		Name:    "export",
		Summary: "Export the normalized definition and its fingerprint",
		Description: `Write the definition after normalization (explicit modes, stripped
names, filled defaults) together with its BLAKE3 fingerprint.

Two definition files with the same fingerprint declare the same
command, whatever their syntax or formatting.

Formats:
  json   indented JSON (default)
  cbor   deterministic CBOR, byte-stable across runs
  diag   CBOR diagnostic notation (RFC 8949)`,
		Configure: func(registry *definition.Registry) error {
			return registry.AddOptions([]definition.Option{
				definitionOption,
				{
					Name:        "format",
					Mode:        definition.OptionOptional,
					Description: "output format: json, cbor or diag",
					Default:     "json",
				},
			})
		},
		Before: definitionFromEnvironment,
		Run: func(_ context.Context, invocation *command.Invocation) error {
			registry, err := loadDefinition(invocation)
			if err != nil {
				return err
			}
			fingerprint, err := registry.Fingerprint()
			if err != nil {
				return err
			}
			document := exportDocument{
				Fingerprint: fingerprint.String(),
				Definition:  registry.Snapshot(),
			}

			format := invocation.StringOption("format")
			if format == "" {
				format = "json"
			}
			switch format {
			case "json":
				return writeJSON(invocation.Stdout, document)
			case "cbor":
				return codec.NewEncoder(invocation.Stdout).Encode(document)
			case "diag":
				data, err := codec.Marshal(document)
				if err != nil {
					return err
				}
				notation, err := codec.Diagnose(data)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(invocation.Stdout, notation)
				return err
			default:
				return fmt.Errorf("unknown format %q (want json, cbor or diag)", format)
			}
		},
	}
}
