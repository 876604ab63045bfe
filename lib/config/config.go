// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/argspec/lib/definition"
)

// DefinitionEnv names the environment variable consulted when no
// --definition flag is given.
const DefinitionEnv = "ARGSPEC_DEFINITION"

// Format is the syntax of a definition or input document.
type Format string

const (
	// FormatYAML is YAML 1.2 as accepted by gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
	// FormatJSON is JSON with comments and trailing commas.
	FormatJSON Format = "json"
)

// FormatForPath selects the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: unsupported file extension (want .yaml, .yml, .json or .jsonc)", path)
	}
}

// DefinitionPath returns flagValue when set, otherwise the value of
// ARGSPEC_DEFINITION. Fails when neither is set.
func DefinitionPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if path := os.Getenv(DefinitionEnv); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no definition file: pass --definition or set %s", DefinitionEnv)
}

// DefinitionFile is the document form of a command definition.
type DefinitionFile struct {
	Description string         `yaml:"description" json:"description"`
	Example     string         `yaml:"example" json:"example"`
	Arguments   []ArgumentSpec `yaml:"arguments" json:"arguments"`
	Options     []OptionSpec   `yaml:"options" json:"options"`
}

// ArgumentSpec declares one positional argument.
type ArgumentSpec struct {
	Name        string                  `yaml:"name" json:"name"`
	Mode        definition.ArgumentMode `yaml:"mode" json:"mode"`
	Description string                  `yaml:"description" json:"description"`
	Default     any                     `yaml:"default" json:"default"`
}

// OptionSpec declares one named option.
type OptionSpec struct {
	Name        string                `yaml:"name" json:"name"`
	Shortcut    Shortcuts             `yaml:"shortcut" json:"shortcut"`
	Mode        definition.OptionMode `yaml:"mode" json:"mode"`
	Description string                `yaml:"description" json:"description"`
	Default     any                   `yaml:"default" json:"default"`
}

// Shortcuts accepts either a single string ("f", "f|F") or a list of
// characters in a document.
type Shortcuts []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Shortcuts) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Shortcuts{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: shortcut must be a string or a list of strings", node.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Shortcuts) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Shortcuts{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("shortcut must be a string or a list of strings")
	}
	*s = list
	return nil
}

// String joins the shortcuts in the "|" form used by
// definition.Option.
func (s Shortcuts) String() string {
	return definition.Shortcuts(s...)
}

// LoadDefinition reads the file at path and builds a registry from it.
func LoadDefinition(path string) (*definition.Registry, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	registry, err := ParseDefinition(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return registry, nil
}

// ParseDefinition decodes a definition document and replays its
// declarations into a new registry. Declaration errors keep their
// definition sentinel, so callers can test them with errors.Is.
func ParseDefinition(data []byte, format Format) (*definition.Registry, error) {
	var file DefinitionFile
	if err := decode(data, format, &file); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	return file.Registry()
}

// Registry builds a registry from the document, expanding environment
// references in string defaults.
func (f *DefinitionFile) Registry() (*definition.Registry, error) {
	registry := &definition.Registry{}
	registry.SetDescription(f.Description)
	registry.SetExample(f.Example)

	for index, spec := range f.Arguments {
		err := registry.AddArgument(definition.Argument{
			Name:        spec.Name,
			Mode:        spec.Mode,
			Description: spec.Description,
			Default:     expandDefault(spec.Default),
		})
		if err != nil {
			return nil, fmt.Errorf("arguments[%d]: %w", index, err)
		}
	}

	for index, spec := range f.Options {
		err := registry.AddOption(definition.Option{
			Name:        spec.Name,
			Shortcut:    spec.Shortcut.String(),
			Mode:        spec.Mode,
			Description: spec.Description,
			Default:     expandDefault(spec.Default),
		})
		if err != nil {
			return nil, fmt.Errorf("options[%d]: %w", index, err)
		}
	}

	return registry, nil
}

func decode(data []byte, format Format, target any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, target)
	case FormatJSON:
		return json.Unmarshal(jsonc.ToJSON(data), target)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// expandDefault expands strings, including the elements of list
// defaults. Other values pass through.
func expandDefault(value any) any {
	switch typed := value.(type) {
	case string:
		return expandVars(typed)
	case []any:
		expanded := make([]any, len(typed))
		for index, element := range typed {
			expanded[index] = expandDefault(element)
		}
		return expanded
	default:
		return value
	}
}
