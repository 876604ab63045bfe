// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"fmt"
	"strings"
)

// RequiredMarker prefixes the description of required entries in a
// [Synopsis]. Renderers may style or replace it.
const RequiredMarker = "*"

// HelpOptionName is the key of the built-in help entry a synopsis
// lists after the declared options.
const HelpOptionName = "-h|--help"

// HelpOptionDescription is the description of the help entry.
const HelpOptionDescription = "Show help information for the command"

// Synopsis is the structured help view of a registry.
type Synopsis struct {
	Description string `json:"description,omitempty"`

	// Usage holds the usage line tokens in order, e.g.
	// ["[-f|--force]", "[--]", "<source>", "[<targets>]..."].
	Usage []string `json:"usage"`

	// Arguments lists argument names and descriptions in positional
	// order.
	Arguments []Entry `json:"arguments"`

	// Options lists option keys (e.g. "-f|--force") and descriptions
	// in declaration order, followed by the help entry unless the
	// registry declares its own "help" option.
	Options []Entry `json:"options"`

	Example string `json:"example,omitempty"`
}

// Entry is one name and description pair of a [Synopsis].
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}

// UsageLine joins the usage tokens with single spaces.
func (s Synopsis) UsageLine() string {
	return strings.Join(s.Usage, " ")
}

// Synopsis builds the help view. In short form all options collapse
// into a single "[options]" usage token and the option list holds only
// the help entry; in long form every option appears in both.
func (r *Registry) Synopsis(short bool) Synopsis {
	synopsis := Synopsis{
		Description: r.description,
		Usage:       []string{},
		Arguments:   []Entry{},
		Options:     []Entry{},
		Example:     r.example,
	}

	options := r.Options()
	if short && len(options) > 0 {
		synopsis.Usage = append(synopsis.Usage, "[options]")
	} else if !short {
		for _, option := range options {
			key := optionKey(option)
			synopsis.Usage = append(synopsis.Usage, "["+key+optionValueHint(option)+"]")
			synopsis.Options = append(synopsis.Options, Entry{
				Name:        key,
				Description: markRequired(option.Description, option.Required()),
				Required:    option.Required(),
			})
		}
	}

	arguments := r.Arguments()
	if len(arguments) > 0 && len(synopsis.Usage) > 0 {
		synopsis.Usage = append(synopsis.Usage, "[--]")
	}

	for _, argument := range arguments {
		element := "<" + argument.Name + ">"
		if !argument.Required() {
			element = "[" + element + "]"
		}
		if argument.IsArray() {
			element += "..."
		}
		synopsis.Usage = append(synopsis.Usage, element)
		synopsis.Arguments = append(synopsis.Arguments, Entry{
			Name:        argument.Name,
			Description: markRequired(argument.Description, argument.Required()),
			Required:    argument.Required(),
		})
	}

	if help, ok := r.helpEntry(); ok {
		synopsis.Options = append(synopsis.Options, help)
	}

	return synopsis
}

// helpEntry returns the built-in help entry, narrowed to what the
// registry leaves free: no entry when an option is named "help", and
// "--help" alone when the "h" shortcut is bound.
func (r *Registry) helpEntry() (Entry, bool) {
	if r.HasOption("help") {
		return Entry{}, false
	}
	name := HelpOptionName
	if r.HasShortcut("h") {
		name = "--help"
	}
	return Entry{Name: name, Description: HelpOptionDescription}, true
}

// optionKey renders "-f|-F|--name", or "--name" without shortcuts.
func optionKey(option Option) string {
	var builder strings.Builder
	for _, shortcut := range option.ShortcutList() {
		fmt.Fprintf(&builder, "-%s|", shortcut)
	}
	builder.WriteString("--" + option.Name)
	return builder.String()
}

// optionValueHint renders the value placeholder following the option
// key: " NAME", " [NAME]" for optional values, " NAME..." for arrays.
func optionValueHint(option Option) string {
	placeholder := strings.ToUpper(option.Name)
	switch option.Mode {
	case OptionRequired:
		return " " + placeholder
	case OptionOptional:
		return " [" + placeholder + "]"
	case OptionIsArray:
		return " " + placeholder + "..."
	default:
		return ""
	}
}

func markRequired(description string, required bool) string {
	if required {
		return RequiredMarker + description
	}
	return description
}
