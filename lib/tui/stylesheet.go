// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Class names for the parts of a dropdown widget. These are the
// stable names a styling layer targets; configuration files refer to
// them verbatim.
const (
	ClassDropdown = "dropdown"
	ClassLabel    = "dropdown-label"
	ClassMenu     = "dropdown-menu"
	ClassInput    = "dropdown-input"
	ClassItems    = "dropdown-items"
	ClassItem     = "dropdown-item"

	// ClassSelected is a modifier applied on top of ClassItem for items
	// in the selection set.
	ClassSelected = "selected"

	// ClassAdded is a modifier applied to rows added during this
	// session while their glow has not yet faded.
	ClassAdded = "added"
)

// Classes lists every class name a [Stylesheet] understands, in
// document order.
var Classes = []string{
	ClassDropdown,
	ClassLabel,
	ClassMenu,
	ClassInput,
	ClassItems,
	ClassItem,
	ClassSelected,
	ClassAdded,
}

// Stylesheet maps class names to lipgloss styles. A rendered element
// carrying several classes gets their styles composed left to right,
// so later classes (modifiers) win over earlier ones.
type Stylesheet struct {
	rules map[string]lipgloss.Style
}

// DefaultStylesheet builds the built-in stylesheet from a theme.
func DefaultStylesheet(theme Theme) Stylesheet {
	return Stylesheet{rules: map[string]lipgloss.Style{
		ClassDropdown: lipgloss.NewStyle().
			Foreground(theme.NormalText),
		ClassLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.HeaderForeground),
		ClassMenu: lipgloss.NewStyle().
			Foreground(theme.MenuForeground).
			Background(theme.MenuBackground),
		ClassInput: lipgloss.NewStyle().
			Background(theme.InputBackground),
		ClassItems: lipgloss.NewStyle(),
		ClassItem: lipgloss.NewStyle().
			Foreground(theme.MenuForeground),
		ClassSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground),
		ClassAdded: lipgloss.NewStyle().
			Background(theme.GlowAccent),
	}}
}

// Style returns the composed style for an element carrying the given
// classes. Unknown class names contribute nothing.
func (sheet Stylesheet) Style(classes ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	// Inherit only fills properties that are still unset, so walking
	// from the last class to the first lets modifiers take precedence.
	for index := len(classes) - 1; index >= 0; index-- {
		if style, ok := sheet.rules[classes[index]]; ok {
			result = result.Inherit(style)
		}
	}
	return result
}

// Has reports whether the stylesheet defines a rule for a class.
func (sheet Stylesheet) Has(class string) bool {
	_, ok := sheet.rules[class]
	return ok
}

// StyleRule is a user-supplied override for one class. Unset fields
// leave the built-in rule alone. Colors accept anything
// lipgloss.Color accepts: ANSI codes ("205") or hex ("#ff8800").
//
// Layout properties (padding, margins, borders) cannot be overridden:
// widgets hit-test against the geometry they compute themselves.
type StyleRule struct {
	Foreground string `yaml:"foreground,omitempty" json:"foreground,omitempty" toml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty" json:"background,omitempty" toml:"background,omitempty"`
	Bold       *bool  `yaml:"bold,omitempty" json:"bold,omitempty" toml:"bold,omitempty"`
	Italic     *bool  `yaml:"italic,omitempty" json:"italic,omitempty" toml:"italic,omitempty"`
	Underline  *bool  `yaml:"underline,omitempty" json:"underline,omitempty" toml:"underline,omitempty"`
	Reverse    *bool  `yaml:"reverse,omitempty" json:"reverse,omitempty" toml:"reverse,omitempty"`
}

// Override returns a copy of the stylesheet with rule applied on top
// of the existing style for class. Returns an error for class names
// outside [Classes].
func (sheet Stylesheet) Override(class string, rule StyleRule) (Stylesheet, error) {
	if !knownClass(class) {
		return sheet, fmt.Errorf("unknown style class %q (known: %v)", class, Classes)
	}

	rules := make(map[string]lipgloss.Style, len(sheet.rules)+1)
	for name, style := range sheet.rules {
		rules[name] = style
	}

	style := rules[class]
	if rule.Foreground != "" {
		style = style.Foreground(lipgloss.Color(rule.Foreground))
	}
	if rule.Background != "" {
		style = style.Background(lipgloss.Color(rule.Background))
	}
	if rule.Bold != nil {
		style = style.Bold(*rule.Bold)
	}
	if rule.Italic != nil {
		style = style.Italic(*rule.Italic)
	}
	if rule.Underline != nil {
		style = style.Underline(*rule.Underline)
	}
	if rule.Reverse != nil {
		style = style.Reverse(*rule.Reverse)
	}
	rules[class] = style

	return Stylesheet{rules: rules}, nil
}

// OverrideAll applies a set of rules in sorted class order so the
// result does not depend on map iteration.
func (sheet Stylesheet) OverrideAll(rules map[string]StyleRule) (Stylesheet, error) {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		sheet, err = sheet.Override(name, rules[name])
		if err != nil {
			return sheet, err
		}
	}
	return sheet, nil
}

func knownClass(class string) bool {
	for _, known := range Classes {
		if known == class {
			return true
		}
	}
	return false
}
