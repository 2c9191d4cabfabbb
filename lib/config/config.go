// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/enescakir/emoji"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bureau-dropdown/lib/dropdown"
	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

// EnvironmentVariable names the config file when no --config flag is
// given.
const EnvironmentVariable = "BUREAU_DROPDOWN_CONFIG"

// Format identifies a config file syntax.
type Format string

const (
	// FormatYAML is YAML 1.2 as parsed by gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
	// FormatJSONC is JSON with comments and trailing commas.
	FormatJSONC Format = "jsonc"
	// FormatTOML is TOML 1.0 as parsed by github.com/BurntSushi/toml.
	FormatTOML Format = "toml"
)

// Config is the dropdown binary's configuration.
type Config struct {
	// Label is the text on the dropdown toggle.
	Label string `yaml:"label" json:"label" toml:"label"`

	// Placeholder is shown in the empty input box.
	Placeholder string `yaml:"placeholder" json:"placeholder" toml:"placeholder"`

	// Filter makes typed text narrow the item list.
	Filter bool `yaml:"filter" json:"filter" toml:"filter"`

	// Items seeds the list. Replaces the built-in items entirely when
	// present in the file.
	Items []ItemConfig `yaml:"items" json:"items" toml:"items"`

	// Styles overrides the built-in stylesheet, keyed by class name
	// (dropdown, dropdown-label, dropdown-menu, dropdown-input,
	// dropdown-items, dropdown-item, selected, added).
	Styles map[string]tui.StyleRule `yaml:"styles,omitempty" json:"styles,omitempty" toml:"styles,omitempty"`
}

// ItemConfig is one seed item.
type ItemConfig struct {
	Label string `yaml:"label" json:"label" toml:"label"`

	// Icon is either a literal glyph ("🎨") or an emoji shortcode
	// (":art:"). Empty means no icon.
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty" toml:"icon,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	seed := dropdown.DefaultItems()
	items := make([]ItemConfig, len(seed))
	for index, item := range seed {
		items[index] = ItemConfig{Label: item.Label, Icon: item.Icon}
	}
	return &Config{
		Label:       dropdown.DefaultLabel,
		Placeholder: dropdown.DefaultPlaceholder,
		Items:       items,
	}
}

// Load loads configuration from flagPath if non-empty, otherwise from
// the file named by BUREAU_DROPDOWN_CONFIG. With neither set it
// returns [Default].
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file. Values present in
// the file replace the defaults; absent values keep them. The result
// is validated before it is returned.
func LoadFile(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FormatForPath picks the parser from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (use .yaml, .yml, .json, .jsonc or .toml)", filepath.Ext(path))
	}
}

// Parse decodes data in the given format over [Default] and validates
// the result. An items list in the file replaces the built-in items
// as a whole.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	defaults := cfg.Items
	// Decoders may reuse the elements of an existing slice, which would
	// leak default icons into file items that omit one.
	cfg.Items = nil

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if cfg.Items == nil {
		cfg.Items = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can build a widget: item
// labels are non-empty and unique, and every style key names a known
// class.
func (c *Config) Validate() error {
	var errs []error

	seen := make(map[string]int, len(c.Items))
	for index, item := range c.Items {
		if item.Label == "" {
			errs = append(errs, fmt.Errorf("items[%d]: label is empty", index))
			continue
		}
		if previous, exists := seen[item.Label]; exists {
			errs = append(errs, fmt.Errorf("items[%d]: label %q duplicates items[%d]", index, item.Label, previous))
			continue
		}
		seen[item.Label] = index
	}

	if _, err := tui.DefaultStylesheet(tui.DefaultTheme).OverrideAll(c.Styles); err != nil {
		errs = append(errs, fmt.Errorf("styles: %w", err))
	}

	return errors.Join(errs...)
}

// SeedItems converts the configured items into dropdown items,
// expanding emoji shortcodes in icons.
func (c *Config) SeedItems() []dropdown.Item {
	items := make([]dropdown.Item, len(c.Items))
	for index, item := range c.Items {
		items[index] = dropdown.Item{
			Label: item.Label,
			Icon:  expandIcon(item.Icon),
		}
	}
	return items
}

// Stylesheet builds the stylesheet for theme with the configured
// overrides applied.
func (c *Config) Stylesheet(theme tui.Theme) (tui.Stylesheet, error) {
	return tui.DefaultStylesheet(theme).OverrideAll(c.Styles)
}

// Options builds dropdown options from the configuration.
func (c *Config) Options(theme tui.Theme) (dropdown.Options, error) {
	sheet, err := c.Stylesheet(theme)
	if err != nil {
		return dropdown.Options{}, err
	}
	return dropdown.Options{
		Label:       c.Label,
		Placeholder: c.Placeholder,
		Items:       c.SeedItems(),
		Stylesheet:  &sheet,
		Filter:      c.Filter,
	}, nil
}

func expandIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return ""
	}
	return emoji.Parse(icon)
}
