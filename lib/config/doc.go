// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads optional configuration for the dropdown widget
// binary.
//
// Configuration comes from at most one file, named by the --config
// flag or, failing that, the BUREAU_DROPDOWN_CONFIG environment
// variable. There is no ~/.config discovery and no automatic file
// search. With neither set, [Default] applies: the built-in label,
// placeholder, five seed items and stylesheet.
//
// Files ending in .yaml or .yml are parsed as YAML. Files ending in
// .json or .jsonc are parsed as JSON extended with // line comments,
// /* block comments */ and trailing commas. Files ending in .toml are
// parsed as TOML, with items written as [[items]] tables.
//
// Key exports:
//
//   - [Config] -- label, placeholder, filter flag, seed items, style overrides
//   - [Default] -- the built-in configuration
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
