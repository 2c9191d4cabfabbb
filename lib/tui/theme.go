// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for Bureau's terminal widgets. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
//
// The theme only carries colors. How those colors map onto the parts
// of a widget is the job of a [Stylesheet], which is what user
// configuration overrides.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Widget chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Floating menus and the input box inside them.
	MenuForeground  lipgloss.Color
	MenuBackground  lipgloss.Color
	InputBackground lipgloss.Color

	// Background tint for recently-added rows. Fades out over
	// [GlowDuration].
	GlowAccent lipgloss.Color

	// Fuzzy match highlighting in filtered lists.
	MatchForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("24"), // dark blue
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	MenuForeground:  lipgloss.Color("252"), // same as NormalText
	MenuBackground:  lipgloss.Color("237"), // slightly lighter than terminal background
	InputBackground: lipgloss.Color("235"),

	GlowAccent: lipgloss.Color("58"), // dark amber background tint

	MatchForeground: lipgloss.Color("220"), // yellow/amber
}
