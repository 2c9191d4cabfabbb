// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface building blocks
// for Bureau's interactive widgets. Built on bubbletea (Elm
// architecture) and lipgloss, it covers the pieces every widget needs
// but none of them owns: a color theme, a class-keyed stylesheet,
// screen rectangles for mouse hit-testing, overlay splicing, fuzzy
// matching and change highlighting.
//
// [StatusLogHandler] routes slog records into a running program as
// [LogRecordMsg] values so a host can show them in its status bar.
//
// Widgets (the dropdown in [github.com/bureau-foundation/bureau-dropdown/lib/dropdown])
// import this package for consistent look and behavior. Each widget
// owns its own state and layout.
package tui
