// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dropdown implements an interactive dropdown menu widget for
// bubbletea programs: a clickable label that expands into a list of
// selectable items, with an input box for adding new items, that
// collapses again when the user clicks anywhere outside it.
//
// The widget is split in two. [State] owns the data (open flag, item
// list, selection set, pending input text) and exposes one method per
// user intent. [Model] renders that state and turns key and mouse
// messages into State calls. Outside-click dismissal is delegated to
// an [outsideclick.Detector] that the model binds while mounted.
//
// Rendered parts carry the class names defined in [tui] (dropdown,
// dropdown-label, dropdown-menu, dropdown-input, dropdown-items,
// dropdown-item, and the selected and added modifiers); a
// [tui.Stylesheet] maps them to colors.
package dropdown
