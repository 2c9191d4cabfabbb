// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

// Row layout of the rendered widget, relative to its anchor:
//
//	0: label        "Education ▼"
//	1: input box    "> Add new item..."   (open only)
//	2…: items       "✓ 🎨 Art"            (open only)
const (
	labelRow     = 0
	inputRow     = 1
	firstItemRow = 2
)

const (
	arrowClosed = "▼"
	arrowOpen   = "▲"

	markerSelected   = "✓ "
	markerUnselected = "  "

	// minInnerWidth keeps the menu from collapsing to the label width
	// when the label is short.
	minInnerWidth = 20
)

// labelText is the toggle text with its open/closed indicator.
func (model Model) labelText() string {
	if model.state.Open() {
		return model.label + " " + arrowOpen
	}
	return model.label + " " + arrowClosed
}

// itemText is one item row before styling.
func itemText(item Item, selected bool) string {
	marker := markerUnselected
	if selected {
		marker = markerSelected
	}
	return marker + item.String()
}

// width returns the total rendered width in columns, including one
// column of padding on each side.
func (model Model) width(visible []Item) int {
	inner := ansi.StringWidth(model.labelText())

	if model.state.Open() {
		text := model.input.Value()
		if text == "" {
			text = model.input.Placeholder
		}
		// The trailing column holds the cursor.
		inputWidth := ansi.StringWidth(model.input.Prompt) + ansi.StringWidth(text) + 1
		inner = max(inner, inputWidth)

		for _, item := range visible {
			inner = max(inner, ansi.StringWidth(itemText(item, true)))
		}
	}

	return max(inner, minInnerWidth) + 2
}

// bounds computes the screen rectangle the widget occupies for the
// current state. View renders exactly this many rows of this width.
func (model Model) bounds() tui.Rect {
	height := 1
	var visible []Item
	if model.state.Open() {
		visible = model.state.Visible(model.filter)
		height = firstItemRow + len(visible)
	}
	return tui.Rect{
		X:      model.anchorX,
		Y:      model.anchorY,
		Width:  model.width(visible),
		Height: height,
	}
}

// inputView renders the input box. The placeholder is drawn here
// rather than by textinput, which needs a fixed Width to show more
// than its first rune and would then scroll long values.
func (model Model) inputView() string {
	if model.input.Value() != "" {
		return model.input.View()
	}
	return model.input.PromptStyle.Render(model.input.Prompt) +
		model.input.PlaceholderStyle.Render(model.input.Placeholder)
}

// View implements tea.Model. Renders the widget at its natural size
// with no positioning; hosts splice it into their screen at the
// anchor (see [tui.SpliceOverlay]).
func (model Model) View() string {
	bounds := model.bounds()
	model.root.measure(bounds)
	totalWidth := bounds.Width

	labelStyle := model.styles.Style(tui.ClassDropdown, tui.ClassLabel)
	lines := []string{
		tui.PadLine(labelStyle.Render(model.labelText()), totalWidth, labelStyle),
	}

	if !model.state.Open() {
		return strings.Join(lines, "\n")
	}

	inputStyle := model.styles.Style(tui.ClassDropdown, tui.ClassMenu, tui.ClassInput)
	lines = append(lines, tui.PadLine(model.inputView(), totalWidth, inputStyle))

	now := model.now()
	for _, item := range model.state.Visible(model.filter) {
		selected := model.state.IsSelected(item)
		classes := []string{tui.ClassDropdown, tui.ClassMenu, tui.ClassItems, tui.ClassItem}
		if selected {
			classes = append(classes, tui.ClassSelected)
		}
		if model.glow.Intensity(item.Label, now) > 0 {
			classes = append(classes, tui.ClassAdded)
		}
		style := model.styles.Style(classes...)
		lines = append(lines, tui.PadLine(style.Render(itemText(item, selected)), totalWidth, style))
	}

	return strings.Join(lines, "\n")
}
