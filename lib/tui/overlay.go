// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay. Lines of the view shorter than anchorX are padded with
// spaces so the overlay lands in the right column.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)
		overlayWidth := ansi.StringWidth(overlayLine)

		var result strings.Builder

		if anchorX > 0 {
			if viewLineWidth >= anchorX {
				result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
			} else {
				result.WriteString(viewLine)
				result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadLine takes styled content and fits it to exactly totalWidth
// columns: one column of padding on the left, the content truncated
// or right-padded to totalWidth-2, and one column on the right. All
// padding uses the background style so rows of a menu form a solid
// block.
func PadLine(styledContent string, totalWidth int, backgroundStyle lipgloss.Style) string {
	innerWidth := totalWidth - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > innerWidth {
		styledContent = ansi.Truncate(styledContent, innerWidth, "…")
		contentWidth = ansi.StringWidth(styledContent)
	}

	rightPad := innerWidth - contentWidth
	if rightPad < 0 {
		rightPad = 0
	}
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// Canvas returns a blank view of the given size: height lines of
// width spaces each. Hosts splice widgets onto it when they have no
// other content to draw underneath.
func Canvas(width, height int) string {
	if width < 0 {
		width = 0
	}
	if height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for index := range lines {
		lines[index] = line
	}
	return strings.Join(lines, "\n")
}
