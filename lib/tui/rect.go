// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

// Rect is a rectangle in screen cell coordinates. X and Y are the
// top-left corner; Width and Height are in columns and rows. A Rect
// with zero width or height covers no cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no cells.
func (rect Rect) Empty() bool {
	return rect.Width <= 0 || rect.Height <= 0
}

// Contains returns true if the cell (x, y) falls inside the rectangle.
func (rect Rect) Contains(x, y int) bool {
	if rect.Empty() {
		return false
	}
	return x >= rect.X && x < rect.X+rect.Width &&
		y >= rect.Y && y < rect.Y+rect.Height
}

// RowAt returns the row offset of screen Y within the rectangle, or -1
// when y is outside its vertical range.
func (rect Rect) RowAt(y int) int {
	row := y - rect.Y
	if row < 0 || row >= rect.Height {
		return -1
	}
	return row
}
