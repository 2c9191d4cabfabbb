// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import (
	"log/slog"
	"slices"

	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/bureau-dropdown/lib/tui"
)

// KeyEnter is the key name that submits the pending input text. It
// matches tea.KeyMsg.String() for the Enter key.
const KeyEnter = "enter"

// Item is a selectable entry. Items are identified by label: labels
// are unique within a State, and selection membership compares labels
// only, so an item rebuilt with a different icon is still the same
// item.
type Item struct {
	Label string
	// Icon is a short glyph (usually one emoji) drawn before the label.
	// Empty means the item has no icon.
	Icon string
}

// HasIcon reports whether the item carries an icon.
func (item Item) HasIcon() bool {
	return item.Icon != ""
}

// String renders the item as "<icon> <label>", or just the label when
// there is no icon.
func (item Item) String() string {
	if !item.HasIcon() {
		return item.Label
	}
	return item.Icon + " " + item.Label
}

// DefaultItems returns the built-in seed list.
func DefaultItems() []Item {
	return []Item{
		{Label: "Yeeeeah, science!", Icon: "🔬"},
		{Label: "Art", Icon: "🎨"},
		{Label: "Sport", Icon: "⚽"},
		{Label: "Games", Icon: "🎮"},
		{Label: "Health", Icon: "🏥"},
	}
}

// State owns everything a dropdown remembers: whether it is open, the
// items it offers, which of them are selected, and the text typed into
// its input box. All item and selection updates replace the backing
// slices rather than mutating them, and accessors hand out copies, so
// a returned slice never changes underneath its holder and editing one
// never reaches the state.
//
// State is not safe for concurrent use. It lives inside a bubbletea
// model and is only touched from Update.
type State struct {
	open     bool
	items    []Item
	selected []Item
	input    string

	version uint64 // Incremented on every change.

	slab   *util.Slab
	logger *slog.Logger
}

// NewState creates a closed dropdown offering a copy of seed, with
// nothing selected and empty input.
func NewState(seed []Item) *State {
	items := make([]Item, len(seed))
	copy(items, seed)
	return &State{
		items:  items,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger that receives debug records for each
// state transition. A nil logger restores the discarding default.
func (state *State) WithLogger(logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	state.logger = logger
	return state
}

// Open reports whether the menu is expanded.
func (state *State) Open() bool {
	return state.open
}

// Input returns the pending input text.
func (state *State) Input() string {
	return state.input
}

// Items returns a copy of the item list in display order.
func (state *State) Items() []Item {
	return slices.Clone(state.items)
}

// Selected returns a copy of the selection set in the order items
// were selected.
func (state *State) Selected() []Item {
	return slices.Clone(state.selected)
}

// IsSelected reports whether an item with item's label is in the
// selection set.
func (state *State) IsSelected(item Item) bool {
	return indexOf(state.selected, item) >= 0
}

// Version returns a counter that changes whenever the state does.
func (state *State) Version() uint64 {
	return state.version
}

// ToggleOpen flips the open flag.
func (state *State) ToggleOpen() {
	state.open = !state.open
	state.version++
	state.logger.Debug("dropdown toggled", "open", state.open)
}

// Close forces the menu closed. Closing a closed dropdown changes
// nothing.
func (state *State) Close() {
	if !state.open {
		return
	}
	state.open = false
	state.version++
	state.logger.Debug("dropdown closed")
}

// SetInputText replaces the pending input text verbatim.
func (state *State) SetInputText(text string) {
	if text == state.input {
		return
	}
	state.input = text
	state.version++
}

// SubmitOnEnter adds the pending text as a new item when key is
// [KeyEnter]. Any other key is ignored. Empty text and text equal to
// an existing label are ignored too, leaving the pending text in
// place. On success the new item (with no icon) is appended, the
// pending text is cleared, and SubmitOnEnter returns true.
func (state *State) SubmitOnEnter(key string) bool {
	if key != KeyEnter {
		return false
	}
	text := state.input
	if text == "" {
		return false
	}
	if state.hasLabel(text) {
		state.logger.Debug("duplicate item ignored", "label", text)
		return false
	}

	items := make([]Item, len(state.items), len(state.items)+1)
	copy(items, state.items)
	state.items = append(items, Item{Label: text})
	state.input = ""
	state.version++
	state.logger.Debug("item added", "label", text, "items", len(state.items))
	return true
}

// ToggleItemSelected removes the item with item's label from the
// selection set if present, otherwise appends item.
func (state *State) ToggleItemSelected(item Item) {
	index := indexOf(state.selected, item)
	if index >= 0 {
		selected := make([]Item, 0, len(state.selected)-1)
		selected = append(selected, state.selected[:index]...)
		state.selected = append(selected, state.selected[index+1:]...)
		state.logger.Debug("item deselected", "label", item.Label)
	} else {
		selected := make([]Item, len(state.selected), len(state.selected)+1)
		copy(selected, state.selected)
		state.selected = append(selected, item)
		state.logger.Debug("item selected", "label", item.Label)
	}
	state.version++
}

// Visible returns the items to display. Without filtering that is
// every item. With filtering the pending text is a fuzzy query and
// only matching items are returned, still in list order.
func (state *State) Visible(filter bool) []Item {
	if !filter || state.input == "" {
		return slices.Clone(state.items)
	}

	if state.slab == nil {
		state.slab = tui.NewSlab()
	}
	pattern := tui.FuzzyPattern(state.input)

	var visible []Item
	for _, item := range state.items {
		if tui.FuzzyMatch(item.Label, pattern, state.slab).Matched {
			visible = append(visible, item)
		}
	}
	return visible
}

func (state *State) hasLabel(label string) bool {
	for _, item := range state.items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func indexOf(items []Item, target Item) int {
	for index, item := range items {
		if item.Label == target.Label {
			return index
		}
	}
	return -1
}
