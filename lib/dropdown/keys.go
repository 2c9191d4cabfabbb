// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the dropdown reacts to while open. Every
// other key goes to the input box.
type KeyMap struct {
	Submit key.Binding // Add the pending text as a new item.
	Close  key.Binding // Collapse the menu.
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys(KeyEnter),
		key.WithHelp("enter", "add item"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Submit, keys.Close}
}
