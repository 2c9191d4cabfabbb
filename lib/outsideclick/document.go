// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package outsideclick

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PointerEvent is a pointer-down at screen cell (X, Y).
type PointerEvent struct {
	X int
	Y int
}

// FromMouse converts a bubbletea mouse message into a pointer-down
// event. Only button presses qualify: releases, motion and wheel
// scrolling return false.
func FromMouse(message tea.MouseMsg) (PointerEvent, bool) {
	if message.Action != tea.MouseActionPress {
		return PointerEvent{}, false
	}
	if tea.MouseEvent(message).IsWheel() {
		return PointerEvent{}, false
	}
	return PointerEvent{X: message.X, Y: message.Y}, true
}

// Listener receives every pointer-down dispatched to a [Document].
type Listener func(event PointerEvent)

// Document fans pointer-down events out to its subscribers. It
// belongs to the bubbletea event loop and is not safe for concurrent
// use; all calls happen from Update.
type Document struct {
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewDocument creates a document with no listeners.
func NewDocument() *Document {
	return &Document{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns the function that removes
// it. Calling the returned function more than once is harmless.
func (document *Document) Subscribe(listener Listener) (unsubscribe func()) {
	id := document.nextID
	document.nextID++
	document.listeners[id] = listener
	document.order = append(document.order, id)

	return func() {
		if _, exists := document.listeners[id]; !exists {
			return
		}
		delete(document.listeners, id)
		for index, candidate := range document.order {
			if candidate == id {
				document.order = append(document.order[:index:index], document.order[index+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers event to every listener in subscription order.
// Listeners added during dispatch first see the next event; listeners
// removed during dispatch are not called if they have not run yet.
func (document *Document) Dispatch(event PointerEvent) {
	snapshot := make([]int, len(document.order))
	copy(snapshot, document.order)

	for _, id := range snapshot {
		listener, exists := document.listeners[id]
		if !exists {
			continue
		}
		listener(event)
	}
}

// Listeners returns the number of active subscriptions.
func (document *Document) Listeners() int {
	return len(document.listeners)
}
