// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package outsideclick detects pointer presses that land outside a
// rendered widget, so that floating UI (dropdowns, popovers, tooltips)
// can dismiss itself when the user clicks elsewhere.
//
// A [Document] is the screen-wide source of pointer-down events; the
// host program owns one and feeds it every mouse press. A [Detector]
// subscribes to the document on behalf of one widget for as long as
// that widget is mounted, and invokes its callback whenever a press
// falls outside the widget's [Element].
//
//	tea.MouseMsg -> FromMouse -> Document.Dispatch
//	                                  |
//	                   Detector (element.Contains? no) -> callback
package outsideclick
