// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package outsideclick

// Element is a handle to a rendered widget. Contains reports whether
// the screen cell (x, y) lies within the widget's current bounds.
type Element interface {
	Contains(x, y int) bool
}

// Measurer is implemented by elements whose bounds are only known
// after the first render. Until Measured returns true the element is
// treated like a nil element: no press counts as outside it.
type Measurer interface {
	Measured() bool
}

// Detector invokes a callback whenever a pointer-down on its document
// lands outside an element. The owning widget binds it when it mounts
// and unbinds it when it unmounts.
type Detector struct {
	document    *Document
	unsubscribe func()
}

// New creates an unbound detector on document.
func New(document *Document) *Detector {
	return &Detector{document: document}
}

// Bind subscribes to the document so that callback runs for every
// pointer-down outside element. Binding again replaces the previous
// subscription: the old element and callback are released before the
// new ones are registered, so a stale callback is never invoked.
//
// A nil or unmeasured element never triggers the callback.
func (detector *Detector) Bind(element Element, callback func()) {
	detector.Unbind()
	if callback == nil {
		return
	}

	detector.unsubscribe = detector.document.Subscribe(func(event PointerEvent) {
		if element == nil {
			return
		}
		if measurer, ok := element.(Measurer); ok && !measurer.Measured() {
			return
		}
		if !element.Contains(event.X, event.Y) {
			callback()
		}
	})
}

// Unbind releases the document subscription. Safe to call when not
// bound.
func (detector *Detector) Unbind() {
	if detector.unsubscribe == nil {
		return
	}
	detector.unsubscribe()
	detector.unsubscribe = nil
}

// Bound reports whether the detector currently holds a subscription.
func (detector *Detector) Bound() bool {
	return detector.unsubscribe != nil
}

// Document returns the document the detector subscribes to.
func (detector *Detector) Document() *Document {
	return detector.document
}
