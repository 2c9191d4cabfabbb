// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// GlowDuration is how long a row stays highlighted after it changes.
// Intensity starts at 1.0 and decays linearly to 0.0 over this
// duration.
const GlowDuration = 3 * time.Second

// GlowTickInterval is the re-render interval while any row is still
// glowing.
const GlowTickInterval = 100 * time.Millisecond

// GlowTracker maps row keys to ignition timestamps for change
// highlighting. A key that is ignited again restarts its decay.
type GlowTracker struct {
	ignitions map[string]time.Time
}

// NewGlowTracker creates an empty tracker.
func NewGlowTracker() *GlowTracker {
	return &GlowTracker{
		ignitions: make(map[string]time.Time),
	}
}

// Ignite starts (or restarts) the glow for key.
func (tracker *GlowTracker) Ignite(key string, now time.Time) {
	tracker.ignitions[key] = now
}

// Intensity returns 1.0 at ignition, decaying linearly to 0.0 over
// [GlowDuration]. Keys never ignited or fully decayed return 0.0.
func (tracker *GlowTracker) Intensity(key string, now time.Time) float64 {
	ignition, exists := tracker.ignitions[key]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(ignition)
	if elapsed < 0 {
		return 1.0
	}
	if elapsed >= GlowDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(GlowDuration)
}

// Active returns true while any key still glows, meaning the owner
// should keep its tick timer running. Fully decayed keys are dropped.
func (tracker *GlowTracker) Active(now time.Time) bool {
	active := false
	for key, ignition := range tracker.ignitions {
		if now.Sub(ignition) < GlowDuration {
			active = true
			continue
		}
		delete(tracker.ignitions, key)
	}
	return active
}
