// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching one text against a pattern.
type FuzzyResult struct {
	Matched bool
	Score   int
	// Positions are the rune indices in the text that matched the
	// pattern, in ascending order.
	Positions []int
}

// FuzzyPattern lowercases a query for case-insensitive matching.
func FuzzyPattern(query string) []rune {
	return []rune(strings.ToLower(query))
}

// FuzzyMatch runs fzf's V2 matcher over text. The pattern must already
// be lowercased (see [FuzzyPattern]); matching is case-insensitive and
// normalizes accented latin characters. An empty pattern matches
// everything with score zero. The slab may be nil; callers matching
// many texts in a row should reuse one from [util.MakeSlab].
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Matched: true, Score: result.Score}
	if positions != nil {
		match.Positions = append(match.Positions, (*positions)...)
		// fzf reports positions back to front.
		for left, right := 0, len(match.Positions)-1; left < right; left, right = left+1, right-1 {
			match.Positions[left], match.Positions[right] = match.Positions[right], match.Positions[left]
		}
	}
	return match
}

// NewSlab allocates a scratch buffer sized for short labels.
func NewSlab() *util.Slab {
	return util.MakeSlab(16*1024, 2048)
}
