package game

import (
	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
)

// Accepts decides whether candidate may be placed on top. wildColor is
// the active wild-color binding and must be non-nil whenever top is a
// wild card; calling it unbound is a contract violation, not a legal
// game state, and panics.
func Accepts(top card.Card, candidate card.Card, wildColor color.Color) bool {
	if card.Wild(candidate) {
		return true
	}
	if card.Wild(top) {
		if wildColor == nil {
			panic("uno: matching against a wild top card with no color bound")
		}
		return candidate.Color() == wildColor
	}

	switch candidate := candidate.(type) {
	case card.NumberCard:
		if top, isNumberCard := top.(card.NumberCard); isNumberCard {
			return candidate.Color() == top.Color() || candidate.Number() == top.Number()
		}
		return candidate.Color() == top.Color()
	case card.SkipCard:
		if _, isSkipCard := top.(card.SkipCard); isSkipCard {
			return true
		}
		return candidate.Color() == top.Color()
	case card.ReverseCard:
		if _, isReverseCard := top.(card.ReverseCard); isReverseCard {
			return true
		}
		return candidate.Color() == top.Color()
	case card.DrawTwoCard:
		if _, isDrawTwoCard := top.(card.DrawTwoCard); isDrawTwoCard {
			return true
		}
		return candidate.Color() == top.Color()
	default:
		return false
	}
}

// LegalPlays returns the indices into hand whose cards Accepts allows
// on top of the given card.
func LegalPlays(hand []card.Card, top card.Card, wildColor color.Color) []int {
	var indexes []int
	for index, candidate := range hand {
		if Accepts(top, candidate, wildColor) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}
