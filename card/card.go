package card

import (
	"github.com/hotpile/uno/card/action"
	"github.com/hotpile/uno/card/color"
)

// Card is one of the closed set of variants: NumberCard, SkipCard,
// ReverseCard, DrawTwoCard, WildCard, WildDrawFourCard. Wild variants
// return a nil Color; the color they pretend to have lives in the
// engine's wild-color binding, not on the card.
type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	String() string
}

// Wild reports whether a card carries no intrinsic color.
func Wild(c Card) bool {
	switch c.(type) {
	case WildCard, WildDrawFourCard:
		return true
	}
	return false
}
