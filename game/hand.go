package game

import (
	"github.com/hotpile/uno/card"
)

// Hand is the unordered card collection owned by one player. Cards are
// addressed by position so that duplicate cards stay distinguishable.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) CardAt(index int) card.Card {
	return h.cards[index]
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveAt removes and returns the card at index. Removal is by
// position, never by value, so only the chosen copy leaves the hand.
func (h *Hand) RemoveAt(index int) card.Card {
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Size() int {
	return len(h.cards)
}
