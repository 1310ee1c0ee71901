package game

import (
	"github.com/hotpile/uno/card"
)

// Pile is the discard pile. Only its top card matters for matching;
// everything underneath exists to be recycled into the draw pile.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// TakeAllButTop removes and returns every card except the top one.
// It returns nothing when the pile holds at most its top card.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	taken := p.cards[:len(p.cards)-1]
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return taken
}
