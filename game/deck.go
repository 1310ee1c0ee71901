package game

import (
	"math/rand"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
)

const (
	// A full set holds, per color, one zero, two of each rank 1-9 and
	// two of each action, plus four of each wild kind.
	numberCardCopies = 2
	actionCardCopies = 2
	wildCardCopies   = 4

	DeckSize         = 108
	StartingHandSize = 7

	// Bounds the discard-seeding loop. A deck with any non-wild card
	// never comes close; only a pathological all-wild deck hits it.
	seedReshuffleLimit = 1000
)

// Deck is the draw pile. All randomness flows through the injected
// generator so games replay under a fixed seed.
type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng, cards: make([]card.Card, 0, DeckSize)}
	deck.cards = append(deck.cards, createWildCards()...)
	for _, cardColor := range color.All {
		deck.cards = append(deck.cards, createColorCards(cardColor)...)
	}
	deck.shuffle()
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// SeedDiscard reshuffles until the front card is not a wild, then moves
// it onto the discard pile. The game cannot start with an unbound wild
// color, so a wild front card is put back and the pile reshuffled.
func (d *Deck) SeedDiscard(pile *Pile) (card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrDeckExhausted
	}
	for attempt := 0; attempt < seedReshuffleLimit; attempt++ {
		if first := d.cards[0]; !card.Wild(first) {
			d.cards = d.cards[1:]
			pile.Add(first)
			return first, nil
		}
		d.shuffle()
	}
	return nil, ErrDeckExhausted
}

// Transfer moves amount cards into hand, one at a time. When the draw
// pile runs out mid-transfer, every discard card except the top is
// recycled back in and reshuffled; if nothing is recyclable the
// transfer fails with ErrStarvation. Cards drawn before the failure
// stay in the hand.
func (d *Deck) Transfer(amount int, pile *Pile, hand *Hand) ([]card.Card, error) {
	moved := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.draw(pile)
		if err != nil {
			return moved, err
		}
		hand.AddCards([]card.Card{drawn})
		moved = append(moved, drawn)
	}
	return moved, nil
}

func (d *Deck) draw(pile *Pile) (card.Card, error) {
	if len(d.cards) == 0 {
		recycled := pile.TakeAllButTop()
		if len(recycled) == 0 {
			return nil, ErrStarvation
		}
		d.cards = append(d.cards, recycled...)
		d.shuffle()
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, nil
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for copies := 0; copies < numberCardCopies; copies++ {
		for number := 1; number <= 9; number++ {
			cards = append(cards, card.NewNumberCard(cardColor, number))
		}
	}
	for copies := 0; copies < actionCardCopies; copies++ {
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}

	return cards
}

func createWildCards() []card.Card {
	cards := make([]card.Card, 0, 2*wildCardCopies)
	for copies := 0; copies < wildCardCopies; copies++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}
