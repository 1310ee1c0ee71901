package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestTransferRecyclesDiscardPile(t *testing.T) {
	deck := &Deck{
		rng:   rand.New(rand.NewSource(7)),
		cards: []card.Card{card.NewNumberCard(color.Blue, 1)},
	}
	pile := NewPile()
	pile.Add(card.NewNumberCard(color.Red, 2))
	pile.Add(card.NewNumberCard(color.Red, 3))
	pile.Add(card.NewNumberCard(color.Red, 4))
	pile.Add(card.NewNumberCard(color.Red, 5))
	pile.Add(card.NewNumberCard(color.Red, 6))
	topCard := card.NewSkipCard(color.Green)
	pile.Add(topCard)
	hand := NewHand()

	moved, err := deck.Transfer(3, pile, hand)
	require.NoError(t, err)
	require.Len(t, moved, 3)
	require.Equal(t, 3, hand.Size())
	// The single draw-pile card went first, then the five cards under
	// the top were recycled to cover the rest.
	require.Equal(t, 3, deck.Size())
	require.Equal(t, 1, pile.Size())
	require.Equal(t, topCard, pile.Top())
}

func TestTransferKeepsDrawnCardsOnMidTransferStarvation(t *testing.T) {
	deck := &Deck{
		rng:   rand.New(rand.NewSource(7)),
		cards: []card.Card{card.NewNumberCard(color.Blue, 1)},
	}
	pile := NewPile()
	pile.Add(card.NewNumberCard(color.Green, 9))
	hand := NewHand()

	moved, err := deck.Transfer(3, pile, hand)
	require.True(t, errors.Is(err, ErrStarvation))
	// The card drawn before the draw pile ran dry is already in the
	// hand, so the full set of cards stays accounted for.
	require.Equal(t, []card.Card{card.NewNumberCard(color.Blue, 1)}, moved)
	require.Equal(t, []card.Card{card.NewNumberCard(color.Blue, 1)}, hand.Cards())
	require.Equal(t, 0, deck.Size())
	require.Equal(t, 1, pile.Size())
}

func TestTransferStarvesWhenOnlyTopCardRemains(t *testing.T) {
	deck := &Deck{rng: rand.New(rand.NewSource(7))}
	pile := NewPile()
	pile.Add(card.NewNumberCard(color.Green, 9))
	hand := NewHand()

	_, err := deck.Transfer(1, pile, hand)
	require.True(t, errors.Is(err, ErrStarvation))
	require.Equal(t, 0, hand.Size())
	require.Equal(t, 1, pile.Size())
}

func TestTransferNeverStarvesWhileDiscardPileIsRecyclable(t *testing.T) {
	deck := &Deck{rng: rand.New(rand.NewSource(7))}
	pile := NewPile()
	pile.Add(card.NewNumberCard(color.Yellow, 1))
	pile.Add(card.NewNumberCard(color.Yellow, 2))
	hand := NewHand()

	_, err := deck.Transfer(1, pile, hand)
	require.NoError(t, err)
	require.Equal(t, 1, hand.Size())
	require.Equal(t, card.NewNumberCard(color.Yellow, 1), hand.CardAt(0))
}

func TestSeedDiscardFailsOnAllWildDeck(t *testing.T) {
	deck := &Deck{
		rng:   rand.New(rand.NewSource(7)),
		cards: []card.Card{card.NewWildCard(), card.NewWildDrawFourCard()},
	}

	_, err := deck.SeedDiscard(NewPile())
	require.True(t, errors.Is(err, ErrDeckExhausted))
}

func TestSeedDiscardFailsOnEmptyDeck(t *testing.T) {
	deck := &Deck{rng: rand.New(rand.NewSource(7))}

	_, err := deck.SeedDiscard(NewPile())
	require.True(t, errors.Is(err, ErrDeckExhausted))
}
