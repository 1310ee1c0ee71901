package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
	"github.com/stretchr/testify/require"
)

// scriptedPlayer replays a fixed list of choices and colors.
type scriptedPlayer struct {
	name    string
	choices []PlayChoice
	colors  []color.Color
}

func (p *scriptedPlayer) Name() string {
	return p.name
}

func (p *scriptedPlayer) Decide(state State) PlayChoice {
	choice := p.choices[0]
	p.choices = p.choices[1:]
	return choice
}

func (p *scriptedPlayer) PickColor(state State) color.Color {
	chosenColor := p.colors[0]
	p.colors = p.colors[1:]
	return chosenColor
}

func (p *scriptedPlayer) NotifyCardsDrawn(drawnCards []card.Card) {}

func (p *scriptedPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card) {}

func newTestGame(deckCards []card.Card, players ...Player) *Game {
	return &Game{
		players: newPlayerIterator(players),
		deck:    &Deck{rng: rand.New(rand.NewSource(7)), cards: deckCards},
		pile:    NewPile(),
	}
}

func (g *Game) dealTo(index int, cards ...card.Card) {
	g.players.controllers[index].hand.AddCards(cards)
}

func TestPlayTurnWinsOnLastCard(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewNumberCard(color.Red, 5))
	g.dealTo(1, card.NewNumberCard(color.Blue, 3))
	g.pile.Add(card.NewNumberCard(color.Red, 9))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.True(t, result.Win)
	require.Equal(t, 0, result.PlayerIndex)
	require.Equal(t, "A", result.PlayerName)
	require.Equal(t, card.NewNumberCard(color.Red, 5), result.Played)
	// The game is over; the turn cycle stays on the winner.
	require.Equal(t, 0, g.CurrentPlayerIndex())
}

func TestPlayTurnSkipConsumesNextTurn(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	playerC := &scriptedPlayer{name: "C", choices: []PlayChoice{ChooseCard(0)}}
	g := newTestGame(nil, playerA, playerB, playerC)
	g.dealTo(0, card.NewSkipCard(color.Blue), card.NewNumberCard(color.Green, 2))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.dealTo(2, card.NewNumberCard(color.Blue, 7))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, card.NewSkipCard(color.Blue), result.Played)
	require.Equal(t, 1, g.CurrentPlayerIndex())

	result, err = g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, 1, result.PlayerIndex)
	require.Nil(t, result.Played)
	require.Equal(t, 1, g.players.controllers[1].hand.Size())

	result, err = g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, 2, result.PlayerIndex)
	require.Equal(t, card.NewNumberCard(color.Blue, 7), result.Played)
}

func TestPlayTurnDrawTwoForcesDrawThenPass(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	playerC := &scriptedPlayer{name: "C"}
	g := newTestGame(
		[]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewNumberCard(color.Red, 3),
		},
		playerA, playerB, playerC,
	)
	g.dealTo(0, card.NewDrawTwoCard(color.Blue), card.NewNumberCard(color.Green, 2))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.dealTo(2, card.NewNumberCard(color.Blue, 7))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	_, err := g.PlayTurn()
	require.NoError(t, err)

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Nil(t, result.Played)
	require.Equal(t, 3, g.players.controllers[1].hand.Size())
	require.Equal(t, 2, g.CurrentPlayerIndex())
	require.False(t, g.hot)
}

func TestPlayTurnWildDrawFourForcesFourAndKeepsBinding(t *testing.T) {
	playerA := &scriptedPlayer{
		name:    "A",
		choices: []PlayChoice{ChooseCard(0)},
		colors:  []color.Color{color.Red},
	}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(
		[]card.Card{
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Green, 2),
			card.NewNumberCard(color.Green, 3),
			card.NewNumberCard(color.Green, 4),
			card.NewNumberCard(color.Green, 5),
		},
		playerA, playerB,
	)
	g.dealTo(0, card.NewWildDrawFourCard(), card.NewNumberCard(color.Green, 3))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Green, 7))

	_, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, color.Red, g.CurrentWildColor())

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Nil(t, result.Played)
	require.Equal(t, 5, g.players.controllers[1].hand.Size())
	// The binding outlives the forced draw, until the next card lands.
	require.Equal(t, color.Red, g.CurrentWildColor())
	require.Equal(t, 0, g.CurrentPlayerIndex())
}

func TestPlayTurnWildBindingClearedByNextPlay(t *testing.T) {
	playerA := &scriptedPlayer{
		name:    "A",
		choices: []PlayChoice{ChooseCard(0)},
		colors:  []color.Color{color.Blue},
	}
	playerB := &scriptedPlayer{name: "B", choices: []PlayChoice{ChooseCard(0)}}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewWildCard(), card.NewNumberCard(color.Red, 5))
	g.dealTo(1, card.NewNumberCard(color.Blue, 9))
	g.pile.Add(card.NewNumberCard(color.Green, 2))

	_, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, color.Blue, g.CurrentWildColor())

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Blue, 9), result.Played)
	require.True(t, result.Win)
	require.Nil(t, g.CurrentWildColor())
}

func TestPlayTurnReverseFlipsDirection(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	playerC := &scriptedPlayer{name: "C", choices: []PlayChoice{ChooseCard(0)}}
	g := newTestGame(nil, playerA, playerB, playerC)
	g.dealTo(0, card.NewReverseCard(color.Blue), card.NewNumberCard(color.Green, 2))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.dealTo(2, card.NewReverseCard(color.Green), card.NewNumberCard(color.Red, 8))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	_, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, -1, g.players.Direction())
	require.Equal(t, 2, g.CurrentPlayerIndex())

	// A second reverse restores the original direction.
	_, err = g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, 1, g.players.Direction())
	require.Equal(t, 0, g.CurrentPlayerIndex())
}

func TestPlayTurnReverseWithTwoPlayersActsAsSkip(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewReverseCard(color.Blue), card.NewNumberCard(color.Green, 2))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	_, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, 1, g.CurrentPlayerIndex())

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Nil(t, result.Played)
	require.Equal(t, 1, g.players.controllers[1].hand.Size())
	require.Equal(t, 0, g.CurrentPlayerIndex())
}

func TestPlayTurnStarvationEndsGame(t *testing.T) {
	playerA := &scriptedPlayer{name: "A"}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewNumberCard(color.Red, 9))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	_, err := g.PlayTurn()
	require.True(t, errors.Is(err, ErrStarvation))
}

func TestPlayRejectsIllegalPlays(t *testing.T) {
	playerA := &scriptedPlayer{name: "A"}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewNumberCard(color.Blue, 1))
	g.pile.Add(card.NewNumberCard(color.Red, 9))

	_, err := g.Play(0)
	require.True(t, errors.Is(err, ErrIllegalPlay))
	_, err = g.Play(-1)
	require.True(t, errors.Is(err, ErrIllegalPlay))
	_, err = g.Play(5)
	require.True(t, errors.Is(err, ErrIllegalPlay))

	require.Equal(t, 1, g.players.controllers[0].hand.Size())
	require.Equal(t, card.NewNumberCard(color.Red, 9), g.CurrentTopCard())
}

func TestPlayTurnReAsksAfterIllegalChoice(t *testing.T) {
	playerA := &scriptedPlayer{
		name:    "A",
		choices: []PlayChoice{ChooseCard(0), ChooseCard(1)},
	}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewNumberCard(color.Red, 9), card.NewNumberCard(color.Blue, 5))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Blue, 5), result.Played)
}

func TestPlayTurnPlaysMatchingDrawnCard(t *testing.T) {
	playerA := &scriptedPlayer{name: "A"}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(
		[]card.Card{card.NewNumberCard(color.Blue, 7)},
		playerA, playerB,
	)
	g.dealTo(0, card.NewNumberCard(color.Red, 9))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Blue, 7), result.Played)
	require.Equal(t, 1, g.players.controllers[0].hand.Size())
}

func TestPlayTurnPassesWhenDrawnCardDoesNotMatch(t *testing.T) {
	playerA := &scriptedPlayer{name: "A"}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(
		[]card.Card{card.NewNumberCard(color.Red, 4)},
		playerA, playerB,
	)
	g.dealTo(0, card.NewNumberCard(color.Red, 9))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	g.pile.Add(card.NewNumberCard(color.Blue, 1))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Nil(t, result.Played)
	require.Equal(t, 2, g.players.controllers[0].hand.Size())
	require.Equal(t, 1, g.CurrentPlayerIndex())
	require.False(t, g.hot)
}

func TestSeedCardHasNoConsequenceForTheFirstPlayer(t *testing.T) {
	playerA := &scriptedPlayer{name: "A", choices: []PlayChoice{ChooseCard(0)}}
	playerB := &scriptedPlayer{name: "B"}
	g := newTestGame(nil, playerA, playerB)
	g.dealTo(0, card.NewNumberCard(color.Blue, 3), card.NewNumberCard(color.Red, 1))
	g.dealTo(1, card.NewNumberCard(color.Yellow, 4))
	// A skip seeded from the deck is just a blue card to match against.
	g.pile.Add(card.NewSkipCard(color.Blue))

	result, err := g.PlayTurn()
	require.NoError(t, err)
	require.Equal(t, card.NewNumberCard(color.Blue, 3), result.Played)
}

func TestDealStartingCards(t *testing.T) {
	players := []Player{
		&scriptedPlayer{name: "A"},
		&scriptedPlayer{name: "B"},
		&scriptedPlayer{name: "C"},
	}
	g := New(players, rand.New(rand.NewSource(11)))

	require.NoError(t, g.DealStartingCards())
	g.players.ForEach(func(player *playerController) {
		require.Equal(t, StartingHandSize, player.hand.Size())
	})
	require.Equal(t, DeckSize-3*StartingHandSize, g.deck.Size())
}

func TestDealStartingCardsWithTooSmallDeck(t *testing.T) {
	g := newTestGame(
		[]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
		},
		&scriptedPlayer{name: "A"}, &scriptedPlayer{name: "B"},
	)

	require.True(t, errors.Is(g.DealStartingCards(), ErrInsufficientCards))
}

func TestPlayFirstCard(t *testing.T) {
	players := []Player{
		&scriptedPlayer{name: "A"},
		&scriptedPlayer{name: "B"},
	}
	g := New(players, rand.New(rand.NewSource(11)))
	require.NoError(t, g.DealStartingCards())

	firstCard, err := g.PlayFirstCard()
	require.NoError(t, err)
	require.False(t, card.Wild(firstCard))
	require.Equal(t, firstCard, g.CurrentTopCard())
	require.False(t, g.hot)
}
