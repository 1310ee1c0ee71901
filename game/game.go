package game

import (
	"errors"
	"math/rand"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/action"
	"github.com/hotpile/uno/card/color"
	"github.com/hotpile/uno/event"
)

// Game is the turn-based engine: draw pile, discard pile, hands, the
// wild-color binding and the hot flag. It is strictly sequential; a
// turn either fully completes or the game ends with a terminal error.
type Game struct {
	players   *PlayerIterator
	deck      *Deck
	pile      *Pile
	wildColor color.Color
	hot       bool
}

// Effect is the outcome of resolving one play.
type Effect struct {
	Card      card.Card
	Reversed  bool
	WildColor color.Color
	Win       bool
}

// TurnResult summarizes one full turn. Played is nil when the turn
// passed without a discard change (forced consequence or failed draw).
type TurnResult struct {
	PlayerIndex int
	PlayerName  string
	Played      card.Card
	Win         bool
}

func New(players []Player, rng *rand.Rand) *Game {
	return &Game{
		players: newPlayerIterator(players),
		deck:    NewDeck(rng),
		pile:    NewPile(),
	}
}

func (g *Game) CurrentPlayerIndex() int {
	return g.players.CurrentIndex()
}

func (g *Game) CurrentTopCard() card.Card {
	return g.pile.Top()
}

// CurrentWildColor is nil unless a wild card sits on top of the
// discard pile.
func (g *Game) CurrentWildColor() color.Color {
	return g.wildColor
}

func (g *Game) DealStartingCards() error {
	if g.deck.Size() < g.players.Count()*StartingHandSize {
		return ErrInsufficientCards
	}
	var dealErr error
	g.players.ForEach(func(player *playerController) {
		if dealErr != nil {
			return
		}
		_, dealErr = g.deck.Transfer(StartingHandSize, g.pile, player.hand)
	})
	return dealErr
}

// PlayFirstCard seeds the discard pile with a non-wild card. The seed
// card is never treated as just played: the first turn is always a
// plain decision, whatever the seed card is.
func (g *Game) PlayFirstCard() (card.Card, error) {
	firstCard, err := g.deck.SeedDiscard(g.pile)
	if err != nil {
		return nil, err
	}
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return firstCard, nil
}

// Play places the current player's card at index on the discard pile.
// The index is range-checked and legality-checked; failing either is
// ErrIllegalPlay and leaves all state untouched. Skip and forced-draw
// consequences are not applied here: they are honored by the next
// player at the top of their turn.
func (g *Game) Play(index int) (Effect, error) {
	player := g.players.Current()
	if index < 0 || index >= player.hand.Size() {
		return Effect{}, ErrIllegalPlay
	}
	if !Accepts(g.pile.Top(), player.hand.CardAt(index), g.wildColor) {
		return Effect{}, ErrIllegalPlay
	}

	played := player.hand.RemoveAt(index)
	g.pile.Add(played)
	g.wildColor = nil
	g.hot = true

	effect := Effect{Card: played}
	for _, cardAction := range played.Actions() {
		switch cardAction.(type) {
		case action.ReverseTurnsAction:
			g.players.Reverse()
			effect.Reversed = true
		case action.PickColorAction:
			chosenColor := player.player.PickColor(g.ExtractState(player))
			g.wildColor = chosenColor
			effect.WildColor = chosenColor
			event.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      chosenColor,
			})
		}
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       played,
	})

	if player.NoCards() {
		effect.Win = true
	}
	return effect, nil
}

// DrawOne moves one card from the draw pile into the current player's
// hand, recycling the discard pile if needed.
func (g *Game) DrawOne() (card.Card, error) {
	player := g.players.Current()
	moved, err := g.deck.Transfer(1, g.pile, player.hand)
	if err != nil {
		return nil, err
	}
	player.player.NotifyCardsDrawn(moved)
	return moved[0], nil
}

// PlayTurn runs the current player's whole turn and advances the
// cycle. A pending consequence from the previous play is honored
// first; a consequence consumes the turn outright. The only error
// returns are terminal: ErrStarvation ends the game with no winner.
func (g *Game) PlayTurn() (TurnResult, error) {
	player := g.players.Current()
	result := TurnResult{
		PlayerIndex: g.players.CurrentIndex(),
		PlayerName:  player.Name(),
	}

	if g.hot {
		g.hot = false
		consumed, err := g.resolveConsequence(player)
		if err != nil {
			return result, err
		}
		if consumed {
			g.players.Next()
			return result, nil
		}
	}

	effect, err := g.takeDecision(player)
	if err != nil {
		return result, err
	}
	result.Played = effect.Card
	result.Win = effect.Win
	if effect.Win {
		return result, nil
	}
	g.players.Next()
	return result, nil
}

// resolveConsequence honors what the previous play left pending, read
// off the top card's actions. Skip and forced draws consume the turn;
// a forced draw never grants a play afterwards. A reverse was already
// applied when played, except that with exactly two players it behaves
// as a skip, since flipping direction between two players has no
// observable effect otherwise.
func (g *Game) resolveConsequence(player *playerController) (bool, error) {
	consumed := false
	for _, cardAction := range g.pile.Top().Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			consumed = true
		case action.DrawCardsAction:
			moved, err := g.deck.Transfer(cardAction.Amount(), g.pile, player.hand)
			if err != nil {
				return false, err
			}
			player.player.NotifyCardsDrawn(moved)
			consumed = true
		case action.ReverseTurnsAction:
			if g.players.Count() == 2 {
				consumed = true
			}
		}
	}
	if consumed {
		event.PlayerSkipped.Emit(event.PlayerSkippedPayload{
			PlayerName: player.Name(),
		})
	}
	return consumed, nil
}

func (g *Game) takeDecision(player *playerController) (Effect, error) {
	state := g.ExtractState(player)
	if len(state.LegalIndexes) == 0 {
		player.player.NotifyNoMatchingCardsInHand(state.TopCard, state.Hand)
		return g.tryTopDecking(player)
	}
	for {
		choice := player.player.Decide(state)
		if choice.Draw {
			return g.tryTopDecking(player)
		}
		effect, err := g.Play(choice.CardIndex)
		if errors.Is(err, ErrIllegalPlay) {
			continue
		}
		return effect, err
	}
}

// tryTopDecking draws a single card and plays it immediately if it
// matches; otherwise the turn passes with no discard change.
func (g *Game) tryTopDecking(player *playerController) (Effect, error) {
	drawn, err := g.DrawOne()
	if err != nil {
		return Effect{}, err
	}
	if Accepts(g.pile.Top(), drawn, g.wildColor) {
		return g.Play(player.hand.Size() - 1)
	}
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
	})
	return Effect{}, nil
}

func (g *Game) ExtractState(player *playerController) State {
	playerSequence := make([]string, 0, g.players.Count())
	playerHandCounts := make(map[string]int, g.players.Count())
	g.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.hand.Size()
	})

	hand := player.Hand()
	topCard := g.pile.Top()
	// No legality can be computed while a just-played wild awaits its
	// color; decisions never observe this intermediate state.
	var legalIndexes []int
	if topCard != nil && !(card.Wild(topCard) && g.wildColor == nil) {
		legalIndexes = LegalPlays(hand, topCard, g.wildColor)
	}

	return State{
		TopCard:          topCard,
		WildColor:        g.wildColor,
		Hand:             hand,
		LegalIndexes:     legalIndexes,
		Direction:        g.players.Direction(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
	}
}
