package game

import (
	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
)

// Player is the decision policy behind a seat. There are exactly two
// behaviors, human and automated; both answer the same questions.
type Player interface {
	Name() string
	Decide(state State) PlayChoice
	PickColor(state State) color.Color
	NotifyCardsDrawn(drawnCards []card.Card)
	NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card)
}

// PlayChoice is either "draw a card" or "play the card at CardIndex".
type PlayChoice struct {
	Draw      bool
	CardIndex int
}

func ChooseDraw() PlayChoice {
	return PlayChoice{Draw: true}
}

func ChooseCard(index int) PlayChoice {
	return PlayChoice{CardIndex: index}
}
