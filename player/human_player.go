package player

import (
	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
	"github.com/hotpile/uno/event"
	"github.com/hotpile/uno/game"
	"github.com/hotpile/uno/ui"
)

type humanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) game.Player {
	player := humanPlayer{basicPlayer: basicPlayer{name: name}}
	event.FirstCardPlayed.AddListener(player)
	event.CardPlayed.AddListener(player)
	event.ColorPicked.AddListener(player)
	event.PlayerPassed.AddListener(player)
	event.PlayerSkipped.AddListener(player)
	return player
}

func (p humanPlayer) Decide(state game.State) game.PlayChoice {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(state)
	index, drew := ui.PromptCardSelection(state.Hand, state.LegalIndexes)
	if drew {
		return game.ChooseDraw()
	}
	return game.ChooseCard(index)
}

func (p humanPlayer) PickColor(state game.State) color.Color {
	return ui.PromptColor()
}

func (p humanPlayer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	ui.Message.FirstCardPlayed(payload.Card)
}

func (p humanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.PlayerName == p.name {
		return
	}
	ui.Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (p humanPlayer) OnColorPicked(payload event.ColorPickedPayload) {
	ui.Message.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (p humanPlayer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	ui.Message.PlayerPassed(payload.PlayerName)
}

func (p humanPlayer) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	ui.Message.PlayerTurnSkipped(payload.PlayerName)
}

func (p humanPlayer) NotifyCardsDrawn(cards []card.Card) {
	ui.Message.HumanPlayerDrewCards(cards)
}

func (p humanPlayer) NotifyNoMatchingCardsInHand(lastPlayedCard card.Card, hand []card.Card) {
	ui.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, lastPlayedCard, hand)
}
