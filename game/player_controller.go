package game

import (
	"github.com/hotpile/uno/card"
)

// playerController pairs a decision policy with the hand it owns. The
// hand is mutated only here and by the engine's play resolution.
type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}
