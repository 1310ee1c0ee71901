package player

import (
	"math/rand"

	"github.com/hotpile/uno/card/color"
	"github.com/hotpile/uno/game"
)

// naivePlayer plays a uniformly random legal card and picks wild
// colors at random, all from the injected generator.
type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) Decide(state game.State) game.PlayChoice {
	randomLegalIndex := state.LegalIndexes[p.rng.Intn(len(state.LegalIndexes))]
	return game.ChooseCard(randomLegalIndex)
}

func (p naivePlayer) PickColor(state game.State) color.Color {
	return color.All[p.rng.Intn(len(color.All))]
}
