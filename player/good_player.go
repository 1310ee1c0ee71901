package player

import (
	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
	"github.com/hotpile/uno/game"
)

// goodPlayer discards the card that leaves the most follow-ups in
// hand, holds wilds while colored plays remain, and binds wilds to its
// dominant hand color.
type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) Decide(state game.State) game.PlayChoice {
	mostDiscardableIndex := state.LegalIndexes[0]
	maxSpareCards := 0

	for _, legalIndex := range state.LegalIndexes {
		candidate := state.Hand[legalIndex]
		if card.Wild(candidate) {
			continue
		}
		spareCards := 0
		for handIndex, handCard := range state.Hand {
			if handIndex == legalIndex {
				continue
			}
			if game.Accepts(candidate, handCard, nil) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableIndex = legalIndex
		}
	}

	return game.ChooseCard(mostDiscardableIndex)
}

func (p goodPlayer) PickColor(state game.State) color.Color {
	if len(state.Hand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range state.Hand {
		if handCard.Color() == nil {
			for _, anyColor := range color.All {
				colorCounts[anyColor]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	// Ties resolve by the stable order of color.All, never map order.
	mostFrequentColor := color.All[0]
	for _, candidateColor := range color.All[1:] {
		if colorCounts[candidateColor] > colorCounts[mostFrequentColor] {
			mostFrequentColor = candidateColor
		}
	}

	return mostFrequentColor
}
