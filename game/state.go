package game

import (
	"fmt"
	"strings"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
)

// State is the snapshot handed to a player for a decision.
type State struct {
	TopCard          card.Card
	WildColor        color.Color
	Hand             []card.Card
	LegalIndexes     []int
	Direction        int
	PlayerSequence   []string
	PlayerHandCounts map[string]int
}

func (s State) String() string {
	var lines []string
	if s.WildColor != nil {
		lines = append(lines, fmt.Sprintf("Last played card: %s, color %s", s.TopCard, s.WildColor))
	} else {
		lines = append(lines, fmt.Sprintf("Last played card: %s", s.TopCard))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))

	return strings.Join(lines, "\n")
}
