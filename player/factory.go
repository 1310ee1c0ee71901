package player

import (
	"math/rand"

	"github.com/hotpile/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func CreatePlayers(numberOfPlayers int, humanPlayerName string, smartBots bool, rng *rand.Rand) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	players = append(players, NewHumanPlayer(humanPlayerName))
	players = append(players, GenerateBots(numberOfPlayers-1, smartBots, rng)...)
	return players
}

func GenerateBots(amount int, smartBots bool, rng *rand.Rand) []game.Player {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		if smartBots {
			bots = append(bots, NewGoodPlayer(botName))
		} else {
			bots = append(bots, NewNaivePlayer(botName, rng))
		}
	}
	return bots
}
