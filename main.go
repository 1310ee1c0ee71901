package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hotpile/uno/config"
	"github.com/hotpile/uno/game"
	"github.com/hotpile/uno/player"
	"github.com/hotpile/uno/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	ui.SetMoveDelay(cfg.MoveDelay)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("game seed %d\n", seed)
	rng := rand.New(rand.NewSource(seed))

	ui.Message.Welcome()
	playerName := cfg.PlayerName
	if playerName == "" {
		playerName = ui.PromptString("What's your name?")
	}
	botCount := cfg.BotCount
	if botCount == 0 {
		botCount = ui.PromptIntegerInRange(1, config.MaxBots,
			fmt.Sprintf("How many bots do you want to play against (1-%d)?", config.MaxBots))
	}

	players := player.CreatePlayers(botCount+1, playerName, cfg.BotLevel == config.BotLevelGood, rng)
	g := game.New(players, rng)
	if err := g.DealStartingCards(); err != nil {
		log.Error(err)
		return
	}
	if _, err := g.PlayFirstCard(); err != nil {
		log.Error(err)
		return
	}

	for {
		result, err := g.PlayTurn()
		if err != nil {
			if errors.Is(err, game.ErrStarvation) {
				ui.Message.GameStarved()
				return
			}
			log.Error(err)
			return
		}
		if result.Win {
			ui.Message.WinnerFound(result.PlayerName)
			return
		}
	}
}
