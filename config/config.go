package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MaxBots keeps the table below the point where starting hands
	// could exhaust the draw pile.
	MaxBots = 9

	BotLevelGood  = "good"
	BotLevelNaive = "naive"

	defaultMoveDelay = 500 * time.Millisecond
)

type Config struct {
	PlayerName string
	BotCount   int   // 0 means ask at startup
	BotLevel   string
	Seed       int64 // 0 means derive from the clock
	MoveDelay  time.Duration
}

// Load reads an optional .env file, then the environment. Unset keys
// fall back to interactive prompts or defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		PlayerName: os.Getenv("UNO_PLAYER_NAME"),
		BotLevel:   envOr("UNO_BOT_LEVEL", BotLevelGood),
		MoveDelay:  defaultMoveDelay,
	}

	if v := os.Getenv("UNO_BOTS"); v != "" {
		bots, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UNO_BOTS %q: %w", v, err)
		}
		if bots < 1 || bots > MaxBots {
			return Config{}, fmt.Errorf("UNO_BOTS must be between 1 and %d, got %d", MaxBots, bots)
		}
		c.BotCount = bots
	}

	if v := os.Getenv("UNO_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UNO_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}

	if v := os.Getenv("UNO_MOVE_DELAY"); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid UNO_MOVE_DELAY %q: %w", v, err)
		}
		c.MoveDelay = delay
	}

	if c.BotLevel != BotLevelGood && c.BotLevel != BotLevelNaive {
		return Config{}, fmt.Errorf("UNO_BOT_LEVEL must be %q or %q, got %q", BotLevelGood, BotLevelNaive, c.BotLevel)
	}

	return c, nil
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
