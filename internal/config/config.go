package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"squink-splash/internal/game"
)

// Config is the server configuration. Game defaults apply to games
// created without explicit settings; every game fixes its settings at
// creation time.
type Config struct {
	HTTPAddr string        `yaml:"http_addr"`
	Defaults game.Settings `yaml:"defaults"`
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load builds the configuration from built-in defaults, an optional
// YAML file named by CONFIG_FILE, and environment variable overrides,
// in that order.
func Load() Config {
	cfg := Config{
		HTTPAddr: ":8080",
		Defaults: game.Settings{
			Width:         10,
			Height:        10,
			BuyIn:         10,
			FormingRounds: 5,
			Rounds:        50,
			MaxPlayers:    game.DefaultPlayerLimit,
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: cannot read %s: %v", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v", path, err)
		}
	}

	cfg.HTTPAddr = getenvStr("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Defaults.Width = getenvInt("BOARD_WIDTH", cfg.Defaults.Width)
	cfg.Defaults.Height = getenvInt("BOARD_HEIGHT", cfg.Defaults.Height)
	cfg.Defaults.BuyIn = int64(getenvInt("BUY_IN", int(cfg.Defaults.BuyIn)))
	cfg.Defaults.FormingRounds = getenvInt("FORMING_ROUNDS", cfg.Defaults.FormingRounds)
	cfg.Defaults.Rounds = getenvInt("ROUNDS", cfg.Defaults.Rounds)
	cfg.Defaults.MaxPlayers = getenvInt("MAX_PLAYERS", cfg.Defaults.MaxPlayers)
	return cfg
}
