package config

import (
	"os"
	"strconv"
)

// Weights are the bot's heuristic coefficients. They are loaded once at
// startup (or fixed when a room is created) and never change afterwards,
// which keeps the bot deterministic for a given position.
type Weights struct {
	Mobility    int `json:"mobility"`
	OppMobility int `json:"oppMobility"`
	Proximity   int `json:"proximity"`
	Cutoff      int `json:"cutoff"`
	Center      int `json:"center"`
}

type Config struct {
	HTTPAddr  string
	BoardRows int
	BoardCols int
	Weights   Weights
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// DefaultWeights returns the tuned defaults used when no overrides are set.
func DefaultWeights() Weights {
	return Weights{
		Mobility:    3,
		OppMobility: 3,
		Proximity:   1,
		Cutoff:      2,
		Center:      1,
	}
}

func Load() Config {
	def := DefaultWeights()
	return Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		BoardRows: getenvInt("BOARD_ROWS", 7),
		BoardCols: getenvInt("BOARD_COLS", 7),
		Weights: Weights{
			Mobility:    getenvInt("W_MOBILITY", def.Mobility),
			OppMobility: getenvInt("W_OPP_MOBILITY", def.OppMobility),
			Proximity:   getenvInt("W_PROXIMITY", def.Proximity),
			Cutoff:      getenvInt("W_CUTOFF", def.Cutoff),
			Center:      getenvInt("W_CENTER", def.Center),
		},
	}
}
