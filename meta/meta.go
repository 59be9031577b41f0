// meta/meta.go
package meta

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// PLAYERS defines the default number of seats.
const PLAYERS = 4

// MIN_PLAYERS and MAX_PLAYERS bound the seats the standard map supports.
const MIN_PLAYERS = 2
const MAX_PLAYERS = 4

// WIN_POINTS defines the victory points that end a game.
const WIN_POINTS = 10

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 300

const TILE_LAYOUT = "random"
const PORT_LAYOUT = "standard"

// Config is the tunable setup of a simulated game. Values come from the
// defaults above, then an optional YAML file, then CATAN_* variables.
type Config struct {
	Players    int    `yaml:"players" env:"CATAN_PLAYERS"`
	WinPoints  int    `yaml:"win_points" env:"CATAN_WIN_POINTS"`
	TileLayout string `yaml:"tile_layout" env:"CATAN_TILE_LAYOUT"`
	PortLayout string `yaml:"port_layout" env:"CATAN_PORT_LAYOUT"`
	Seed       uint64 `yaml:"seed" env:"CATAN_SEED"` // 0 seeds from the clock
	MaxTurns   int    `yaml:"max_turns" env:"CATAN_MAX_TURNS"`
	LogLevel   string `yaml:"log_level" env:"CATAN_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Players:    PLAYERS,
		WinPoints:  WIN_POINTS,
		TileLayout: TILE_LAYOUT,
		PortLayout: PORT_LAYOUT,
		MaxTurns:   MAX_TURNS,
		LogLevel:   "info",
	}
}

// Load reads path (if not empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < MIN_PLAYERS || c.Players > MAX_PLAYERS {
		return fmt.Errorf("players must be between %d and %d, got %d", MIN_PLAYERS, MAX_PLAYERS, c.Players)
	}
	if c.WinPoints < 3 {
		return fmt.Errorf("win_points must be at least 3, got %d", c.WinPoints)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	switch c.TileLayout {
	case "basic", "random":
	default:
		return fmt.Errorf("unknown tile_layout %q", c.TileLayout)
	}
	switch c.PortLayout {
	case "standard", "rotated", "scrambled":
	default:
		return fmt.Errorf("unknown port_layout %q", c.PortLayout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return level, nil
}
