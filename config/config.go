package config

import (
	"flag"
	"time"

	"snake-infinity/game"
	"snake-infinity/game/types"

	"github.com/pkg/errors"
)

// Environment variables read by Load.
const (
	EnvCellSize   = "SNAKE_CELL_SIZE"
	EnvCells      = "SNAKE_CELLS"
	EnvTick       = "SNAKE_TICK"
	EnvFoodScore  = "SNAKE_FOOD_SCORE"
	EnvInitialLen = "SNAKE_INITIAL_LENGTH"
	EnvSeed       = "SNAKE_SEED"
	EnvStatsFile  = "SNAKE_STATS_FILE"
	EnvAssetsDir  = "SNAKE_ASSETS_DIR"
	EnvSound      = "SNAKE_SOUND"
	EnvDebug      = "SNAKE_DEBUG"
)

const DefaultTargetFPS = 60

type Config struct {
	CellSize      int
	Cells         int
	TickInterval  time.Duration
	FoodScore     int
	InitialLength int
	Seed          int64 // 0 seeds from the clock
	StatsFile     string
	AssetsDir     string
	Sound         bool
	Debug         bool
	TargetFPS     int
}

// Default returns the classic configuration.
func Default() *Config {
	return &Config{
		CellSize:      types.DefaultCellSize,
		Cells:         types.DefaultCells,
		TickInterval:  200 * time.Millisecond,
		FoodScore:     types.DefaultFoodScore,
		InitialLength: types.DefaultInitialLength,
		TargetFPS:     DefaultTargetFPS,
	}
}

// Load applies environment overrides and then command line flags to the defaults.
func Load(name string, args []string) (*Config, error) {
	cfg := Default()

	cfg.CellSize = GetEnvInt(EnvCellSize, cfg.CellSize)
	cfg.Cells = GetEnvInt(EnvCells, cfg.Cells)
	cfg.TickInterval = GetEnvDuration(EnvTick, cfg.TickInterval)
	cfg.FoodScore = GetEnvInt(EnvFoodScore, cfg.FoodScore)
	cfg.InitialLength = GetEnvInt(EnvInitialLen, cfg.InitialLength)
	cfg.Seed = int64(GetEnvInt(EnvSeed, int(cfg.Seed)))
	cfg.StatsFile = GetEnv(EnvStatsFile, cfg.StatsFile)
	cfg.AssetsDir = GetEnv(EnvAssetsDir, cfg.AssetsDir)
	cfg.Sound = GetEnvBool(EnvSound, cfg.Sound)
	cfg.Debug = GetEnvBool(EnvDebug, cfg.Debug)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.Cells, "cells", cfg.Cells, "Cells per grid side")
	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between snake moves")
	fs.IntVar(&cfg.FoodScore, "food-score", cfg.FoodScore, "Points per food")
	fs.IntVar(&cfg.InitialLength, "length", cfg.InitialLength, "Initial snake length")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement (0 = time)")
	fs.StringVar(&cfg.StatsFile, "stats", cfg.StatsFile, "JSON file for session statistics (empty = keep in memory)")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "Directory with play.png and restart.png (empty = embedded)")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound effects")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes and intervals the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Cells < 2:
		return errors.Errorf("grid needs at least 2 cells per side, got %d", c.Cells)
	case c.TickInterval <= 0:
		return errors.Errorf("tick interval must be positive, got %v", c.TickInterval)
	case c.InitialLength < 1 || c.InitialLength > c.Cells/2+1:
		return errors.Errorf("initial length %d does not fit a %d cell grid", c.InitialLength, c.Cells)
	case c.FoodScore < 0:
		return errors.Errorf("food score must not be negative, got %d", c.FoodScore)
	}
	return nil
}

// Grid returns the board geometry.
func (c *Config) Grid() types.Grid {
	return types.Grid{CellSize: c.CellSize, Cells: c.Cells}
}

// GameConfig converts to the rules consumed by game.NewGame.
func (c *Config) GameConfig() game.Config {
	gc := game.DefaultConfig()
	gc.Grid = c.Grid()
	gc.TickInterval = c.TickInterval
	gc.FoodScore = c.FoodScore
	gc.InitialLength = c.InitialLength
	if c.Seed != 0 {
		gc.Seed = uint64(c.Seed)
	}
	return gc
}
