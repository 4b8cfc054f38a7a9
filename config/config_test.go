package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("snake", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CellSize != 40 || cfg.Cells != 20 {
		t.Errorf("Expected 20 cells of 40px, got %d of %dpx", cfg.Cells, cfg.CellSize)
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Errorf("Expected 200ms tick, got %v", cfg.TickInterval)
	}
	if cfg.StatsFile != "" {
		t.Errorf("Expected no stats file by default, got %q", cfg.StatsFile)
	}
	if cfg.Sound {
		t.Error("Expected sound off by default")
	}
	if cfg.Grid().Span() != 800 {
		t.Errorf("Expected 800px span, got %d", cfg.Grid().Span())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvCells, "30")
	t.Setenv(EnvTick, "150ms")
	t.Setenv(EnvSound, "true")
	t.Setenv(EnvStatsFile, "/tmp/stats.json")
	t.Setenv(EnvFoodScore, "not-a-number")

	cfg, err := Load("snake", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Cells != 30 {
		t.Errorf("Expected 30 cells, got %d", cfg.Cells)
	}
	if cfg.TickInterval != 150*time.Millisecond {
		t.Errorf("Expected 150ms tick, got %v", cfg.TickInterval)
	}
	if !cfg.Sound {
		t.Error("Expected sound enabled")
	}
	if cfg.StatsFile != "/tmp/stats.json" {
		t.Errorf("unexpected stats file %q", cfg.StatsFile)
	}
	if cfg.FoodScore != 10 {
		t.Errorf("Expected invalid env to fall back to 10, got %d", cfg.FoodScore)
	}
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvCells, "30")

	cfg, err := Load("snake", []string{"-cells", "12", "-seed", "99", "-debug"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Cells != 12 {
		t.Errorf("Expected flag to win with 12 cells, got %d", cfg.Cells)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}

	gc := cfg.GameConfig()
	if gc.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", gc.Seed)
	}
	if gc.Grid.Cells != 12 || gc.Grid.CellSize != 40 {
		t.Errorf("unexpected grid %+v", gc.Grid)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero cell size", []string{"-cell", "0"}},
		{"tiny grid", []string{"-cells", "1"}},
		{"zero tick", []string{"-tick", "0s"}},
		{"snake too long", []string{"-cells", "4", "-length", "4"}},
		{"negative score", []string{"-food-score", "-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load("snake", tc.args); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadBadFlag(t *testing.T) {
	if _, err := Load("snake", []string{"-nope"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
