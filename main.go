package main

import (
	"flag"
	"os"
	"time"

	"snake-infinity/audio"
	"snake-infinity/config"
	"snake-infinity/game"
	"snake-infinity/session"
	"snake-infinity/stats"
	"snake-infinity/ui"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Fatal("invalid configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	grid := cfg.Grid()
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	rl.InitWindow(int32(grid.Span()), int32(grid.Span()), "Snake 🐍")
	defer rl.CloseWindow()

	start, restart, err := ui.LoadButtons(cfg.AssetsDir, grid)
	if err != nil {
		logger.Fatal("load assets", "err", err)
	}
	defer start.Unload()
	defer restart.Unload()

	g := game.NewGame(cfg.GameConfig(), logger)
	g.StartButton = start.Bounds
	g.RestartButton = restart.Bounds

	st, err := stats.Load(cfg.StatsFile)
	if err != nil {
		logger.Error("load stats, starting fresh", "file", cfg.StatsFile, "err", err)
		st = stats.New()
	}

	sess := session.New(g, st, newPlayer(cfg, logger), logger)
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Error("save stats", "err", err)
		}
	}()

	renderer := ui.NewRenderer(grid, ui.DefaultPalette(), start, restart)
	logger.Info("window open", "span", grid.Span(), "tick", cfg.TickInterval, "seed", g.Config().Seed)

	for !rl.WindowShouldClose() {
		sess.Step(ui.PollInput(grid.CellSize), time.Now())
		renderer.Draw(g, sess.Best())
	}

	logger.Info("bye", "games", st.GamesPlayed(), "best", st.HighScore())
}

// newPlayer opens the speaker when sound is enabled. Audio failures leave the
// game silent.
func newPlayer(cfg *config.Config, logger *log.Logger) audio.Player {
	if !cfg.Sound {
		return audio.Nop{}
	}
	p, err := audio.NewBeep(audio.DefaultSampleRate)
	if err != nil {
		logger.Error("audio disabled", "err", err)
		return audio.Nop{}
	}
	return p
}
