// Command snake-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"snake-infinity/audio"
	"snake-infinity/config"
	"snake-infinity/game"
	"snake-infinity/session"
	"snake-infinity/stats"
	"snake-infinity/term"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// The terminal is busy drawing, so debug logs go to a file.
const logFile = "snake-term.log"

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("snake-term", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*log.Logger, func()) {
	if !cfg.Debug {
		return log.New(io.Discard), func() {}
	}
	path := filepath.Join(os.TempDir(), logFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-term",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

func run(cfg *config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	grid := cfg.Grid()
	renderer := term.NewRenderer(screen, grid, term.DefaultPalette())
	if w, h := screen.Size(); w < renderer.Layout().Width()+2 || h < renderer.Layout().Height()+2 {
		logger.Warn("terminal too small", "width", w, "height", h)
	}

	g := game.NewGame(cfg.GameConfig(), logger)
	g.StartButton, g.RestartButton = renderer.Buttons()

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

	input := term.NewInputReader(renderer.Layout())

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TargetFPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			input.Handle(ev)
			if input.Quit() {
				logger.Info("quit", "games", st.GamesPlayed(), "best", st.HighScore())
				return nil
			}

		case now := <-ticker.C:
			sess.Step(input.Frame(g), now)
			renderer.Draw(g, sess.Best())
		}
	}
}

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
