// Package session connects a running game to the things that outlive a
// round: statistics and sound.
package session

import (
	"io"
	"time"

	"snake-infinity/audio"
	"snake-infinity/game"
	"snake-infinity/stats"

	"github.com/charmbracelet/log"
)

type Session struct {
	Game   *game.Game
	Stats  *stats.GameStats
	Player audio.Player

	logger *log.Logger
}

func New(g *game.Game, st *stats.GameStats, player audio.Player, logger *log.Logger) *Session {
	if player == nil {
		player = audio.Nop{}
	}
	if st == nil {
		st = stats.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{Game: g, Stats: st, Player: player, logger: logger}
}

// Step runs one frame of the game and reacts to what happened in it.
func (s *Session) Step(in game.Input, now time.Time) game.Events {
	ev := s.Game.Update(in, now)
	s.Handle(ev, now)
	return ev
}

// Handle records finished rounds and plays the matching sounds.
func (s *Session) Handle(ev game.Events, now time.Time) {
	switch {
	case ev.Started, ev.Restarted:
		s.logger.Info("round started", "session", s.Stats.SessionID)
	}

	if ev.Ate {
		s.Player.Eat()
		s.logger.Debug("food eaten", "score", ev.Score, "length", ev.Length)
	}

	if ev.Died {
		s.Player.GameOver()
		rec := s.Stats.AddGame(ev.Score, ev.Length, s.Game.StartedAt(), now)
		s.logger.Info("game over",
			"score", rec.Score,
			"length", rec.Length,
			"duration", rec.Duration().Round(time.Millisecond),
			"best", s.Stats.HighScore())
		if err := s.Stats.Save(); err != nil {
			s.logger.Error("save stats", "err", err)
		}
	}
}

// Best returns the highest score recorded so far.
func (s *Session) Best() int {
	return s.Stats.HighScore()
}

// Close flushes the stats and releases the audio device.
func (s *Session) Close() error {
	s.Player.Close()
	return s.Stats.Save()
}
