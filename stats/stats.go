// Package stats keeps the results of finished rounds.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxRecords is the number of individual games kept. Older games only survive
// in the running totals.
const MaxRecords = 100

// GameRecord is one finished round.
type GameRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
}

// Duration returns how long the round lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// totals survive trimming of Games.
type totals struct {
	GamesPlayed   int     `json:"gamesPlayed"`
	TotalScore    int     `json:"totalScore"`
	TotalDuration float64 `json:"totalDuration"` // seconds
	HighScore     int     `json:"highScore"`
}

type fileFormat struct {
	totals
	Games []GameRecord `json:"games"`
}

// GameStats holds recent records and running totals. The zero value is not
// usable; call New or Load.
type GameStats struct {
	SessionID string

	games  []GameRecord
	totals totals
	path   string
	mutex  sync.RWMutex
}

// New returns empty in-memory stats.
func New() *GameStats {
	return &GameStats{
		SessionID: uuid.New().String(),
		games:     make([]GameRecord, 0),
	}
}

// Load reads stats from path. A missing file yields empty stats that will be
// written to path on Save. An empty path keeps everything in memory.
func Load(path string) (*GameStats, error) {
	s := New()
	s.path = path
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "read stats")
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "decode stats %s", path)
	}
	s.totals = f.totals
	if f.Games != nil {
		s.games = f.Games
	}
	return s, nil
}

// AddGame records a finished round and returns the stored record.
func (s *GameStats) AddGame(score, length int, startTime, endTime time.Time) GameRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec := GameRecord{
		ID:        uuid.New().String(),
		SessionID: s.SessionID,
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
		Length:    length,
	}
	s.games = append(s.games, rec)
	if len(s.games) > MaxRecords {
		s.games = append(s.games[:0], s.games[len(s.games)-MaxRecords:]...)
	}

	s.totals.GamesPlayed++
	s.totals.TotalScore += score
	s.totals.TotalDuration += rec.Duration().Seconds()
	if score > s.totals.HighScore {
		s.totals.HighScore = score
	}
	return rec
}

// Games returns a copy of the recent records, oldest first.
func (s *GameStats) Games() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

func (s *GameStats) HighScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.totals.HighScore
}

func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.totals.GamesPlayed
}

// AverageScore returns the mean score over every game ever recorded.
func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.totals.GamesPlayed == 0 {
		return 0
	}
	return float64(s.totals.TotalScore) / float64(s.totals.GamesPlayed)
}

// AverageDuration returns the mean round length.
func (s *GameStats) AverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.totals.GamesPlayed == 0 {
		return 0
	}
	secs := s.totals.TotalDuration / float64(s.totals.GamesPlayed)
	return time.Duration(secs * float64(time.Second))
}

// Save writes the stats to the path given to Load. It is a no-op for in-memory stats.
func (s *GameStats) Save() error {
	if s.path == "" {
		return nil
	}

	s.mutex.RLock()
	data, err := json.MarshalIndent(fileFormat{totals: s.totals, Games: s.games}, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create stats directory")
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "write stats")
	}
	return nil
}
