package game

import (
	"io"
	"time"

	"snake-infinity/game/entity"
	"snake-infinity/game/manager"
	"snake-infinity/game/types"

	"github.com/charmbracelet/log"
)

// Config holds the tunable rules of a game.
type Config struct {
	Grid          types.Grid
	TickInterval  time.Duration
	FoodScore     int
	InitialLength int
	Capacity      int // 0 means one segment per cell
	Seed          uint64
}

// DefaultConfig returns the classic 20×20 board with 40px cells.
func DefaultConfig() Config {
	return Config{
		Grid:          types.Grid{CellSize: types.DefaultCellSize, Cells: types.DefaultCells},
		TickInterval:  manager.DefaultTickInterval,
		FoodScore:     types.DefaultFoodScore,
		InitialLength: types.DefaultInitialLength,
		Seed:          uint64(time.Now().UnixNano()),
	}
}

// Input is what a frontend read from its devices during one frame.
type Input struct {
	Direction types.Point // zero when no direction key is held
	Mouse     types.Point
	Click     bool
}

// Events reports what happened during one Update.
type Events struct {
	Started   bool
	Restarted bool
	Ate       bool
	Died      bool
	Score     int
	Length    int
}

// Game owns every piece of mutable state of a session.
type Game struct {
	Grid          types.Grid
	Snake         *entity.Snake
	Food          *entity.Food
	StartButton   types.Rect
	RestartButton types.Rect

	cfg          Config
	screens      *manager.ScreenManager
	gate         *manager.TickGate
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	logger       *log.Logger
	startedAt    time.Time
}

// NewGame builds a game on the start screen. A nil logger discards output.
func NewGame(cfg Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = cfg.Grid.Area()
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		Grid:         cfg.Grid,
		cfg:          cfg,
		screens:      manager.NewScreenManager(logger),
		gate:         manager.NewTickGate(cfg.TickInterval),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, cfg.FoodScore, cfg.Seed, collisionMgr),
		logger:       logger,
	}

	// Buttons default to a cell-sized square in the middle until a frontend
	// sizes them from its textures.
	g.StartButton = cfg.Grid.CenteredRect(cfg.Grid.CellSize, cfg.Grid.CellSize)
	g.RestartButton = g.StartButton

	g.Reset()
	return g
}

// Reset puts the snake and food back to their initial values.
func (g *Game) Reset() {
	cells := g.Grid.Cells
	head := g.Grid.Cell(cells/2, cells/2-(g.cfg.InitialLength-1))
	g.Snake = entity.NewSnake(g.Grid, head, g.cfg.InitialLength, g.cfg.Capacity)
	g.Food = g.foodMgr.NewFood(g.Snake)
	g.logger.Debug("food spawned", "pos", g.Food.Position)
}

func (g *Game) Screen() types.Screen {
	return g.screens.Current()
}

func (g *Game) Config() Config {
	return g.cfg
}

// StartedAt returns when the current round entered the playing screen.
func (g *Game) StartedAt() time.Time {
	return g.startedAt
}

// Update runs one frame of game logic.
func (g *Game) Update(in Input, now time.Time) Events {
	var ev Events

	switch g.screens.Current() {
	case types.ScreenStart:
		if in.Click && g.StartButton.Contains(in.Mouse) {
			g.play(now)
			ev.Started = true
		}

	case types.ScreenPlaying:
		g.Snake.SetDirection(in.Direction)
		if g.gate.Ready(now) {
			ev = g.Tick()
		}

	case types.ScreenGameOver:
		if in.Click && g.RestartButton.Contains(in.Mouse) {
			g.Reset()
			g.play(now)
			ev.Restarted = true
		}
	}

	ev.Score = g.Snake.Score
	ev.Length = g.Snake.Len()
	return ev
}

// Tick performs one movement step: move, wrap, eat, then check for a bite.
func (g *Game) Tick() Events {
	var ev Events
	if g.screens.Current() != types.ScreenPlaying {
		return ev
	}

	g.Snake.Move()
	g.collisionMgr.WrapEdge(g.Snake)

	if g.foodMgr.TryEat(g.Snake, g.Food) {
		ev.Ate = true
		g.logger.Debug("food spawned", "pos", g.Food.Position, "visible", g.Food.Visible)
	}

	if g.collisionMgr.IsSelfCollision(g.Snake) {
		if err := g.screens.Transition(types.ScreenGameOver); err != nil {
			g.logger.Error("game over", "err", err)
		}
		ev.Died = true
	}

	ev.Score = g.Snake.Score
	ev.Length = g.Snake.Len()
	return ev
}

func (g *Game) play(now time.Time) {
	if err := g.screens.Transition(types.ScreenPlaying); err != nil {
		g.logger.Error("start round", "err", err)
		return
	}
	g.gate.Reset(now)
	g.startedAt = now
}
