package ui

import (
	"fmt"
	"image/color"

	"snake-infinity/game"
	"snake-infinity/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize       = 25
	snakeRoundness = 0.5
	foodRoundness  = 1
	roundSegments  = 6
)

// Palette holds the colours used on every screen.
type Palette struct {
	Background color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
	Text       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: rl.NewColor(236, 243, 158, 255),
		Snake:      rl.NewColor(79, 119, 45, 255),
		Food:       rl.NewColor(19, 42, 19, 255),
		Text:       rl.Black,
	}
}

type Renderer struct {
	palette Palette
	grid    types.Grid
	start   *Button
	restart *Button
}

func NewRenderer(grid types.Grid, palette Palette, start, restart *Button) *Renderer {
	return &Renderer{
		palette: palette,
		grid:    grid,
		start:   start,
		restart: restart,
	}
}

// Draw renders one frame for the game's current screen. best is the session high score.
func (r *Renderer) Draw(g *game.Game, best int) {
	rl.BeginDrawing()
	rl.ClearBackground(r.palette.Background)

	switch g.Screen() {
	case types.ScreenStart:
		r.drawStart()
	case types.ScreenPlaying:
		r.drawSnake(g)
		r.drawFood(g)
	case types.ScreenGameOver:
		r.drawGameOver(g, best)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawStart() {
	span := int32(r.grid.Span())
	r.centeredText("START GAME", span-300)
	r.start.Draw()
}

func (r *Renderer) drawGameOver(g *game.Game, best int) {
	span := int32(r.grid.Span())
	score := fmt.Sprintf("Your score: %d", g.Snake.Score)
	// Centred on a fixed-width label so the line does not jump as the score grows.
	rl.DrawText(score, span/2-rl.MeasureText("Your score:   ", fontSize)/2, 250, fontSize, r.palette.Text)
	r.centeredText(fmt.Sprintf("Best: %d", best), 285)
	r.centeredText("GAME OVER", span-300)
	r.centeredText("Press restart button to play again", span-260)
	r.restart.Draw()
}

func (r *Renderer) drawSnake(g *game.Game) {
	size := float32(r.grid.CellSize)
	for _, p := range g.Snake.Body {
		seg := rl.NewRectangle(float32(p.X), float32(p.Y), size, size)
		rl.DrawRectangleRounded(seg, snakeRoundness, roundSegments, r.palette.Snake)
	}
}

func (r *Renderer) drawFood(g *game.Game) {
	if !g.Food.Visible {
		return
	}
	size := float32(r.grid.CellSize)
	rec := rl.NewRectangle(float32(g.Food.Position.X), float32(g.Food.Position.Y), size, size)
	rl.DrawRectangleRounded(rec, foodRoundness, roundSegments, r.palette.Food)
}

func (r *Renderer) centeredText(text string, y int32) {
	x := int32(r.grid.Span())/2 - rl.MeasureText(text, fontSize)/2
	rl.DrawText(text, x, y, fontSize, r.palette.Text)
}
