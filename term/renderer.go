package term

import (
	"fmt"

	"snake-infinity/game"
	"snake-infinity/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	PlayLabel    = "[ PLAY ]"
	RestartLabel = "[ RESTART ]"
)

// Canvas is the subset of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Palette holds the terminal styles.
type Palette struct {
	Background tcell.Style
	Snake      tcell.Style
	Food       tcell.Style
	Text       tcell.Style
	Border     tcell.Style
	Button     tcell.Style
}

func DefaultPalette() Palette {
	bg := tcell.NewRGBColor(236, 243, 158)
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	return Palette{
		Background: base,
		Snake:      base.Foreground(tcell.NewRGBColor(79, 119, 45)),
		Food:       base.Foreground(tcell.NewRGBColor(19, 42, 19)),
		Text:       base,
		Border:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(79, 119, 45)),
		Button:     base.Background(tcell.NewRGBColor(79, 119, 45)).Foreground(bg).Bold(true),
	}
}

type Renderer struct {
	canvas  Canvas
	layout  Layout
	palette Palette
}

func NewRenderer(canvas Canvas, grid types.Grid, palette Palette) *Renderer {
	return &Renderer{
		canvas:  canvas,
		layout:  Layout{Grid: grid, OriginX: 1, OriginY: 1},
		palette: palette,
	}
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// Buttons returns the pixel bounds of the play and restart labels.
func (r *Renderer) Buttons() (start, restart types.Rect) {
	y := r.layout.ButtonY()
	return r.layout.LabelRect(PlayLabel, y), r.layout.LabelRect(RestartLabel, y)
}

// Draw renders one frame for the game's current screen.
func (r *Renderer) Draw(g *game.Game, best int) {
	r.canvas.Clear()
	r.drawFrame()

	span := g.Grid.Span()
	switch g.Screen() {
	case types.ScreenStart:
		r.text("START GAME", span-300, r.palette.Text)
		r.text(PlayLabel, r.layout.ButtonY(), r.palette.Button)

	case types.ScreenPlaying:
		for _, p := range g.Snake.Body {
			r.cell(p, '█', r.palette.Snake)
		}
		if g.Food.Visible {
			r.cell(g.Food.Position, '▒', r.palette.Food)
		}
		r.status(fmt.Sprintf(" Score: %d ", g.Snake.Score))

	case types.ScreenGameOver:
		r.text(fmt.Sprintf("Your score: %d", g.Snake.Score), 250, r.palette.Text)
		r.text(fmt.Sprintf("Best: %d", best), 285, r.palette.Text)
		r.text("GAME OVER", span-300, r.palette.Text)
		r.text("Press restart button to play again", span-260, r.palette.Text)
		r.text(RestartLabel, r.layout.ButtonY(), r.palette.Button)
	}

	r.canvas.Show()
}

// drawFrame fills the grid background and draws a border around it.
func (r *Renderer) drawFrame() {
	l := r.layout
	x0, y0 := l.OriginX-1, l.OriginY-1
	x1, y1 := l.OriginX+l.Width(), l.OriginY+l.Height()

	for y := l.OriginY; y < y1; y++ {
		for x := l.OriginX; x < x1; x++ {
			r.canvas.SetContent(x, y, ' ', nil, r.palette.Background)
		}
	}
	for x := x0 + 1; x < x1; x++ {
		r.canvas.SetContent(x, y0, tcell.RuneHLine, nil, r.palette.Border)
		r.canvas.SetContent(x, y1, tcell.RuneHLine, nil, r.palette.Border)
	}
	for y := y0 + 1; y < y1; y++ {
		r.canvas.SetContent(x0, y, tcell.RuneVLine, nil, r.palette.Border)
		r.canvas.SetContent(x1, y, tcell.RuneVLine, nil, r.palette.Border)
	}
	r.canvas.SetContent(x0, y0, tcell.RuneULCorner, nil, r.palette.Border)
	r.canvas.SetContent(x1, y0, tcell.RuneURCorner, nil, r.palette.Border)
	r.canvas.SetContent(x0, y1, tcell.RuneLLCorner, nil, r.palette.Border)
	r.canvas.SetContent(x1, y1, tcell.RuneLRCorner, nil, r.palette.Border)
}

// cell fills both columns of a grid cell.
func (r *Renderer) cell(p types.Point, ch rune, style tcell.Style) {
	col, row := r.layout.CellAt(p)
	r.canvas.SetContent(col, row, ch, nil, style)
	r.canvas.SetContent(col+1, row, ch, nil, style)
}

func (r *Renderer) text(s string, py int, style tcell.Style) {
	col, row := r.layout.Label(s, py)
	r.put(col, row, s, style)
}

// status writes s into the bottom border.
func (r *Renderer) status(s string) {
	r.put(r.layout.OriginX+1, r.layout.OriginY+r.layout.Height(), s, r.palette.Border)
}

func (r *Renderer) put(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.canvas.SetContent(col, row, ch, nil, style)
		col++
	}
}
