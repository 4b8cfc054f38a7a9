package term

import (
	"snake-infinity/game"
	"snake-infinity/game/types"

	"github.com/gdamore/tcell/v2"
)

// InputReader folds tcell events into one game.Input per frame.
type InputReader struct {
	layout  Layout
	frame   game.Input
	enter   bool
	pressed bool
	quit    bool
}

func NewInputReader(layout Layout) *InputReader {
	return &InputReader{layout: layout}
}

// Handle records a single terminal event.
func (ir *InputReader) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		ir.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		ir.HandleMouse(col, row, ev.Buttons())
	}
}

// HandleMouse records the pointer position. A click is a press of the
// primary button after it was released.
func (ir *InputReader) HandleMouse(col, row int, buttons tcell.ButtonMask) {
	ir.frame.Mouse = ir.layout.PixelAt(col, row)
	down := buttons&tcell.Button1 != 0
	if down && !ir.pressed {
		ir.frame.Click = true
	}
	ir.pressed = down
}

func (ir *InputReader) HandleKey(key tcell.Key, ch rune) {
	cell := ir.layout.Grid.CellSize
	switch key {
	case tcell.KeyLeft:
		ir.frame.Direction = types.Point{X: -cell}
	case tcell.KeyRight:
		ir.frame.Direction = types.Point{X: cell}
	case tcell.KeyUp:
		ir.frame.Direction = types.Point{Y: -cell}
	case tcell.KeyDown:
		ir.frame.Direction = types.Point{Y: cell}
	case tcell.KeyEnter:
		ir.enter = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ir.quit = true
	case tcell.KeyRune:
		if ch == 'q' || ch == 'Q' {
			ir.quit = true
		}
	}
}

// Quit reports whether the player asked to leave.
func (ir *InputReader) Quit() bool {
	return ir.quit
}

// Frame returns the input collected since the last call. Enter clicks the
// button of the current screen.
func (ir *InputReader) Frame(g *game.Game) game.Input {
	in := ir.frame
	if ir.enter {
		var r types.Rect
		switch g.Screen() {
		case types.ScreenStart:
			r = g.StartButton
		case types.ScreenGameOver:
			r = g.RestartButton
		}
		if r.W > 0 {
			in.Click = true
			in.Mouse = types.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
		}
	}

	ir.frame = game.Input{Mouse: in.Mouse}
	ir.enter = false
	return in
}
