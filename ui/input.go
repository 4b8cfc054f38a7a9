package ui

import (
	"snake-infinity/game"
	"snake-infinity/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// directionKeys maps arrow keys to unit directions. Later entries win when
// several keys are held.
var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyLeft, types.Point{X: -1, Y: 0}},
	{rl.KeyRight, types.Point{X: 1, Y: 0}},
	{rl.KeyUp, types.Point{X: 0, Y: -1}},
	{rl.KeyDown, types.Point{X: 0, Y: 1}},
}

// PollInput reads keyboard and mouse state for the current frame.
func PollInput(cellSize int) game.Input {
	var in game.Input
	for _, k := range directionKeys {
		if rl.IsKeyDown(k.key) {
			in.Direction = types.Point{X: k.dir.X * cellSize, Y: k.dir.Y * cellSize}
		}
	}

	mouse := rl.GetMousePosition()
	in.Mouse = types.Point{X: int(mouse.X), Y: int(mouse.Y)}
	in.Click = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	return in
}
