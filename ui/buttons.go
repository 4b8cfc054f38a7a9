package ui

import (
	"snake-infinity/assets"
	"snake-infinity/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// Button is a texture drawn centred on the grid.
type Button struct {
	Texture rl.Texture2D
	Bounds  types.Rect
}

// LoadButton decodes the named PNG, scales it to half size and uploads it.
// A window must be open.
func LoadButton(dir, name string, grid types.Grid) (*Button, error) {
	data, err := assets.Read(dir, name)
	if err != nil {
		return nil, err
	}

	img := rl.LoadImageFromMemory(".png", data, int32(len(data)))
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, errors.Errorf("decode %s", name)
	}
	defer rl.UnloadImage(img)

	rl.ImageResize(img, img.Width/2, img.Height/2)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return nil, errors.Errorf("upload texture %s", name)
	}

	return &Button{
		Texture: tex,
		Bounds:  grid.CenteredRect(int(tex.Width), int(tex.Height)),
	}, nil
}

// LoadButtons loads the play and restart buttons.
func LoadButtons(dir string, grid types.Grid) (start, restart *Button, err error) {
	start, err = LoadButton(dir, assets.PlayButton, grid)
	if err != nil {
		return nil, nil, errors.Wrap(err, "start button")
	}
	restart, err = LoadButton(dir, assets.RestartButton, grid)
	if err != nil {
		start.Unload()
		return nil, nil, errors.Wrap(err, "restart button")
	}
	return start, restart, nil
}

func (b *Button) Draw() {
	rl.DrawTexture(b.Texture, int32(b.Bounds.X), int32(b.Bounds.Y), rl.White)
}

func (b *Button) Unload() {
	rl.UnloadTexture(b.Texture)
}
