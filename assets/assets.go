// Package assets provides the button images, embedded in the binary.
package assets

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	PlayButton    = "play.png"
	RestartButton = "restart.png"
)

//go:embed play.png restart.png
var files embed.FS

// Read returns the named asset from dir, or the embedded copy when dir is empty.
func Read(dir, name string) ([]byte, error) {
	if dir == "" {
		data, err := files.ReadFile(name)
		return data, errors.Wrapf(err, "embedded asset %s", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	return data, errors.Wrapf(err, "asset %s", name)
}
