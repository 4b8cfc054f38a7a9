package assets

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedButtons(t *testing.T) {
	for _, name := range []string{PlayButton, RestartButton} {
		t.Run(name, func(t *testing.T) {
			data, err := Read("", name)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
				t.Errorf("Expected 200x200, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestReadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PlayButton), []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := Read(dir, PlayButton)
	if err != nil || string(data) != "custom" {
		t.Fatalf("Expected custom asset, got %q (%v)", data, err)
	}

	if _, err := Read(dir, RestartButton); err == nil {
		t.Error("Expected error for missing asset")
	}
	if _, err := Read("", "missing.png"); err == nil {
		t.Error("Expected error for missing embedded asset")
	}
}
