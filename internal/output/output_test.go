package output

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/planner-app/launchericons/internal/density"
)

var xhdpi = density.Density{Name: "xhdpi", Size: 96}

func TestPath(t *testing.T) {
	got := Path("res", xhdpi, Square)
	if got != filepath.Join("res", "mipmap-xhdpi", "ic_launcher.png") {
		t.Errorf("unexpected square path %s", got)
	}
	got = Path("res", xhdpi, Round)
	if got != filepath.Join("res", "mipmap-xhdpi", "ic_launcher_round.png") {
		t.Errorf("unexpected round path %s", got)
	}
}

func TestWriteMissingDir(t *testing.T) {
	w := NewWriter(t.TempDir())
	_, err := w.Write(xhdpi, Square, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !errors.Is(err, ErrMissingDir) {
		t.Fatalf("expected ErrMissingDir, got %v", err)
	}
}

func TestWriteCreateDirs(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "res"))
	w.CreateDirs = true
	path, err := w.Write(xhdpi, Round, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestWriteDirIsFile(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "mipmap-xhdpi"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(base)
	w.CreateDirs = true
	if _, err := w.Write(xhdpi, Square, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error when the mipmap path is a file")
	}
}

func TestWriteOverwrites(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "mipmap-xhdpi"), 0o755); err != nil {
		t.Fatal(err)
	}
	w := NewWriter(base)

	first := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if _, err := w.Write(xhdpi, Square, first); err != nil {
		t.Fatal(err)
	}
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))
	second.Set(0, 0, color.RGBA{R: 1, A: 255})
	path, err := w.Write(xhdpi, Square, second)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("expected overwritten 2x2 file, got %dx%d", cfg.Width, cfg.Height)
	}
	entries, err := os.ReadDir(filepath.Join(base, "mipmap-xhdpi"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file after rewrite, got %d", len(entries))
	}
}

func TestVariantString(t *testing.T) {
	if Square.String() != "square" || Round.String() != "round" {
		t.Error("unexpected variant names")
	}
}
