package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/planner-app/launchericons/internal/density"
)

var ErrMissingDir = errors.New("output directory does not exist")

// Variant selects which launcher icon file is written.
type Variant int

const (
	Square Variant = iota
	Round
)

func (v Variant) FileName() string {
	if v == Round {
		return "ic_launcher_round.png"
	}
	return "ic_launcher.png"
}

func (v Variant) String() string {
	if v == Round {
		return "round"
	}
	return "square"
}

// Dir returns the resource directory for a density, e.g. res/mipmap-xhdpi.
func Dir(base string, d density.Density) string {
	return filepath.Join(base, "mipmap-"+d.Name)
}

// Path returns {base}/mipmap-{density}/{file}.
func Path(base string, d density.Density, v Variant) string {
	return filepath.Join(Dir(base, d), v.FileName())
}

// Writer saves icons below Base, overwriting existing files.
type Writer struct {
	Base string
	// CreateDirs creates missing mipmap directories. When false a missing
	// directory is an error.
	CreateDirs  bool
	Compression png.CompressionLevel
}

func NewWriter(base string) *Writer {
	return &Writer{Base: base, Compression: png.DefaultCompression}
}

// Write encodes img as PNG to the density/variant path and returns that path.
func (w *Writer) Write(d density.Density, v Variant, img image.Image) (string, error) {
	dir := Dir(w.Base, d)
	if err := w.ensureDir(dir); err != nil {
		return "", err
	}
	path := Path(w.Base, d, v)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	enc := png.Encoder{CompressionLevel: w.Compression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func (w *Writer) ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s is not a directory", dir)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !w.CreateDirs {
		return fmt.Errorf("%w: %s", ErrMissingDir, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	return nil
}
