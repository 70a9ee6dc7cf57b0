package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sync"

	"github.com/planner-app/launchericons/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Sheet colors and spacing.
var (
	Background = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	LabelColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}

	PaddingPx  = 16
	GapPx      = 16
	LabelPt    = 12.0
	labelGapPx = 6
)

// Entry is one density column of the contact sheet.
type Entry struct {
	Name   string
	Square image.Image
	Round  image.Image
}

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

// LabelFace returns the Go Regular face used for labels, or basicfont when it
// cannot be parsed. The error reports why the fallback was used.
func LabelFace() (font.Face, error) {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			face, faceErr = basicfont.Face7x13, fmt.Errorf("parse label font: %w", err)
			return
		}
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: LabelPt, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			face, faceErr = basicfont.Face7x13, fmt.Errorf("create label face: %w", err)
			return
		}
		face = f
	})
	return face, faceErr
}

// Sheet lays the icons out in columns: square on top, round below, density
// name underneath.
func Sheet(entries []Entry) *image.RGBA {
	face, _ := LabelFace()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	labelHeight := labelGapPx + ascent + metrics.Descent.Ceil()

	widths := make([]int, len(entries))
	iconHeight := 0
	for i, e := range entries {
		sq, rd := sizeOf(e.Square), sizeOf(e.Round)
		widths[i] = max(sq.X, rd.X, font.MeasureString(face, e.Name).Ceil())
		iconHeight = max(iconHeight, sq.Y, rd.Y)
	}

	width := 2 * PaddingPx
	for i, w := range widths {
		if i > 0 {
			width += GapPx
		}
		width += w
	}
	height := 2*PaddingPx + 2*iconHeight + GapPx + labelHeight
	if len(entries) == 0 {
		height = 2 * PaddingPx
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	columns := layout.Columns(layout.Inset(sheet.Bounds(), PaddingPx), widths, GapPx)
	for i, e := range entries {
		top, rest := layout.SplitHorizontal(columns[i], iconHeight)
		_, rest = layout.SplitHorizontal(rest, GapPx)
		bottom, label := layout.SplitHorizontal(rest, iconHeight)
		drawCentered(sheet, top, e.Square)
		drawCentered(sheet, bottom, e.Round)
		drawLabel(sheet, label, e.Name, face, labelGapPx+ascent)
	}
	return sheet
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func sizeOf(img image.Image) image.Point {
	if img == nil {
		return image.Point{}
	}
	return img.Bounds().Size()
}

func drawCentered(dst draw.Image, area image.Rectangle, img image.Image) {
	if img == nil {
		return
	}
	size := img.Bounds().Size()
	rect := layout.CenterIn(area, size.X, size.Y)
	draw.Draw(dst, rect, img, img.Bounds().Min, draw.Over)
}

func drawLabel(dst draw.Image, area image.Rectangle, text string, face font.Face, baselineOffset int) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	x := area.Min.X + (area.Dx()-textWidth)/2
	drawer.Dot = fixed.P(x, area.Min.Y+baselineOffset)
	drawer.DrawString(text)
}
