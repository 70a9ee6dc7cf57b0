package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/planner-app/launchericons/internal/layout"
	xdraw "golang.org/x/image/draw"
)

var ErrDisplayUnsupported = errors.New("framebuffer display is only supported on linux")

// Fit scales img to the largest aspect-preserving rectangle centered in a
// screen of the given size, on the sheet background.
func Fit(img image.Image, screen image.Point) *image.RGBA {
	canvas := image.NewRGBA(image.Rectangle{Max: screen})
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	dst := layout.FitScale(canvas.Bounds(), img.Bounds().Size())
	if !dst.Empty() {
		xdraw.NearestNeighbor.Scale(canvas, dst, img, img.Bounds(), xdraw.Over, nil)
	}
	return canvas
}

// blit copies canvas onto dst pixel by pixel, forcing full opacity.
func blit(dst draw.Image, canvas *image.RGBA) {
	bounds := dst.Bounds()
	cb := canvas.Bounds()
	for y := 0; y < bounds.Dy() && y < cb.Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < cb.Dx(); x++ {
			pixel := canvas.RGBAAt(cb.Min.X+x, cb.Min.Y+y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
