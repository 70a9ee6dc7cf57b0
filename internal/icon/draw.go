package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// DrawSquare renders the opaque launcher icon: pink field, white rounded badge,
// pink checkmark.
func DrawSquare(size int) (*image.RGBA, error) {
	g, err := NewGeometry(size)
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(g.Bounds())
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Field}, image.Point{}, draw.Src)
	fillRoundedRect(canvas, g.BadgeRect(), g.Radius, Badge)
	strokeCheck(canvas, g, Glyph)
	return canvas, nil
}

// DrawRound renders the square icon and cuts it to the inscribed circle.
// Pixels outside the circle are fully transparent.
func DrawRound(size int) (*image.NRGBA, error) {
	square, err := DrawSquare(size)
	if err != nil {
		return nil, err
	}
	mask := InscribedCircleMask(size)
	out := image.NewNRGBA(square.Bounds())
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, mask, image.Point{}, draw.Src)
	return out, nil
}

// InscribedCircleMask returns an alpha mask that is opaque inside the circle
// touching all four canvas edges and transparent outside it.
func InscribedCircleMask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 {
		return mask
	}
	half := float32(size) / 2
	z := vector.NewRasterizer(size, size)
	addEllipse(z, half, half, half, half)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func fillRoundedRect(dst draw.Image, rect image.Rectangle, radius int, c color.Color) {
	if rect.Empty() {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	x0, y0 := float32(rect.Min.X-b.Min.X), float32(rect.Min.Y-b.Min.Y)
	x1, y1 := x0+float32(rect.Dx()), y0+float32(rect.Dy())
	r := float32(min(radius, rect.Dx()/2, rect.Dy()/2))
	if r <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	} else {
		k := kappa * r
		z.MoveTo(x0+r, y0)
		z.LineTo(x1-r, y0)
		z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
		z.LineTo(x1, y1-r)
		z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
		z.LineTo(x0+r, y1)
		z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
		z.LineTo(x0, y0+r)
		z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func addEllipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	kx, ky := kappa*rx, kappa*ry
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

// strokeCheck strokes both checkmark legs as separate butt-capped segments
// through the pixel centers of the vertices.
func strokeCheck(dst *image.RGBA, g Geometry, c color.Color) {
	b := dst.Bounds()
	r := raster.NewRasterizer(b.Dx(), b.Dy())
	r.UseNonZeroWinding = true

	var path raster.Path
	path.Start(pixelCenter(g.Check[0]))
	path.Add1(pixelCenter(g.Check[1]))
	path.Start(pixelCenter(g.Check[1]))
	path.Add1(pixelCenter(g.Check[2]))
	r.AddStroke(path, fixed.I(g.Stroke), raster.ButtCapper, raster.BevelJoiner)

	painter := raster.NewRGBAPainter(dst)
	painter.SetColor(c)
	r.Rasterize(painter)
}

func pixelCenter(p image.Point) fixed.Point26_6 {
	const half = fixed.Int26_6(32)
	return fixed.Point26_6{X: fixed.I(p.X) + half, Y: fixed.I(p.Y) + half}
}
