package icon

import (
	"errors"
	"fmt"
	"image"

	"github.com/planner-app/launchericons/internal/layout"
)

var ErrInvalidSize = errors.New("icon size must be positive")

const minStroke = 2

// Geometry holds the integer layout of one icon. Every field is derived from
// Size with integer division, so the same size always gives the same drawing.
type Geometry struct {
	Size   int
	Margin int
	Box    int // side of the white badge
	Radius int // badge corner radius
	Stroke int // checkmark stroke width

	// Check holds the checkmark vertices: start of the short leg, the joint,
	// end of the long leg.
	Check [3]image.Point
}

func NewGeometry(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, fmt.Errorf("%w (got %d)", ErrInvalidSize, size)
	}
	margin := size / 6
	box := size - 2*margin
	g := Geometry{
		Size:   size,
		Margin: margin,
		Box:    box,
		Radius: size / 10,
		Stroke: max(minStroke, size/24),
		Check: [3]image.Point{
			{X: margin + box/3, Y: margin + box/2},
			{X: margin + box/2, Y: margin + 3*box/4},
			{X: margin + 5*box/6, Y: margin + box/3},
		},
	}
	return g, nil
}

// Bounds is the full canvas.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Size, g.Size)
}

// BadgeRect is the canvas inset by the margin on every side.
func (g Geometry) BadgeRect() image.Rectangle {
	return layout.Inset(g.Bounds(), g.Margin)
}
