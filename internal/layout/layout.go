package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Columns cuts rect into columns of the given widths, left to right, separated by gapPx.
// Columns that would start past the right edge come back empty.
func Columns(rect image.Rectangle, widthsPx []int, gapPx int) []image.Rectangle {
	rect = Normalize(rect)
	out := make([]image.Rectangle, len(widthsPx))
	x := rect.Min.X
	for i, w := range widthsPx {
		x0 := clamp(x, rect.Min.X, rect.Max.X)
		x1 := clamp(x+w, rect.Min.X, rect.Max.X)
		out[i] = image.Rect(x0, rect.Min.Y, x1, rect.Max.Y)
		x += w + gapPx
	}
	return out
}

// CenterIn returns a widthPx x heightPx rectangle centered in rect.
// The size is clamped to rect.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitScale returns the largest rectangle with the aspect ratio of size that fits
// in rect, centered.
func FitScale(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	w := rect.Dx()
	h := size.Y * w / size.X
	if h > rect.Dy() {
		h = rect.Dy()
		w = size.X * h / size.Y
	}
	return CenterIn(rect, w, h)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
