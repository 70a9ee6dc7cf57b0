package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	got := Inset(image.Rect(0, 0, 96, 96), 16)
	if got != image.Rect(16, 16, 80, 80) {
		t.Errorf("unexpected inset: %v", got)
	}
	if Inset(image.Rect(0, 0, 10, 10), 0) != image.Rect(0, 0, 10, 10) {
		t.Error("zero padding should return rect unchanged")
	}
	// Over-inset flips and gets normalized.
	if r := Inset(image.Rect(0, 0, 10, 10), 8); r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		t.Errorf("inset not normalized: %v", r)
	}
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 20, 100), 30)
	if top != image.Rect(0, 0, 20, 30) || bottom != image.Rect(0, 30, 20, 100) {
		t.Errorf("unexpected split: %v %v", top, bottom)
	}
	top, bottom = SplitHorizontal(image.Rect(0, 0, 20, 100), 500)
	if top.Dy() != 100 || !bottom.Empty() {
		t.Errorf("split should clamp: %v %v", top, bottom)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns(image.Rect(10, 0, 200, 50), []int{48, 72}, 8)
	if cols[0] != image.Rect(10, 0, 58, 50) {
		t.Errorf("first column: %v", cols[0])
	}
	if cols[1] != image.Rect(66, 0, 138, 50) {
		t.Errorf("second column: %v", cols[1])
	}
	cols = Columns(image.Rect(0, 0, 50, 10), []int{40, 40}, 20)
	if !cols[1].Empty() {
		t.Errorf("overflowing column should be empty: %v", cols[1])
	}
}

func TestCenterIn(t *testing.T) {
	got := CenterIn(image.Rect(0, 0, 100, 50), 20, 10)
	if got != image.Rect(40, 20, 60, 30) {
		t.Errorf("unexpected center: %v", got)
	}
	if got := CenterIn(image.Rect(0, 0, 10, 10), 40, 40); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("oversize should clamp to rect: %v", got)
	}
}

func TestFitScale(t *testing.T) {
	got := FitScale(image.Rect(0, 0, 1920, 1080), image.Pt(400, 200))
	if got != image.Rect(0, 60, 1920, 1020) {
		t.Errorf("wide fit: %v", got)
	}
	got = FitScale(image.Rect(0, 0, 100, 100), image.Pt(50, 100))
	if got != image.Rect(25, 0, 75, 100) {
		t.Errorf("tall fit: %v", got)
	}
	if !FitScale(image.Rect(0, 0, 10, 10), image.Pt(0, 5)).Empty() {
		t.Error("degenerate size should give empty rect")
	}
}
