package viewport

import (
	"math"
	"testing"
)

const (
	testW = 600
	testH = 400
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeScale(t *testing.T) {
	cases := []struct {
		name  string
		w, h  float64
		scale int
		box   Rect
	}{
		{"exact", 600, 400, 1, Rect{0, 0, 600, 400}},
		{"full_hd", 1920, 1080, 2, Rect{360, 140, 1200, 800}},
		{"4k", 3840, 2160, 5, Rect{420, 80, 3000, 2000}},
		{"wide_letterbox", 3000, 800, 2, Rect{900, 0, 1200, 800}},
		{"tall_letterbox", 1200, 3000, 2, Rect{0, 1100, 1200, 800}},
		{"just_below_two", 1199, 799, 1, Rect{299, 199, 600, 400}},
		{"tiny_window", 300, 200, 1, Rect{-150, -100, 600, 400}},
		{"zero_window", 0, 0, 1, Rect{-300, -200, 600, 400}},
		{"negative_window", -50, -50, 1, Rect{-325, -225, 600, 400}},
		{"odd_leftover_floors", 601, 401, 1, Rect{0, 0, 600, 400}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := Compute(testW, testH, c.w, c.h)
			if l.Scale != c.scale {
				t.Fatalf("expected scale %d, got %d", c.scale, l.Scale)
			}
			if l.Box != c.box {
				t.Fatalf("expected box %+v, got %+v", c.box, l.Box)
			}
			if l.LogicalW != testW || l.LogicalH != testH {
				t.Fatalf("logical size not carried: %dx%d", l.LogicalW, l.LogicalH)
			}
		})
	}
}

func TestComputeScaleNeverBelowOne(t *testing.T) {
	sizes := []float64{math.Inf(-1), -1e9, -1, 0, 0.5, 1, 599, 600, 601, 1e6, math.Inf(1), math.NaN()}
	for _, w := range sizes {
		for _, h := range sizes {
			if s := Compute(testW, testH, w, h).Scale; s < 1 {
				t.Fatalf("window %vx%v gave scale %d", w, h, s)
			}
		}
	}
}

func TestComputeScaleClampsHugeWindows(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
		want int
	}{
		{"huge", 1e15, 1e15, math.MaxInt32},
		{"infinite", math.Inf(1), math.Inf(1), math.MaxInt32},
		{"one_axis_huge", 1e15, 800, 2},
		{"nan", math.NaN(), 800, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Compute(testW, testH, c.w, c.h).Scale; got != c.want {
				t.Fatalf("window %vx%v: expected scale %d, got %d", c.w, c.h, c.want, got)
			}
		})
	}
}

func TestComputeScaleFloorsFit(t *testing.T) {
	for w := testW; w <= 4*testW; w += 37 {
		for h := testH; h <= 4*testH; h += 29 {
			want := int(math.Floor(math.Min(float64(w)/testW, float64(h)/testH)))
			if got := Compute(testW, testH, float64(w), float64(h)).Scale; got != want {
				t.Fatalf("window %dx%d: expected scale %d, got %d", w, h, want, got)
			}
		}
	}
}

func TestScreenToLogicalCorners(t *testing.T) {
	boxes := []Rect{
		Compute(testW, testH, 1920, 1080).Box,
		Compute(testW, testH, 300, 200).Box,
		// a box squeezed by an outer constraint, not a multiple of the scale
		{X: 13.5, Y: 7.25, W: 917, H: 611},
	}

	for _, box := range boxes {
		x, y := ScreenToLogical(box, testW, testH, box.X, box.Y)
		if !near(x, 0) || !near(y, 0) {
			t.Fatalf("box %+v: top-left mapped to (%v, %v)", box, x, y)
		}
		x, y = ScreenToLogical(box, testW, testH, box.X+box.W, box.Y+box.H)
		if !near(x, testW) || !near(y, testH) {
			t.Fatalf("box %+v: bottom-right mapped to (%v, %v)", box, x, y)
		}

		sx, sy := LogicalToScreen(box, testW, testH, 150, 100)
		lx, ly := ScreenToLogical(box, testW, testH, sx, sy)
		if !near(lx, 150) || !near(ly, 100) {
			t.Fatalf("box %+v: round trip gave (%v, %v)", box, lx, ly)
		}
	}
}

func TestScreenToLogicalEmptyBox(t *testing.T) {
	x, y := ScreenToLogical(Rect{X: 10, Y: 20}, testW, testH, 15, 30)
	if x != 5 || y != 10 {
		t.Fatalf("expected offset-only mapping, got (%v, %v)", x, y)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29.9, 19.9, true},
		{30, 15, false},
		{15, 20, false},
		{9.9, 15, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
