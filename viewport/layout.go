package viewport

import "math"

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Contains reports whether the point lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Layout is the presentation of a fixed logical resolution inside a window.
type Layout struct {
	LogicalW int
	LogicalH int
	// Scale is the whole number of window pixels per logical pixel, at least 1.
	Scale int
	// Box is where the scaled logical screen sits in the window.
	Box Rect
}

// Compute fits a logicalW x logicalH screen into a window at the largest whole
// scale that fits both axes, never below 1 and capped at math.MaxInt32, and
// centers it. When the window is smaller than the logical screen the box
// overflows it evenly on each side. The box origin is floored so every logical pixel covers whole window pixels.
func Compute(logicalW, logicalH int, windowW, windowH float64) Layout {
	scale := 1
	if logicalW > 0 && logicalH > 0 {
		fit := math.Floor(math.Min(windowW/float64(logicalW), windowH/float64(logicalH)))
		switch {
		case fit > math.MaxInt32:
			scale = math.MaxInt32
		case fit >= 1:
			scale = int(fit)
		}
	}

	w := float64(logicalW * scale)
	h := float64(logicalH * scale)
	return Layout{
		LogicalW: logicalW,
		LogicalH: logicalH,
		Scale:    scale,
		Box: Rect{
			X: centerOffset(windowW, w),
			Y: centerOffset(windowH, h),
			W: w,
			H: h,
		},
	}
}

func centerOffset(outer, inner float64) float64 {
	if math.IsNaN(outer) || math.IsInf(outer, 0) {
		return 0
	}
	return math.Floor((outer - inner) / 2)
}

// ScreenToLogical maps a window position into logical coordinates through the
// box the logical screen is actually rendered in. An empty box maps by offset
// only.
func ScreenToLogical(box Rect, logicalW, logicalH int, sx, sy float64) (float64, float64) {
	if box.Empty() {
		return sx - box.X, sy - box.Y
	}
	return (sx - box.X) * (float64(logicalW) / box.W), (sy - box.Y) * (float64(logicalH) / box.H)
}

// LogicalToScreen is the inverse of ScreenToLogical.
func LogicalToScreen(box Rect, logicalW, logicalH int, lx, ly float64) (float64, float64) {
	if box.Empty() || logicalW <= 0 || logicalH <= 0 {
		return lx + box.X, ly + box.Y
	}
	return box.X + lx*(box.W/float64(logicalW)), box.Y + ly*(box.H/float64(logicalH))
}
