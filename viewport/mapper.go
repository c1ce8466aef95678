package viewport

// Mapper keeps the current presentation of a fixed logical resolution and maps
// pointer positions between window and logical space. It holds no state that
// outlives a resize: every Recompute replaces the layout wholesale.
type Mapper struct {
	logicalW int
	logicalH int
	layout   Layout
	rendered Rect
}

// NewMapper creates a mapper for a logicalW x logicalH screen, initially laid
// out in a window of exactly that size.
func NewMapper(logicalW, logicalH int) *Mapper {
	m := &Mapper{logicalW: logicalW, logicalH: logicalH}
	m.Recompute(float64(logicalW), float64(logicalH))
	return m
}

// LogicalSize returns the fixed logical resolution.
func (m *Mapper) LogicalSize() (int, int) {
	return m.logicalW, m.logicalH
}

// Recompute lays the logical screen out in a window of the given size and
// makes the resulting box the rendered box. Call it on every window resize.
func (m *Mapper) Recompute(windowW, windowH float64) Layout {
	m.layout = Compute(m.logicalW, m.logicalH, windowW, windowH)
	m.rendered = m.layout.Box
	return m.layout
}

// Layout returns the result of the last Recompute.
func (m *Mapper) Layout() Layout {
	return m.layout
}

// Scale returns the current integer display scale.
func (m *Mapper) Scale() int {
	return m.layout.Scale
}

// SetRenderedBox overrides the box the logical screen is drawn into, for
// hosts that constrain the presentation beyond the computed layout. It lasts
// until the next Recompute.
func (m *Mapper) SetRenderedBox(r Rect) {
	m.rendered = r
}

// RenderedBox returns the box the logical screen is drawn into.
func (m *Mapper) RenderedBox() Rect {
	return m.rendered
}

// ScreenToLogical maps a window position to logical coordinates using the
// rendered box, not the nominal scale.
func (m *Mapper) ScreenToLogical(sx, sy float64) (float64, float64) {
	return ScreenToLogical(m.rendered, m.logicalW, m.logicalH, sx, sy)
}

// LogicalToScreen maps a logical position to window coordinates.
func (m *Mapper) LogicalToScreen(lx, ly float64) (float64, float64) {
	return LogicalToScreen(m.rendered, m.logicalW, m.logicalH, lx, ly)
}

// Contains reports whether a window position falls on the logical screen.
func (m *Mapper) Contains(sx, sy float64) bool {
	return m.rendered.Contains(sx, sy)
}
