// Package core provides fundamental types and utilities for the flagrun
// platform. It has no external dependencies so game logic stays pure and
// testable; platforms adapt these types to Ebitengine or Bubble Tea.
package core

// Rect is an integer axis-aligned rectangle, used for screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlap of r and other (possibly empty).
func (r Rect) Intersect(other Rect) Rect {
	x0 := Max(r.X, other.X)
	y0 := Max(r.Y, other.Y)
	x1 := Min(r.Right(), other.Right())
	y1 := Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Bounds is a floating-point box in pixel space with inclusive edges.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Inset returns the box shrunk by pad on every side.
func (b Bounds) Inset(pad float64) Bounds {
	return Bounds{
		MinX: b.MinX + pad,
		MinY: b.MinY + pad,
		MaxX: b.MaxX - pad,
		MaxY: b.MaxY - pad,
	}
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains reports whether (x, y) lies within the box, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp pulls (x, y) into the box. The low edge is applied before the high
// edge, so a box narrower than zero resolves to its max edge.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return ClampF(x, b.MinX, b.MaxX), ClampF(y, b.MinY, b.MaxY)
}

// InRange reports whether start <= n < end. When end is less than start the
// two are swapped first.
func InRange(n, start, end float64) bool {
	if end < start {
		start, end = end, start
	}
	return n >= start && n < end
}

// ClampF restricts a float64 value to be within [min, max]. The low bound
// is checked first, so max wins when max < min.
func ClampF(val, min, max float64) float64 {
	if val < min {
		val = min
	}
	if val > max {
		val = max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
