package core

import "strconv"

// Viewport is the size of the drawing surface in pixels. Platforms refresh
// it every frame from the window layout or terminal size.
type Viewport struct {
	W, H int
}

// Width returns the viewport width in pixels.
func (v Viewport) Width() int {
	return v.W
}

// Height returns the viewport height in pixels.
func (v Viewport) Height() int {
	return v.H
}

// WidthString returns the width formatted as a decimal string.
func (v Viewport) WidthString() string {
	return strconv.Itoa(v.W)
}

// HeightString returns the height formatted as a decimal string.
func (v Viewport) HeightString() string {
	return strconv.Itoa(v.H)
}

// Bounds returns the full viewport as a pixel box.
func (v Viewport) Bounds() Bounds {
	return Bounds{MaxX: float64(v.W), MaxY: float64(v.H)}
}
