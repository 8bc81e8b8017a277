package core

// TextAlign is the horizontal anchor of drawn text relative to x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of drawn text relative to y.
type TextBaseline int

const (
	BaselineAlphabetic TextBaseline = iota // y is the glyph baseline
	BaselineTop                            // y is the top of the line box
)

// Font describes the face used for a piece of text.
type Font struct {
	Size float64 // Pixel height of the em box
	Bold bool
	Mono bool
}

// Canvas is a 2D pixel drawing surface. Games draw through it so the same
// render code works on the Ebitengine window and on the cell-based terminal.
type Canvas interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)

	// Clear fills the whole surface.
	Clear(c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// FillText draws a single line of text anchored at (x, y).
	FillText(s string, x, y float64, f Font, align TextAlign, base TextBaseline, c Color)

	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string, f Font) float64
}
