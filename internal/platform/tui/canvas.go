package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flagrun/internal/core"
)

// Pixel size of one terminal cell. Games keep drawing in pixels and the
// canvas maps them onto the cell grid.
const (
	CellWidth  = 8
	CellHeight = 16
)

// CellCanvas rasterizes pixel drawing onto a core.Screen.
// A cell takes a shape's color when its center lies inside the shape;
// text is laid out one rune per cell regardless of font size.
type CellCanvas struct {
	screen *core.Screen
}

// NewCellCanvas wraps a screen buffer.
func NewCellCanvas(s *core.Screen) *CellCanvas {
	return &CellCanvas{screen: s}
}

// PixelSize converts a terminal size in cells into canvas pixels.
func PixelSize(cols, rows int) (w, h int) {
	return cols * CellWidth, rows * CellHeight
}

// Size returns the canvas size in pixels.
func (c *CellCanvas) Size() (int, int) {
	return PixelSize(c.screen.Width(), c.screen.Height())
}

// Clear fills every cell with c.
func (c *CellCanvas) Clear(col core.Color) {
	c.screen.Clear(blend(core.ColorBlack, col))
}

// FillRect paints cells whose centers fall inside the rectangle.
func (c *CellCanvas) FillRect(x, y, w, h float64, col core.Color) {
	x0, x1 := cellSpan(x, x+w, CellWidth)
	y0, y1 := cellSpan(y, y+h, CellHeight)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.paint(cx, cy, col)
		}
	}
}

// FillCircle paints cells whose centers fall inside the circle. The cell
// under the center is always painted so small circles stay visible.
func (c *CellCanvas) FillCircle(px, py, r float64, col core.Color) {
	x0, x1 := cellSpan(px-r, px+r, CellWidth)
	y0, y1 := cellSpan(py-r, py+r, CellHeight)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			mx, my := cellCenter(cx, cy)
			if dx, dy := mx-px, my-py; dx*dx+dy*dy <= r*r {
				c.paint(cx, cy, col)
			}
		}
	}
	if r > 0 {
		c.paint(int(math.Floor(px/CellWidth)), int(math.Floor(py/CellHeight)), col)
	}
}

// FillText writes s on the row holding its anchor, keeping the background
// of the cells underneath.
func (c *CellCanvas) FillText(s string, x, y float64, f core.Font, align core.TextAlign, base core.TextBaseline, col core.Color) {
	w := c.MeasureText(s, f)
	switch align {
	case core.AlignCenter:
		x -= w / 2
	case core.AlignRight:
		x -= w
	}

	var row int
	switch base {
	case core.BaselineTop:
		row = int(math.Floor(y / CellHeight))
	default:
		// The glyphs sit above an alphabetic baseline
		row = int(math.Floor((y - 1) / CellHeight))
	}

	start := int(math.Round(x / CellWidth))
	i := 0
	for _, r := range s {
		cell := c.screen.GetCell(start+i, row)
		c.screen.SetCell(start+i, row, core.Cell{Rune: r, FG: blend(cell.BG, col), BG: cell.BG})
		i++
	}
}

// MeasureText returns one cell width per rune.
func (c *CellCanvas) MeasureText(s string, _ core.Font) float64 {
	return float64(utf8.RuneCountInString(s) * CellWidth)
}

func (c *CellCanvas) paint(x, y int, col core.Color) {
	under := c.screen.GetCell(x, y)
	c.screen.Paint(x, y, blend(under.BG, col))
}

// cellSpan returns the half-open range of cells whose centers lie in
// [lo, hi).
func cellSpan(lo, hi float64, size int) (int, int) {
	s := float64(size)
	first := int(math.Ceil(lo/s - .5))
	last := int(math.Ceil(hi/s - .5))
	return first, last
}

func cellCenter(cx, cy int) (float64, float64) {
	return float64(cx*CellWidth) + CellWidth/2, float64(cy*CellHeight) + CellHeight/2
}

// blend composites src over an opaque dst.
func blend(dst, src core.Color) core.Color {
	if src.A == 0xff {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return core.Color{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 0xff,
	}
}
