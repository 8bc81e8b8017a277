package core

import (
	"strings"
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer. The terminal platform rasterizes the
// pixel canvas into it and the renderer turns it into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	bg     Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		bg:     ColorBlack,
	}
	s.allocate()
	s.Clear(s.bg)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen as a cell rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions. Content is discarded; callers
// redraw every frame.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(s.bg)
}

// Clear fills the entire screen with blank cells of the given background.
func (s *Screen) Clear(bg Color) {
	s.bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: ColorWhite, BG: bg}
		}
	}
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: ColorWhite, BG: s.bg}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// Paint sets the background of a cell and blanks its glyph.
func (s *Screen) Paint(x, y int, bg Color) {
	s.SetCell(x, y, Cell{Rune: ' ', FG: ColorWhite, BG: bg})
}

// FillRect paints every cell of r with the background color.
func (s *Screen) FillRect(r Rect, bg Color) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Paint(x, y, bg)
		}
	}
}

// DrawText writes a string horizontally starting at (x, y), keeping the
// background already present under each character.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		c := s.GetCell(x+i, y)
		s.SetCell(x+i, y, Cell{Rune: r, FG: fg, BG: c.BG})
		i++
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
