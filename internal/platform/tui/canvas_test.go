package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flagrun/internal/core"
)

var testFont = core.Font{Size: 24, Bold: true}

func newTestCanvas(cols, rows int) (*CellCanvas, *core.Screen) {
	s := core.NewScreen(cols, rows)
	return NewCellCanvas(s), s
}

func TestCellCanvasSize(t *testing.T) {
	c, _ := newTestCanvas(10, 4)
	w, h := c.Size()
	if w != 80 || h != 64 {
		t.Errorf("Size() = %dx%d, expected 80x64", w, h)
	}
}

func TestCellCanvasFillRect(t *testing.T) {
	c, s := newTestCanvas(10, 4)
	c.FillRect(0, 0, 16, 16, core.ColorRed)

	tests := []struct {
		x, y int
		red  bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 0, false},
		{0, 1, false},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y).BG == core.ColorRed; got != tc.red {
			t.Errorf("cell (%d,%d) red = %v, expected %v", tc.x, tc.y, got, tc.red)
		}
	}
}

func TestCellCanvasFillRectClips(t *testing.T) {
	c, s := newTestCanvas(4, 2)
	c.FillRect(-100, -100, 1000, 1000, core.ColorRed)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).BG != core.ColorRed {
				t.Fatalf("cell (%d,%d) not painted", x, y)
			}
		}
	}
}

func TestCellCanvasFillCircle(t *testing.T) {
	c, s := newTestCanvas(10, 4)
	c.FillCircle(40, 24, 10, core.ColorRed)

	// Cell centers at x=36 and x=44 on row 1 are 4px from the center
	for _, x := range []int{4, 5} {
		if s.GetCell(x, 1).BG != core.ColorRed {
			t.Errorf("cell (%d,1) not painted", x)
		}
	}
	for _, p := range [][2]int{{3, 1}, {6, 1}, {5, 0}, {5, 2}} {
		if s.GetCell(p[0], p[1]).BG == core.ColorRed {
			t.Errorf("cell (%d,%d) painted outside the circle", p[0], p[1])
		}
	}
}

func TestCellCanvasTinyCircleVisible(t *testing.T) {
	c, s := newTestCanvas(10, 4)
	// No cell center within 1px, the center cell still shows it
	c.FillCircle(17, 17, 1, core.ColorRed)

	if s.GetCell(2, 1).BG != core.ColorRed {
		t.Error("cell under the center not painted")
	}
}

func TestCellCanvasFillText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		x, y  float64
		align core.TextAlign
		base  core.TextBaseline
		col   int
		row   int
	}{
		{"left top", "Hi", 16, 0, core.AlignLeft, core.BaselineTop, 2, 0},
		{"center", "abcd", 40, 20, core.AlignCenter, core.BaselineTop, 3, 1},
		{"right", "ab", 80, 0, core.AlignRight, core.BaselineTop, 8, 0},
		{"alphabetic", "x", 0, 32, core.AlignLeft, core.BaselineAlphabetic, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, s := newTestCanvas(10, 4)
			c.FillText(tc.text, tc.x, tc.y, testFont, tc.align, tc.base, core.ColorWhite)

			row := s.Row(tc.row)
			if got := row[tc.col : tc.col+len(tc.text)]; got != tc.text {
				t.Errorf("row %d = %q, expected %q at column %d", tc.row, row, tc.text, tc.col)
			}
		})
	}
}

func TestCellCanvasTextKeepsBackground(t *testing.T) {
	c, s := newTestCanvas(10, 2)
	c.FillRect(0, 0, 80, 32, core.ColorRed)
	c.FillText("ok", 0, 0, testFont, core.AlignLeft, core.BaselineTop, core.ColorWhite)

	cell := s.GetCell(0, 0)
	if cell.Rune != 'o' || cell.FG != core.ColorWhite || cell.BG != core.ColorRed {
		t.Errorf("cell = %+v", cell)
	}
}

func TestCellCanvasBlendsTranslucentText(t *testing.T) {
	c, s := newTestCanvas(10, 2)
	c.Clear(core.ColorBlack)
	c.FillText("d", 0, 0, testFont, core.AlignLeft, core.BaselineTop, core.MustParseHex("#ffffff50"))

	want := core.Color{R: 80, G: 80, B: 80, A: 0xff}
	if got := s.GetCell(0, 0).FG; got != want {
		t.Errorf("FG = %v, expected %v", got, want)
	}
}

func TestCellCanvasMeasureText(t *testing.T) {
	c, _ := newTestCanvas(1, 1)
	if got := c.MeasureText("Score: 10", testFont); got != 72 {
		t.Errorf("MeasureText = %v, expected 72", got)
	}
	if got := c.MeasureText("←→", testFont); got != 16 {
		t.Errorf("MeasureText counts runes, got %v", got)
	}
}

func TestRenderScreenText(t *testing.T) {
	c, s := newTestCanvas(6, 2)
	c.Clear(core.MustParseHex("#23252c"))
	c.FillText("Score", 0, 0, testFont, core.AlignLeft, core.BaselineTop, core.ColorWhite)

	out := RenderScreen(s)
	if !strings.Contains(out, "Score") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
