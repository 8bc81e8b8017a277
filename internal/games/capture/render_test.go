package capture

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/flagrun/internal/config"
	"github.com/vovakirdan/flagrun/internal/core"
)

type drawOp struct {
	kind  string // clear, rect, circle, text
	x, y  float64
	w, h  float64
	r     float64
	text  string
	font  core.Font
	align core.TextAlign
	base  core.TextBaseline
	color core.Color
}

// recordingCanvas keeps every draw call. Glyphs are half as wide as the
// font size.
type recordingCanvas struct {
	w, h int
	ops  []drawOp
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) Clear(col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "clear", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "circle", x: cx, y: cy, r: r, color: col})
}

func (c *recordingCanvas) FillText(s string, x, y float64, f core.Font, align core.TextAlign, base core.TextBaseline, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", text: s, x: x, y: y, font: f, align: align, base: base, color: col})
}

func (c *recordingCanvas) MeasureText(s string, f core.Font) float64 {
	return float64(len(s)) * f.Size / 2
}

func (c *recordingCanvas) text(s string) (drawOp, bool) {
	for _, op := range c.ops {
		if op.kind == "text" && op.text == s {
			return op, true
		}
	}
	return drawOp{}, false
}

func (c *recordingCanvas) circles() []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == "circle" {
			out = append(out, op)
		}
	}
	return out
}

func render(g *Game, w, h int) *recordingCanvas {
	c := &recordingCanvas{w: w, h: h}
	g.Render(c)
	return c
}

func TestRenderFirstFrame(t *testing.T) {
	g := newTestGame(t, config.VariantExtended, 800, 600)
	place(g, 100, 100, 200, 300)
	g.Step(core.NewInputFrame())

	c := render(g, 800, 600)
	colors := config.DefaultCaptureConfig().Colors()

	if len(c.ops) < 2 {
		t.Fatalf("expected background ops, got %d", len(c.ops))
	}
	if c.ops[0].kind != "clear" || c.ops[0].color != colors.Page {
		t.Errorf("first op = %+v, expected page clear", c.ops[0])
	}
	arena := c.ops[1]
	if arena.kind != "rect" || arena.x != 20 || arena.y != 20 || arena.w != 760 || arena.h != 560 || arena.color != colors.Background {
		t.Errorf("arena op = %+v", arena)
	}

	score, ok := c.text("Score: 0")
	if !ok {
		t.Fatal("score not drawn")
	}
	if score.x != 400 || score.y != 25 || score.align != core.AlignCenter || score.base != core.BaselineTop {
		t.Errorf("score op = %+v", score)
	}
	if score.color != core.HSVToRGB(.005, .4, 1) {
		t.Errorf("score color = %v", score.color)
	}

	// Emphasis marker is drawn at the full radius before the first decay
	you, ok := c.text("You")
	if !ok {
		t.Fatal("emphasis label not drawn")
	}
	if you.x != 150.5 || you.y != 150.5 || you.color != colors.Emphasis {
		t.Errorf("label op = %+v", you)
	}
	circles := c.circles()
	if len(circles) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(circles))
	}
	if p := circles[0]; p.x != 100 || p.y != 100 || p.r != 50 || p.color != colors.Emphasis {
		t.Errorf("player circle = %+v", p)
	}
	if f := circles[1]; f.x != 200 || f.y != 300 || f.r != 10 || f.color != core.HSVToRGB(.01, 1, 1) {
		t.Errorf("flag circle = %+v", f)
	}

	hint, ok := c.text(flagHint)
	if !ok {
		t.Fatal("flag hint not drawn")
	}
	if hint.x != 215 || hint.y != 310 || hint.align != core.AlignLeft {
		t.Errorf("flag hint op = %+v", hint)
	}

	move, ok := c.text(moveHint)
	if !ok {
		t.Fatal("move hint not drawn")
	}
	if move.x != 30 || move.y != 565 || move.base != core.BaselineAlphabetic {
		t.Errorf("move hint op = %+v", move)
	}

	if _, ok := c.text(autoBanner); ok {
		t.Error("auto banner drawn without auto mode")
	}
}

func TestRenderDrawOrder(t *testing.T) {
	g := newTestGame(t, config.VariantExtended, 800, 600)
	place(g, 100, 100, 200, 300)
	g.Step(core.NewInputFrame())

	c := render(g, 800, 600)
	var order []string
	for _, op := range c.ops {
		if op.kind == "text" {
			order = append(order, op.text)
		} else {
			order = append(order, op.kind)
		}
	}
	expected := []string{"clear", "rect", "Score: 0", "You", "circle", flagHint, "circle", moveHint}
	if fmt.Sprint(order) != fmt.Sprint(expected) {
		t.Errorf("draw order = %q, expected %q", order, expected)
	}
}

func TestRenderFlagHintFlipsNearRightEdge(t *testing.T) {
	g := newTestGame(t, config.VariantExtended, 800, 600)
	// 29 glyphs at 12 px overflow the arena from x=700
	place(g, 100, 100, 700, 300)
	g.Step(core.NewInputFrame())

	c := render(g, 800, 600)
	hint, ok := c.text(flagHint)
	if !ok {
		t.Fatal("flag hint not drawn")
	}
	if hint.x != 690 || hint.y != 310 || hint.align != core.AlignRight {
		t.Errorf("flag hint op = %+v", hint)
	}
	if hint.color != core.HSVToRGB(.01, 1, .7) {
		t.Errorf("flag hint color = %v", hint.color)
	}
}

func TestRenderSteadyPlayer(t *testing.T) {
	g := newTestGame(t, config.VariantExtended, 800, 600)
	place(g, 100, 100, 600, 400)
	for i := 0; i < 31; i++ {
		g.Step(core.NewInputFrame())
	}

	c := render(g, 800, 600)
	hue := g.view.player.Hue
	p := c.circles()[0]
	if p.r != 10 || p.color != core.HSVToRGB(hue, .25, 1) {
		t.Errorf("player circle = %+v", p)
	}
	you, ok := c.text("You")
	if !ok {
		t.Fatal("label should stay until the first capture")
	}
	if you.x != 110 || you.y != 110 {
		t.Errorf("label op = %+v", you)
	}
}

func TestRenderAfterCapture(t *testing.T) {
	g := newTestGame(t, config.VariantExtended, 800, 600)
	place(g, 100, 100, 600, 400)
	for i := 0; i < 31; i++ {
		g.Step(core.NewInputFrame())
	}
	place(g, 300, 300, 300, 300)
	g.Step(core.NewInputFrame()) // captures after the view is taken
	g.Step(core.NewInputFrame())

	c := render(g, 800, 600)
	if _, ok := c.text("Score: 1"); !ok {
		t.Error("score not updated")
	}
	if _, ok := c.text("You"); ok {
		t.Error("label should disappear after a capture")
	}
	if _, ok := c.text(flagHint); ok {
		t.Error("flag hint should disappear after a capture")
	}
}

func TestRenderHints(t *testing.T) {
	tests := []struct {
		name     string
		moved    bool
		captures int
		want     string
	}{
		{"fresh", false, 0, moveHint},
		{"captured without moving", false, 2, moveHint},
		{"moved", true, 0, speedHint},
		{"moved and captured", true, 1, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, config.VariantExtended, 800, 600)
			place(g, 100, 100, 600, 400)
			g.player.Moved = tc.moved
			g.flag.Captures = tc.captures
			g.Step(core.NewInputFrame())

			c := render(g, 800, 600)
			_, hasMove := c.text(moveHint)
			_, hasSpeed := c.text(speedHint)
			if hasMove != (tc.want == moveHint) || hasSpeed != (tc.want == speedHint) {
				t.Errorf("move hint %v, speed hint %v, expected %q", hasMove, hasSpeed, tc.want)
			}
		})
	}
}

func TestRenderAutoNotice(t *testing.T) {
	t.Run("extended", func(t *testing.T) {
		g := newTestGame(t, config.VariantExtended, 800, 600)
		place(g, 100, 100, 600, 400)
		g.Step(frame(core.ActionAutoMode))

		c := render(g, 800, 600)
		banner, ok := c.text(autoBanner)
		if !ok {
			t.Fatal("auto banner not drawn")
		}
		if banner.x != 400 || banner.y != 565 || banner.align != core.AlignCenter {
			t.Errorf("banner op = %+v", banner)
		}
		hide, ok := c.text(autoHideHint)
		if !ok {
			t.Fatal("hide hint not drawn")
		}
		if hide.y != 580 || hide.font.Size != 16 {
			t.Errorf("hide hint op = %+v", hide)
		}

		g.Step(frame(core.ActionHideAutoHint))
		c = render(g, 800, 600)
		if _, ok := c.text(autoBanner); ok {
			t.Error("banner should be hidden after U")
		}
	})

	t.Run("classic", func(t *testing.T) {
		g := newTestGame(t, config.VariantClassic, 800, 600)
		place(g, 100, 100, 600, 400)
		g.Step(frame(core.ActionAutoMode))

		c := render(g, 800, 600)
		if _, ok := c.text(autoBanner); !ok {
			t.Error("auto banner not drawn")
		}
		if _, ok := c.text(autoHideHint); ok {
			t.Error("classic rules have no hide key")
		}
	})
}

func TestRenderDebugOverlay(t *testing.T) {
	g := NewWithConfig(config.VariantExtended, config.DefaultCaptureConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 1, Debug: true})
	place(g, 100, 100, 600, 400)
	g.Step(frame(core.ActionRight))

	const want = `{"x":100,"y":100,"em":true,"moved":false,"speed":3,"auto":false,"up":false,"down":false,"left":false,"right":true}`
	if got := g.DebugJSON(); got != want {
		t.Errorf("DebugJSON() = %s\nexpected      %s", got, want)
	}

	c := render(g, 800, 600)
	dump, ok := c.text(want)
	if !ok {
		t.Fatal("debug dump not drawn")
	}
	if dump.x != 775 || dump.y != 25 || dump.align != core.AlignRight || !dump.font.Mono {
		t.Errorf("dump op = %+v", dump)
	}
	if dump.color != core.MustParseHex("#ffffff50") {
		t.Errorf("dump color = %v", dump.color)
	}
	notice, ok := c.text(debugNotice)
	if !ok {
		t.Fatal("debug notice not drawn")
	}
	if notice.y != 40 {
		t.Errorf("notice y = %v, expected 40", notice.y)
	}

	score, _ := c.text("Score: 0")
	if score.x != 25 || score.align != core.AlignLeft {
		t.Errorf("debug score op = %+v", score)
	}
}
