package capture

import (
	"fmt"

	"github.com/vovakirdan/flagrun/internal/core"
)

const (
	flagHint      = "This is the flag. Capture it!"
	moveHint      = "Move with the arrow keys or WASD"
	speedHint     = "The more flags you get, the faster you move"
	autoBanner    = "Auto mode"
	autoHideHint  = "Press U to hide"
	debugNotice   = "Debug Mode may slow down your game slightly"
	youLabel      = "You"
	scoreTemplate = "Score: %d"
)

var debugColor = core.MustParseHex("#ffffff50")

// Render draws the current game state onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	v := g.view

	g.drawBackground(dst, v)
	g.drawScore(dst, v)
	g.drawPlayer(dst, v)
	g.drawFlag(dst, v)
	g.drawHint(dst, v)
	g.drawAutoNotice(dst, v)
	if g.debug {
		g.drawDebug(dst, v)
	}
}

func (g *Game) heading() core.Font {
	return core.Font{Size: g.cfg.Text.Heading, Bold: true}
}

func (g *Game) padding() float64 {
	return float64(g.cfg.Arena.Padding)
}

func (g *Game) drawBackground(dst core.Canvas, v frameView) {
	pad := g.padding()
	w, h := float64(v.viewport.W), float64(v.viewport.H)

	dst.Clear(g.colors.Page)
	dst.FillRect(pad, pad, w-pad*2, h-pad*2, g.colors.Background)
}

func (g *Game) drawScore(dst core.Canvas, v frameView) {
	pad := g.padding()
	text := fmt.Sprintf(scoreTemplate, v.flag.Captures)
	col := core.HSVToRGB(v.player.Hue, .4, 1)

	x, align := float64(v.viewport.W)/2, core.AlignCenter
	if g.debug {
		// Top left leaves the top right to the debug overlay
		x, align = pad+5, core.AlignLeft
	}
	dst.FillText(text, x, pad+5, g.heading(), align, core.BaselineTop, col)
}

func (g *Game) drawPlayer(dst core.Canvas, v frameView) {
	p := v.player
	if p.Emphasized {
		r := p.EmphasisRadius
		dst.FillText(youLabel, p.X+r+.5, p.Y+r+.5, g.heading(), core.AlignLeft, core.BaselineTop, g.colors.Emphasis)
		dst.FillCircle(p.X, p.Y, r, g.colors.Emphasis)
		return
	}

	r := g.cfg.Player.Radius
	col := core.HSVToRGB(p.Hue, .25, 1)
	if v.flag.Captures < 1 {
		dst.FillText(youLabel, p.X+r, p.Y+r, g.heading(), core.AlignLeft, core.BaselineTop, col)
	}
	dst.FillCircle(p.X, p.Y, r, col)
}

func (g *Game) drawFlag(dst core.Canvas, v frameView) {
	f := v.flag
	r := g.cfg.Flag.Radius

	if f.Captures == 0 {
		hintCol := core.HSVToRGB(f.Hue, 1, .7)
		width := dst.MeasureText(flagHint, g.heading())
		if f.X+width+r > float64(v.viewport.W)-g.padding() {
			dst.FillText(flagHint, f.X-r, f.Y+r, g.heading(), core.AlignRight, core.BaselineTop, hintCol)
		} else {
			dst.FillText(flagHint, f.X+r+5, f.Y+r, g.heading(), core.AlignLeft, core.BaselineTop, hintCol)
		}
	}
	dst.FillCircle(f.X, f.Y, r, core.HSVToRGB(f.Hue, 1, 1))
}

func (g *Game) drawHint(dst core.Canvas, v frameView) {
	if v.player.Moved && v.flag.Captures >= 1 {
		return
	}

	text := moveHint
	if v.player.Moved {
		text = speedHint
	}
	pad := g.padding()
	col := core.HSVToRGB(v.player.Hue, .4, 1)
	dst.FillText(text, pad+10, float64(v.viewport.H)-pad-15, g.heading(), core.AlignLeft, core.BaselineAlphabetic, col)
}

func (g *Game) drawAutoNotice(dst core.Canvas, v frameView) {
	if !v.player.Auto || v.input.HideAutoHint {
		return
	}

	pad := g.padding()
	x, h := float64(v.viewport.W)/2, float64(v.viewport.H)
	col := core.HSVToRGB(v.player.Hue, .4, 1)
	dst.FillText(autoBanner, x, h-pad-15, g.heading(), core.AlignCenter, core.BaselineAlphabetic, col)
	if g.cfg.Rules.HideAutoHintKey {
		small := core.Font{Size: g.cfg.Text.Small, Bold: true}
		dst.FillText(autoHideHint, x, h-pad, small, core.AlignCenter, core.BaselineAlphabetic, col)
	}
}

func (g *Game) drawDebug(dst core.Canvas, v frameView) {
	pad := g.padding()
	x := float64(v.viewport.W) - (pad + 5)
	font := core.Font{Size: g.cfg.Text.Debug, Mono: true}

	dst.FillText(v.debugJSON(), x, pad+5, font, core.AlignRight, core.BaselineTop, debugColor)
	dst.FillText(debugNotice, x, pad+20, font, core.AlignRight, core.BaselineTop, debugColor)
}
