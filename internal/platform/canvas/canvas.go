package canvas

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/flagrun/internal/core"
)

// Fonts caches text faces per size and style.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	mono    *text.GoTextFaceSource
	faces   map[core.Font]*text.GoTextFace
}

// LoadFonts parses the bundled Go fonts.
func LoadFonts() (*Fonts, error) {
	load := func(name string, ttf []byte) (*text.GoTextFaceSource, error) {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("load %s font: %w", name, err)
		}
		return src, nil
	}

	regular, err := load("regular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := load("bold", gobold.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := load("mono", gomono.TTF)
	if err != nil {
		return nil, err
	}

	return &Fonts{
		regular: regular,
		bold:    bold,
		mono:    mono,
		faces:   make(map[core.Font]*text.GoTextFace),
	}, nil
}

// Face returns the face for f. Mono wins over bold.
func (fs *Fonts) Face(f core.Font) *text.GoTextFace {
	if face, ok := fs.faces[f]; ok {
		return face
	}

	src := fs.regular
	switch {
	case f.Mono:
		src = fs.mono
	case f.Bold:
		src = fs.bold
	}
	face := &text.GoTextFace{Source: src, Size: f.Size}
	fs.faces[f] = face
	return face
}

// Measure returns the advance width of s.
func (fs *Fonts) Measure(s string, f core.Font) float64 {
	w, _ := text.Measure(s, fs.Face(f), 0)
	return w
}

// ImageCanvas draws onto an Ebitengine image.
type ImageCanvas struct {
	dst   *ebiten.Image
	fonts *Fonts
}

// NewImageCanvas wraps dst.
func NewImageCanvas(dst *ebiten.Image, fonts *Fonts) *ImageCanvas {
	return &ImageCanvas{dst: dst, fonts: fonts}
}

func (c *ImageCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) Clear(col core.Color) {
	c.dst.Fill(col)
}

func (c *ImageCanvas) FillRect(x, y, w, h float64, col core.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *ImageCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c *ImageCanvas) FillText(s string, x, y float64, f core.Font, align core.TextAlign, base core.TextBaseline, col core.Color) {
	face := c.fonts.Face(f)

	op := &text.DrawOptions{}
	switch align {
	case core.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case core.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	if base == core.BaselineAlphabetic {
		y -= face.Metrics().HAscent
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, face, op)
}

func (c *ImageCanvas) MeasureText(s string, f core.Font) float64 {
	return c.fonts.Measure(s, f)
}
