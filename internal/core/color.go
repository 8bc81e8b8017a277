package core

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadHex is returned by ParseHex for malformed color strings.
var ErrBadHex = errors.New("invalid hex color")

// Color is a non-premultiplied RGBA color.
// It satisfies image/color.Color so platforms can pass it straight to
// their drawing APIs.
type Color struct {
	R, G, B, A uint8
}

// Common colors used by the games.
var (
	ColorBlack = Color{A: 0xff}
	ColorWhite = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorRed   = Color{R: 0xff, A: 0xff}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return RGBToHex(c.R, c.G, c.B)
	}
	return RGBToHex(c.R, c.G, c.B) + hexByte(c.A)
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// HSVToRGB converts hue, saturation and value, each in [0, 1], to an opaque
// color with channels rounded to the nearest integer. Hue wraps around;
// NaN and infinite hues read as 0.
func HSVToRGB(h, s, v float64) Color {
	r, g, b := hsv(h, s, v).RGB255()
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBToHex formats the channels as "#rrggbb".
func RGBToHex(r, g, b uint8) string {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// HSVToHex converts hue, saturation and value to "#rrggbb".
func HSVToHex(h, s, v float64) string {
	return hsv(h, s, v).Hex()
}

func hsv(h, s, v float64) colorful.Color {
	deg := math.Mod(h, 1) * 360
	if deg < 0 {
		deg += 360
	}
	if math.IsNaN(deg) || deg >= 360 {
		deg = 0
	}
	return colorful.Hsv(deg, s, v).Clamped()
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 && len(raw) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}

	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	if len(raw) == 6 {
		n = n<<8 | 0xff
	}
	return Color{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// MustParseHex is ParseHex for compile-time constants. It panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexByte(b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}
