package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Brush describes a drawing tool. A brush with a glyph stamps stickers,
// otherwise it draws freehand strokes.
type Brush struct {
	ID        string
	Thickness float64
	Color     color.NRGBA
	Glyph     string
}

func (b Brush) IsSticker() bool { return b.Glyph != "" }

// Tool is the selected brush plus the colour new commands are drawn in.
type Tool struct {
	Brush Brush
	Color color.NRGBA
}

// ToolFor selects b with its own colour.
func ToolFor(b Brush) Tool {
	return Tool{Brush: b, Color: b.Color}
}

var namedColors = map[string]color.NRGBA{
	"black":       {A: 0xff},
	"white":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":         {R: 0xff, A: 0xff},
	"green":       {G: 0x80, A: 0xff},
	"lime":        {G: 0xff, A: 0xff},
	"blue":        {B: 0xff, A: 0xff},
	"yellow":      {R: 0xff, G: 0xff, A: 0xff},
	"orange":      {R: 0xff, G: 0xa5, A: 0xff},
	"purple":      {R: 0x80, B: 0x80, A: 0xff},
	"gray":        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"transparent": {},
}

// ParseColor accepts a CSS colour name from a small set, #rgb, #rrggbb or
// #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
