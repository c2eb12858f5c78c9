package state

import (
	"image/color"

	"Sketchpad/internal/paint"
)

// Preview marks where the selected tool would draw. It never enters history.
type Preview struct {
	At   Point
	Tool Tool
}

// Render draws an outlined circle of the brush radius for freehand tools,
// or the glyph itself for sticker tools.
func (p *Preview) Render(s paint.Surface, background color.Color) {
	if p == nil {
		return
	}
	b := p.Tool.Brush
	if b.IsSticker() {
		s.FillText(b.Glyph, p.At.X, p.At.Y, b.Thickness, p.Tool.Color)
		return
	}
	s.Circle(p.At.X, p.At.Y, b.Thickness, background, p.Tool.Color, 1)
}
