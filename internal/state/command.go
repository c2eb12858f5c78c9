package state

import (
	"image/color"

	"Sketchpad/internal/paint"
)

// Command is a recorded drawing action. It is implemented only by *Stroke
// and *Sticker; Extend and Render switch on the concrete type.
type Command interface {
	stamp() Stamp
}

// Stroke is a freehand polyline.
type Stroke struct {
	Stamp
	Points    []Point
	Thickness float64
	Color     color.NRGBA
}

// Sticker is a glyph stamped at one position. Size is the font size.
type Sticker struct {
	Stamp
	At    Point
	Glyph string
	Size  float64
	Color color.NRGBA
}

func (s *Stroke) stamp() Stamp  { return s.Stamp }
func (s *Sticker) stamp() Stamp { return s.Stamp }

// StampOf returns the identity of cmd, or the zero Stamp for nil.
func StampOf(cmd Command) Stamp {
	if cmd == nil {
		return Stamp{}
	}
	return cmd.stamp()
}

// NewCommand starts a command for tool at p: a sticker for glyph brushes, a
// stroke otherwise. Style is copied out of tool so later selections do not
// reach it. The returned command has no points until it is extended.
func NewCommand(st Stamp, tool Tool, p Point) Command {
	if tool.Brush.IsSticker() {
		return &Sticker{
			Stamp: st,
			At:    p,
			Glyph: tool.Brush.Glyph,
			Size:  tool.Brush.Thickness,
			Color: tool.Color,
		}
	}
	return &Stroke{
		Stamp:     st,
		Thickness: tool.Brush.Thickness,
		Color:     tool.Color,
	}
}

// Extend feeds a new pointer sample to cmd. Strokes grow; stickers follow
// the pointer.
func Extend(cmd Command, p Point) {
	switch c := cmd.(type) {
	case *Stroke:
		c.Points = append(c.Points, p)
	case *Sticker:
		c.At = p
	}
}

// Render paints cmd with its own style. Incomplete commands draw nothing.
func Render(cmd Command, s paint.Surface) {
	switch c := cmd.(type) {
	case *Stroke:
		if c == nil || len(c.Points) == 0 {
			return
		}
		s.BeginPath()
		s.MoveTo(c.Points[0].X, c.Points[0].Y)
		for _, p := range c.Points {
			s.LineTo(p.X, p.Y)
		}
		s.Stroke(c.Thickness, c.Color)
	case *Sticker:
		if c == nil || c.Glyph == "" {
			return
		}
		s.FillText(c.Glyph, c.At.X, c.At.Y, c.Size, c.Color)
	}
}

// Points returns the positions cmd covers.
func Points(cmd Command) []Point {
	switch c := cmd.(type) {
	case *Stroke:
		if c == nil {
			return nil
		}
		return c.Points
	case *Sticker:
		if c == nil {
			return nil
		}
		return []Point{c.At}
	}
	return nil
}
