package state

import "math"

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Inset grows r by pad on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
}

// Intersect clips r to o. The result has zero size when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Bounds returns the area covered by cmds, including stroke width and
// sticker size. ok is false when nothing would be drawn.
func Bounds(cmds []Command) (r Rect, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	grow := func(p Point, reach float64) {
		minX = math.Min(minX, p.X-reach)
		minY = math.Min(minY, p.Y-reach)
		maxX = math.Max(maxX, p.X+reach)
		maxY = math.Max(maxY, p.Y+reach)
		ok = true
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case *Stroke:
			for _, p := range c.Points {
				grow(p, c.Thickness/2)
			}
		case *Sticker:
			if c.Glyph != "" {
				grow(c.At, c.Size/2)
			}
		}
	}
	if !ok {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
