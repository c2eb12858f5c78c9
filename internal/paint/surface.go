package paint

import (
	"fmt"
	"image/color"
)

// Surface is an immediate-mode drawing target. Coordinates are in canvas
// pixels; implementations apply their own scaling.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(width float64, c color.Color)

	// FillText draws text centred on (x, y).
	FillText(text string, x, y, size float64, c color.Color)
	// Circle fills and outlines a circle of radius r centred on (x, y).
	Circle(x, y, r float64, fill, stroke color.Color, width float64)
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
