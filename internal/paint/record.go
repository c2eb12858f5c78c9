package paint

import "image/color"

// Op is one recorded Surface call. The field set mirrors the browser's 2D
// context so the web page can replay ops without translation.
type Op struct {
	Kind   string  `json:"op"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	R      float64 `json:"r,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Text   string  `json:"text,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Stroke string  `json:"stroke,omitempty"`
}

const (
	OpClear  = "clear"
	OpRect   = "rect"
	OpBegin  = "begin"
	OpMove   = "move"
	OpLine   = "line"
	OpStroke = "stroke"
	OpText   = "text"
	OpCircle = "circle"
)

// Recorder is a Surface that keeps the calls made on it.
type Recorder struct {
	w, h float64
	ops  []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{w: w, h: h}
}

// Reset drops recorded ops, keeping the backing array.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Ops returns a copy of the recorded ops.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

func (r *Recorder) Clear() {
	r.ops = append(r.ops, Op{Kind: OpClear, W: r.w, H: r.h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: Hex(c)})
}

func (r *Recorder) BeginPath() {
	r.ops = append(r.ops, Op{Kind: OpBegin})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpMove, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, X: x, Y: y})
}

func (r *Recorder) Stroke(width float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Width: width, Stroke: Hex(c)})
}

func (r *Recorder) FillText(text string, x, y, size float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: text, X: x, Y: y, Size: size, Fill: Hex(c)})
}

func (r *Recorder) Circle(x, y, radius float64, fill, stroke color.Color, width float64) {
	r.ops = append(r.ops, Op{
		Kind:   OpCircle,
		X:      x,
		Y:      y,
		R:      radius,
		Fill:   Hex(fill),
		Stroke: Hex(stroke),
		Width:  width,
	})
}
