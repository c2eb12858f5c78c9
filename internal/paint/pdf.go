package paint

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF is a Surface that writes a single page sized to the canvas, one
// canvas pixel per point.
type PDF struct {
	doc  *gofpdf.Fpdf
	w, h float64
	tr   func(string) string

	// path is buffered so an invisible stroke leaves nothing in the page.
	path []segment
}

type segment struct {
	x, y float64
	move bool
}

var _ Surface = (*PDF)(nil)

func NewPDF(w, h float64) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	doc.SetFont("Helvetica", "", 12)
	return &PDF{
		doc: doc,
		w:   w,
		h:   h,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

func (p *PDF) Size() (float64, float64) { return p.w, p.h }

// Clear is a no-op: a fresh page is already blank and PDF has no erase.
func (p *PDF) Clear() {}

func (p *PDF) FillRect(x, y, w, h float64, c color.Color) {
	r, g, b, ok := rgb(c)
	if !ok {
		return
	}
	p.doc.SetFillColor(r, g, b)
	p.doc.Rect(x, y, w, h, "F")
}

func (p *PDF) BeginPath() { p.path = p.path[:0] }

func (p *PDF) MoveTo(x, y float64) { p.path = append(p.path, segment{x: x, y: y, move: true}) }

func (p *PDF) LineTo(x, y float64) { p.path = append(p.path, segment{x: x, y: y}) }

// Stroke writes and strokes the buffered path. A transparent colour drops it.
func (p *PDF) Stroke(width float64, c color.Color) {
	defer p.BeginPath()
	r, g, b, ok := rgb(c)
	if !ok || len(p.path) == 0 {
		return
	}
	p.doc.SetDrawColor(r, g, b)
	p.doc.SetLineWidth(width)
	for _, s := range p.path {
		if s.move {
			p.doc.MoveTo(s.x, s.y)
		} else {
			p.doc.LineTo(s.x, s.y)
		}
	}
	p.doc.DrawPath("D")
}

func (p *PDF) FillText(text string, x, y, size float64, c color.Color) {
	r, g, b, ok := rgb(c)
	if !ok || text == "" {
		return
	}
	s := p.tr(text)
	p.doc.SetFontSize(size)
	p.doc.SetTextColor(r, g, b)
	p.doc.Text(x-p.doc.GetStringWidth(s)/2, y+size*0.35, s)
}

func (p *PDF) Circle(x, y, radius float64, fill, stroke color.Color, width float64) {
	style := ""
	if r, g, b, ok := rgb(fill); ok {
		p.doc.SetFillColor(r, g, b)
		style += "F"
	}
	if r, g, b, ok := rgb(stroke); ok && width > 0 {
		p.doc.SetDrawColor(r, g, b)
		p.doc.SetLineWidth(width)
		style += "D"
	}
	if style == "" {
		return
	}
	p.doc.Circle(x, y, radius, style)
}

// rgb drops alpha; fully transparent colours report ok=false.
func rgb(c color.Color) (r, g, b int, ok bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), n.A != 0
}
