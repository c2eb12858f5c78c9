package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont parses the TrueType file at path, or Go Regular when path is empty.
func LoadFont(path string) (*truetype.Font, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// Fonts are the faces text is drawn with. Runes Text has no glyph for are
// drawn with Sticker when it has one. Go Regular has no emoji, so the default
// stickers need an emoji-capable monochrome TTF as Sticker to show up.
type Fonts struct {
	Text    *truetype.Font
	Sticker *truetype.Font
}

// LoadFonts loads the text font (Go Regular when empty) and the optional
// sticker fallback font.
func LoadFonts(text, sticker string) (Fonts, error) {
	var fs Fonts
	var err error
	if fs.Text, err = LoadFont(text); err != nil {
		return Fonts{}, err
	}
	if sticker != "" {
		if fs.Sticker, err = LoadFont(sticker); err != nil {
			return Fonts{}, fmt.Errorf("sticker font: %w", err)
		}
	}
	return fs, nil
}

func (fs Fonts) withDefaults() Fonts {
	if fs.Text == nil {
		fs.Text, _ = LoadFont("")
	}
	return fs
}

// useSticker reports whether r is drawn with the sticker font.
func (fs Fonts) useSticker(r rune) bool {
	return fs.Sticker != nil && fs.Text.Index(r) == 0 && fs.Sticker.Index(r) != 0
}

// Covers reports whether every visible rune of s has a glyph in one of the
// fonts. Uncovered runes are drawn as the missing-glyph box.
func (fs Fonts) Covers(s string) bool {
	fs = fs.withDefaults()
	for _, r := range s {
		if invisible(r) {
			continue
		}
		if fs.Text.Index(r) == 0 && (fs.Sticker == nil || fs.Sticker.Index(r) == 0) {
			return false
		}
	}
	return true
}

// invisible runes only steer emoji presentation; they have no glyph of their own.
func invisible(r rune) bool {
	return r == 0xfe0e || r == 0xfe0f || r == 0x200d
}

type run struct {
	text    string
	sticker bool
}

// splitRuns cuts s into runs drawn with the same font.
func splitRuns(s string, sticker func(rune) bool) []run {
	var runs []run
	for _, r := range s {
		if invisible(r) {
			continue
		}
		st := sticker(r)
		if n := len(runs); n > 0 && runs[n-1].sticker == st {
			runs[n-1].text += string(r)
			continue
		}
		runs = append(runs, run{text: string(r), sticker: st})
	}
	return runs
}

type faceKey struct {
	size    float64
	sticker bool
}

// Raster paints into an RGBA image through a gg context. Every coordinate,
// width and font size is multiplied by the scale, so the same drawing can be
// produced at screen or export resolution.
type Raster struct {
	dc    *gg.Context
	w, h  float64
	scale float64
	fonts Fonts
	faces map[faceKey]font.Face

	// current path, for dot detection
	first      gg.Point
	points     int
	degenerate bool
}

var _ Surface = (*Raster)(nil)

// NewRaster creates a surface of w x h canvas pixels backed by an image of
// (w*scale) x (h*scale) pixels. A nil text font falls back to Go Regular.
func NewRaster(w, h int, scale float64, fonts Fonts) *Raster {
	if scale <= 0 {
		scale = 1
	}
	pw := int(float64(w)*scale + 0.5)
	ph := int(float64(h)*scale + 0.5)
	dc := gg.NewContext(pw, ph)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Raster{
		dc:    dc,
		w:     float64(w),
		h:     float64(h),
		scale: scale,
		fonts: fonts.withDefaults(),
		faces: make(map[faceKey]font.Face),
	}
}

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

// Scale reports the factor between canvas and image pixels.
func (r *Raster) Scale() float64 { return r.scale }

// Image returns the backing image. It is updated in place by later calls.
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) Clear() {
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	k := r.scale
	r.dc.DrawRectangle(x*k, y*k, w*k, h*k)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) BeginPath() {
	r.dc.ClearPath()
	r.points = 0
	r.degenerate = true
}

func (r *Raster) MoveTo(x, y float64) {
	p := gg.Point{X: x * r.scale, Y: y * r.scale}
	if r.points == 0 {
		r.first = p
	}
	r.track(p)
	r.dc.MoveTo(p.X, p.Y)
}

func (r *Raster) LineTo(x, y float64) {
	p := gg.Point{X: x * r.scale, Y: y * r.scale}
	if r.points == 0 {
		r.first = p
	}
	r.track(p)
	r.dc.LineTo(p.X, p.Y)
}

func (r *Raster) track(p gg.Point) {
	r.points++
	if p != r.first {
		r.degenerate = false
	}
}

// Stroke outlines the current path. A path that never leaves its first point
// is painted as a round dot, since the rasterizer drops zero-length segments.
func (r *Raster) Stroke(width float64, c color.Color) {
	if r.points == 0 {
		return
	}
	lw := width * r.scale
	r.dc.SetColor(c)
	if r.degenerate {
		r.dc.ClearPath()
		r.dc.DrawCircle(r.first.X, r.first.Y, lw/2)
		r.dc.Fill()
	} else {
		r.dc.SetLineWidth(lw)
		r.dc.Stroke()
	}
	r.points = 0
}

func (r *Raster) FillText(text string, x, y, size float64, c color.Color) {
	if text == "" || size <= 0 {
		return
	}
	size *= r.scale
	runs := splitRuns(text, r.fonts.useSticker)
	width := 0.0
	for _, rn := range runs {
		width += float64(font.MeasureString(r.face(size, rn.sticker), rn.text)) / 64
	}
	r.dc.SetColor(c)
	left := x*r.scale - width/2
	for _, rn := range runs {
		face := r.face(size, rn.sticker)
		r.dc.SetFontFace(face)
		r.dc.DrawStringAnchored(rn.text, left, y*r.scale, 0, 0.5)
		left += float64(font.MeasureString(face, rn.text)) / 64
	}
}

func (r *Raster) Circle(x, y, radius float64, fill, stroke color.Color, width float64) {
	k := r.scale
	r.dc.ClearPath()
	r.dc.DrawCircle(x*k, y*k, radius*k)
	r.dc.SetColor(fill)
	r.dc.FillPreserve()
	r.dc.SetColor(stroke)
	r.dc.SetLineWidth(width * k)
	r.dc.Stroke()
}

func (r *Raster) face(size float64, sticker bool) font.Face {
	key := faceKey{size: size, sticker: sticker}
	if f, ok := r.faces[key]; ok {
		return f
	}
	ttf := r.fonts.Text
	if sticker {
		ttf = r.fonts.Sticker
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = f
	return f
}
