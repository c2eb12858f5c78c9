package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"Sketchpad/internal/board"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

// ErrEmpty is returned when a trimmed export has nothing to show.
var ErrEmpty = errors.New("nothing to export")

// Options controls raster export.
type Options struct {
	// Scale multiplies the canvas size; 4 turns a 256px canvas into 1024px.
	Scale float64
	// Fonts render sticker glyphs; a nil text font uses Go Regular.
	Fonts paint.Fonts
}

// Render draws b onto a fresh off-screen raster.
func Render(b *board.Board, opts Options) *paint.Raster {
	w, h := b.Size()
	r := paint.NewRaster(w, h, opts.Scale, opts.Fonts)
	b.RenderAll(r)
	return r
}

// PNG writes the whole canvas.
func PNG(w io.Writer, b *board.Board, opts Options) error {
	if err := Render(b, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGTrimmed writes only the area covered by committed commands, grown by
// padding canvas pixels and clipped to the canvas.
func PNGTrimmed(w io.Writer, b *board.Board, opts Options, padding float64) error {
	area, ok := state.Bounds(b.Committed())
	if !ok {
		return ErrEmpty
	}
	cw, ch := b.Size()
	area = area.Inset(padding).Intersect(state.Rect{Width: float64(cw), Height: float64(ch)})
	if area.Empty() {
		return ErrEmpty
	}

	r := Render(b, opts)
	k := r.Scale()
	crop := image.Rect(
		int(math.Floor(area.X*k)),
		int(math.Floor(area.Y*k)),
		int(math.Ceil((area.X+area.Width)*k)),
		int(math.Ceil((area.Y+area.Height)*k)),
	)
	if err := png.Encode(w, r.Image().SubImage(crop)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// File exports to path, choosing PNG or PDF by extension.
func File(path string, b *board.Board, opts Options) (err error) {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = func(w io.Writer) error { return PNG(w, b, opts) }
	case ".pdf":
		write = func(w io.Writer) error { return PDF(w, b) }
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
