package export

import (
	"fmt"
	"io"

	"Sketchpad/internal/board"
	"Sketchpad/internal/paint"
)

// PDF writes the drawing as a one-page document the size of the canvas.
func PDF(w io.Writer, b *board.Board) error {
	cw, ch := b.Size()
	doc := paint.NewPDF(float64(cw), float64(ch))
	b.RenderAll(doc)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
