package board

import (
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

// Cause says why a redraw was requested.
type Cause int

const (
	DrawingChanged Cause = iota
	ToolMoved
	ToolChanged
)

func (c Cause) String() string {
	switch c {
	case DrawingChanged:
		return "drawing-changed"
	case ToolMoved:
		return "tool-moved"
	case ToolChanged:
		return "tool-changed"
	default:
		return "unknown"
	}
}

// Display is where the board shows itself. Surface is asked for a target
// before every redraw and Present is called once the frame is complete.
type Display interface {
	Surface() paint.Surface
	Present(cause Cause)
}

// RenderAll paints the background, every committed command in order and
// then the preview. It reads board state only, so it can target any
// surface, including off-screen export surfaces.
func (b *Board) RenderAll(s paint.Surface) {
	w, h := s.Size()
	s.Clear()
	s.FillRect(0, 0, w, h, b.background)
	for _, cmd := range b.history.Committed() {
		state.Render(cmd, s)
	}
	b.preview.Render(s, b.background)
}

// notify redraws synchronously; the frame is complete before the caller
// handles its next event.
func (b *Board) notify(cause Cause) {
	if b.display == nil {
		return
	}
	b.RenderAll(b.display.Surface())
	b.display.Present(cause)
}
