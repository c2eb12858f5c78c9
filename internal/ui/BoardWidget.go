package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/board"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

// displayScale renders the canvas at twice its size so small canvases stay
// usable on screen.
const displayScale = 2

// BoardWidget shows a board and feeds it mouse input. It is the board's
// Display: every redraw paints into the raster the widget's image shows.
type BoardWidget struct {
	widget.BaseWidget
	board  *board.Board
	raster *paint.Raster
	image  *canvas.Image
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ board.Display = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board, fonts paint.Fonts) *BoardWidget {
	w, h := b.Size()
	bw := &BoardWidget{
		board:  b,
		raster: paint.NewRaster(w, h, displayScale, fonts),
	}
	bw.image = canvas.NewImageFromImage(bw.raster.Image())
	bw.image.FillMode = canvas.ImageFillStretch
	bw.image.ScaleMode = canvas.ImageScaleSmooth
	bw.image.SetMinSize(fyne.NewSize(float32(w*displayScale), float32(h*displayScale)))
	bw.ExtendBaseWidget(bw)
	b.SetDisplay(bw)
	return bw
}

func (w *BoardWidget) Board() *board.Board { return w.board }

func (w *BoardWidget) Surface() paint.Surface { return w.raster }

func (w *BoardWidget) Present(board.Cause) {
	w.image.Refresh()
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.image)
}

// toCanvas maps a widget position onto canvas pixels.
func (w *BoardWidget) toCanvas(pos fyne.Position) state.Point {
	size := w.Size()
	cw, ch := w.board.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
	}
	return state.Point{
		X: float64(pos.X) * float64(cw) / float64(size.Width),
		Y: float64(pos.Y) * float64(ch) / float64(size.Height),
	}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.PointerDown(w.toCanvas(e.Position))
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && w.board.Drawing() {
		w.board.PointerUp()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.PointerMove(w.toCanvas(e.Position))
}

// DragEnd may arrive instead of MouseUp when the drag leaves the widget.
func (w *BoardWidget) DragEnd() {
	if w.board.Drawing() {
		w.board.PointerUp()
	}
}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	w.board.PointerMove(w.toCanvas(e.Position))
}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.board.PointerMove(w.toCanvas(e.Position))
}

func (w *BoardWidget) MouseOut() {
	w.board.PointerLeave()
}
