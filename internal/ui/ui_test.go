package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
	"Sketchpad/internal/export"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

func newWidget(t *testing.T) *BoardWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	bw := NewBoardWidget(board.New(board.OptionsFrom(config.Default())), paint.Fonts{})
	bw.Resize(fyne.NewSize(512, 512))
	return bw
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestMouseDrawsStrokeInCanvasCoordinates(t *testing.T) {
	bw := newWidget(t)
	b := bw.Board()

	bw.MouseDown(mouse(20, 20))
	bw.MouseMoved(mouse(40, 60))
	bw.MouseUp(mouse(40, 60))

	require.Len(t, b.Committed(), 1)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 30}}, state.Points(b.Committed()[0]))
	assert.False(t, b.Drawing())
}

func TestDragEndFinishesStroke(t *testing.T) {
	bw := newWidget(t)
	b := bw.Board()

	bw.MouseDown(mouse(10, 10))
	bw.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)}})
	bw.MouseOut()
	assert.True(t, b.Drawing(), "leaving keeps the stroke open")

	bw.DragEnd()
	assert.False(t, b.Drawing())
	assert.Equal(t, []state.Point{{X: 5, Y: 5}, {X: 50, Y: 50}}, state.Points(b.Committed()[0]))
}

func TestSecondaryButtonIgnored(t *testing.T) {
	bw := newWidget(t)
	ev := mouse(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	bw.MouseDown(ev)
	assert.Empty(t, bw.Board().Committed())
}

func TestWidgetShowsBackground(t *testing.T) {
	bw := newWidget(t)
	r, g, b, _ := bw.raster.Image().At(1, 1).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, b)
	assert.NotZero(t, g)
}

func TestToolbarAddsStickerButton(t *testing.T) {
	bw := newWidget(t)
	win := test.NewWindow(bw)
	t.Cleanup(win.Close)

	tb := NewToolbar(win, bw, export.Options{Scale: 1}, nil)
	before := len(tb.brushes.Objects)
	br, ok := bw.Board().AddSticker("⭐")
	require.True(t, ok)
	tb.addBrushButton(br)
	assert.Len(t, tb.brushes.Objects, before+1)
	assert.Equal(t, "⭐", bw.Board().Tool().Brush.Glyph)
}
