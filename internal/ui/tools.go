package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/export"
	"Sketchpad/internal/state"
)

var palette = []color.NRGBA{
	{A: 0xff},                            // black
	{R: 0xff, A: 0xff},                   // red
	{G: 0x80, A: 0xff},                   // green
	{B: 0xff, A: 0xff},                   // blue
	{R: 0xff, G: 0xff, A: 0xff},          // yellow
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the brush buttons, palette and actions for one board.
type Toolbar struct {
	win     fyne.Window
	board   *BoardWidget
	exp     export.Options
	brushes *fyne.Container
	status  *widget.Label
}

func NewToolbar(win fyne.Window, bw *BoardWidget, exp export.Options, status *widget.Label) *Toolbar {
	t := &Toolbar{win: win, board: bw, exp: exp, status: status, brushes: container.NewHBox()}
	for _, br := range bw.Board().Brushes() {
		t.addBrushButton(br)
	}
	return t
}

func brushLabel(br state.Brush) string {
	if br.IsSticker() {
		return br.Glyph
	}
	return br.ID
}

func (t *Toolbar) addBrushButton(br state.Brush) {
	t.brushes.Add(widget.NewButton(brushLabel(br), func() {
		t.board.Board().SelectBrush(br)
		t.SetStatus("Brush: " + brushLabel(br))
	}))
}

func (t *Toolbar) SetStatus(msg string) {
	if t.status != nil {
		t.status.SetText(msg)
	}
}

// Object lays the toolbar out in a single row.
func (t *Toolbar) Object() fyne.CanvasObject {
	b := t.board.Board()
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			if !b.Undo() {
				t.SetStatus("Nothing to undo")
			}
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			if !b.Redo() {
				t.SetStatus("Nothing to redo")
			}
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), b.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentAddIcon(), t.promptSticker),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.promptExport),
	)

	colors := container.NewHBox()
	for _, c := range palette {
		colors.Add(newColorSwatch(c, func(c color.NRGBA) {
			b.SetStrokeColor(c)
		}))
	}

	return container.NewHBox(
		t.brushes,
		widget.NewSeparator(),
		colors,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}

func (t *Toolbar) promptSticker() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("⭐")
	items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
	dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		b := t.board.Board()
		before := len(b.Brushes())
		br, ok := b.AddSticker(entry.Text)
		if !ok {
			t.SetStatus("Sticker text is empty")
			return
		}
		if len(b.Brushes()) > before {
			t.addBrushButton(br)
		}
		t.SetStatus("Brush: " + br.Glyph)
	}, t.win)
}

// promptExport saves a PDF when the chosen name ends in .pdf and a PNG
// otherwise.
func (t *Toolbar) promptExport() {
	save := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.win)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		b := t.board.Board()
		if strings.EqualFold(wc.URI().Extension(), ".pdf") {
			err = export.PDF(wc, b)
		} else {
			err = export.PNG(wc, b, t.exp)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("export: %w", err), t.win)
			return
		}
		t.SetStatus("Saved " + wc.URI().Name())
	}, t.win)
	save.SetFileName("sketchpad.png")
	save.Show()
}
