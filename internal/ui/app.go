package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/board"
	"Sketchpad/internal/export"
)

// RunApp opens the sketchpad window for b and blocks until it is closed.
func RunApp(b *board.Board, exp export.Options, log *slog.Logger) {
	myApp := app.NewWithID("io.sketchpad")
	myWindow := myApp.NewWindow("Sketchpad")

	// the widget becomes the board's display, so it needs the app first
	bw := NewBoardWidget(b, exp.Fonts)
	status := widget.NewLabel("Ready")
	toolbar := NewToolbar(myWindow, bw, exp, status)

	content := container.NewBorder(toolbar.Object(), status, nil, nil, container.NewCenter(bw))
	myWindow.SetContent(content)
	myWindow.Resize(content.MinSize().Add(fyne.NewSize(32, 32)))

	w, h := b.Size()
	log.Info("desktop window open", "width", w, "height", h, "brushes", len(b.Brushes()))
	myWindow.ShowAndRun()
}
