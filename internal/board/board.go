package board

import (
	"image/color"
	"log/slog"
	"strings"

	"Sketchpad/internal/config"
	"Sketchpad/internal/state"
)

// Options configures a Board.
type Options struct {
	Width, Height int
	Background    color.NRGBA
	Catalog       *state.Catalog
	// StickerSize is the font size given to stickers made with AddSticker.
	StickerSize float64
	Display     Display
	Logger      *slog.Logger
}

// OptionsFrom maps a validated configuration onto board options.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Background:  cfg.Background(),
		Catalog:     cfg.Catalog(),
		StickerSize: cfg.Canvas.CustomStickerSize,
	}
}

var fallbackBrush = state.Brush{ID: "thin", Thickness: 1, Color: color.NRGBA{A: 0xff}}

// Board is one sketchpad: history, tool selection and the pointer session
// that turns input samples into commands. It is driven from a single
// goroutine and is not safe for concurrent use.
type Board struct {
	width, height int
	background    color.NRGBA
	stickerSize   float64

	history state.History
	catalog *state.Catalog
	clock   state.Clock
	tool    state.Tool

	drawing bool
	active  state.Command
	preview *state.Preview

	display Display
	log     *slog.Logger
}

func New(opts Options) *Board {
	if opts.Catalog == nil {
		opts.Catalog = state.NewCatalog(fallbackBrush)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.StickerSize <= 0 {
		opts.StickerSize = 20
	}
	tool := state.ToolFor(fallbackBrush)
	if brushes := opts.Catalog.Brushes(); len(brushes) > 0 {
		tool = state.ToolFor(brushes[0])
	}
	return &Board{
		width:       opts.Width,
		height:      opts.Height,
		background:  opts.Background,
		stickerSize: opts.StickerSize,
		catalog:     opts.Catalog,
		tool:        tool,
		display:     opts.Display,
		log:         opts.Logger.With("component", "board"),
	}
}

// SetDisplay attaches d and draws the current state onto it.
func (b *Board) SetDisplay(d Display) {
	b.display = d
	b.notify(DrawingChanged)
}

// Size is the canvas size in canvas pixels.
func (b *Board) Size() (w, h int) { return b.width, b.height }

// Background is the colour painted under every frame.
func (b *Board) Background() color.NRGBA { return b.background }

// Drawing reports whether a pointer is down and extending the active command.
func (b *Board) Drawing() bool { return b.drawing }

func (b *Board) History() *state.History    { return &b.history }
func (b *Board) Tool() state.Tool           { return b.tool }
func (b *Board) Preview() *state.Preview    { return b.preview }
func (b *Board) Brushes() []state.Brush     { return b.catalog.Brushes() }
func (b *Board) Active() state.Command      { return b.active }
func (b *Board) Committed() []state.Command { return b.history.Committed() }

// PointerDown starts a command with the current tool and commits it at once
// so the in-progress stroke is visible.
func (b *Board) PointerDown(p state.Point) {
	cmd := state.NewCommand(b.clock.Next(), b.tool, p)
	state.Extend(cmd, p)
	b.history.Commit(cmd)
	b.active = cmd
	b.drawing = true
	b.preview = nil
	b.log.Debug("command started", "id", state.StampOf(cmd).ID, "brush", b.tool.Brush.ID)
	b.notify(DrawingChanged)
}

// PointerMove extends the active command while drawing, otherwise it moves
// the preview.
func (b *Board) PointerMove(p state.Point) {
	if b.drawing && b.active != nil {
		state.Extend(b.active, p)
		b.preview = nil
		b.notify(DrawingChanged)
		return
	}
	b.preview = &state.Preview{At: p, Tool: b.tool}
	b.notify(ToolMoved)
}

// PointerUp freezes the active command. It stays in history.
func (b *Board) PointerUp() {
	if b.active != nil {
		b.log.Debug("command finished", "id", state.StampOf(b.active).ID, "points", len(state.Points(b.active)))
	}
	b.endStroke()
	b.notify(DrawingChanged)
}

// PointerLeave hides the preview.
func (b *Board) PointerLeave() {
	b.preview = nil
	b.notify(ToolMoved)
}

func (b *Board) endStroke() {
	b.drawing = false
	b.active = nil
}

// Undo moves the newest command to the redo buffer. Nothing is redrawn when
// there is nothing to undo.
func (b *Board) Undo() bool {
	b.endStroke()
	if !b.history.Undo() {
		return false
	}
	b.log.Debug("undo", "committed", b.history.Len())
	b.notify(DrawingChanged)
	return true
}

func (b *Board) Redo() bool {
	b.endStroke()
	if !b.history.Redo() {
		return false
	}
	b.log.Debug("redo", "committed", b.history.Len())
	b.notify(DrawingChanged)
	return true
}

// Clear empties the drawing and the redo buffer.
func (b *Board) Clear() {
	b.endStroke()
	if dropped := b.history.Clear(); dropped > 0 {
		b.log.Debug("clear discarded redo entries", "count", dropped)
	}
	b.notify(DrawingChanged)
}

// SelectBrush makes br the current tool, in its own colour.
func (b *Board) SelectBrush(br state.Brush) {
	b.setTool(state.ToolFor(br))
}

// SelectBrushID selects a catalog brush by id.
func (b *Board) SelectBrushID(id string) bool {
	br, ok := b.catalog.Lookup(id)
	if !ok {
		return false
	}
	b.SelectBrush(br)
	return true
}

// SetStrokeColor changes the colour of commands started from now on.
func (b *Board) SetStrokeColor(c color.NRGBA) {
	t := b.tool
	t.Color = c
	b.setTool(t)
}

func (b *Board) setTool(t state.Tool) {
	b.tool = t
	if b.preview != nil {
		b.preview = &state.Preview{At: b.preview.At, Tool: t}
	}
	b.log.Debug("tool changed", "brush", t.Brush.ID)
	b.notify(ToolChanged)
}

// RegisterBrush appends br to the catalog. It reports false when the id is
// already in use.
func (b *Board) RegisterBrush(br state.Brush) bool {
	if !b.catalog.Register(br) {
		b.log.Warn("brush id already registered", "id", br.ID)
		return false
	}
	return true
}

// AddSticker turns glyph into a sticker brush, registers it and selects it.
// A glyph that already has a sticker brush selects that brush instead. Blank
// input is ignored.
func (b *Board) AddSticker(glyph string) (state.Brush, bool) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return state.Brush{}, false
	}
	if br, ok := b.catalog.LookupGlyph(glyph); ok {
		b.SelectBrush(br)
		return br, true
	}
	br := state.Brush{
		ID:        b.catalog.NextID("sticker"),
		Thickness: b.stickerSize,
		Color:     b.tool.Color,
		Glyph:     glyph,
	}
	b.RegisterBrush(br)
	b.log.Info("sticker registered", "id", br.ID, "glyph", glyph)
	b.SelectBrush(br)
	return br, true
}
