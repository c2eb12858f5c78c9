package state

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/paint"
)

var (
	black  = color.NRGBA{A: 0xff}
	red    = color.NRGBA{R: 0xff, A: 0xff}
	thin   = Brush{ID: "thin", Thickness: 1, Color: black}
	carrot = Brush{ID: "carrot", Thickness: 20, Color: black, Glyph: "🥕"}
)

func stroke(clock *Clock, pts ...Point) *Stroke {
	cmd := NewCommand(clock.Next(), ToolFor(thin), pts[0]).(*Stroke)
	for _, p := range pts {
		Extend(cmd, p)
	}
	return cmd
}

func TestUndoRedoAreInverses(t *testing.T) {
	var clock Clock
	for _, n := range []int{1, 2, 5, 17} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var h History
			cmds := make([]Command, n)
			for i := range cmds {
				cmds[i] = stroke(&clock, Point{X: float64(i)})
				h.Commit(cmds[i])
			}

			for range n {
				require.True(t, h.Undo())
			}
			assert.Empty(t, h.Committed())
			require.Len(t, h.RedoBuffer(), n)
			for i, cmd := range h.RedoBuffer() {
				assert.Same(t, cmds[n-1-i], cmd)
			}

			for range n {
				require.True(t, h.Redo())
			}
			assert.Empty(t, h.RedoBuffer())
			require.Len(t, h.Committed(), n)
			for i, cmd := range h.Committed() {
				assert.Same(t, cmds[i], cmd)
			}
		})
	}
}

func TestCommitInvalidatesRedo(t *testing.T) {
	var (
		h     History
		clock Clock
	)
	a := stroke(&clock, Point{})
	b := stroke(&clock, Point{X: 1})
	c := stroke(&clock, Point{X: 2})

	h.Commit(a)
	h.Commit(b)
	require.True(t, h.Undo())
	require.Equal(t, []Command{b}, h.RedoBuffer())

	h.Commit(c)
	assert.Empty(t, h.RedoBuffer())
	assert.Equal(t, []Command{a, c}, h.Committed())
	assert.False(t, h.Redo())
}

func TestUndoRedoOnEmptyAreNoOps(t *testing.T) {
	var h History
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Zero(t, h.Len())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestClearDropsBothStacks(t *testing.T) {
	var (
		h     History
		clock Clock
	)
	h.Commit(stroke(&clock, Point{}))
	h.Commit(stroke(&clock, Point{}))
	h.Commit(stroke(&clock, Point{}))
	h.Undo()

	assert.Equal(t, 1, h.Clear())
	assert.Empty(t, h.Committed())
	assert.Empty(t, h.RedoBuffer())
	assert.False(t, h.Redo(), "redo after clear must not resurrect commands")
}

func TestStrokeSnapshotsTool(t *testing.T) {
	var clock Clock
	tool := ToolFor(thin)
	cmd := NewCommand(clock.Next(), tool, Point{}).(*Stroke)

	tool.Color = red
	tool.Brush.Thickness = 40

	assert.Equal(t, black, cmd.Color)
	assert.Equal(t, 1.0, cmd.Thickness)
}

func TestStrokeRender(t *testing.T) {
	var clock Clock
	cmd := stroke(&clock, Point{0, 0}, Point{5, 5}, Point{10, 0})
	rec := paint.NewRecorder(100, 100)
	Render(cmd, rec)

	assert.Equal(t, []paint.Op{
		{Kind: paint.OpBegin},
		{Kind: paint.OpMove},
		{Kind: paint.OpLine},
		{Kind: paint.OpLine, X: 5, Y: 5},
		{Kind: paint.OpLine, X: 10},
		{Kind: paint.OpStroke, Width: 1, Stroke: "#000000"},
	}, rec.Ops())
}

func TestStickerExtendReplaces(t *testing.T) {
	var clock Clock
	cmd := NewCommand(clock.Next(), ToolFor(carrot), Point{X: 1, Y: 1})
	require.IsType(t, &Sticker{}, cmd)

	for i := range 5 {
		Extend(cmd, Point{X: float64(i * 10), Y: 3})
	}
	rec := paint.NewRecorder(100, 100)
	Render(cmd, rec)

	require.Len(t, rec.Ops(), 1)
	op := rec.Ops()[0]
	assert.Equal(t, paint.OpText, op.Kind)
	assert.Equal(t, "🥕", op.Text)
	assert.Equal(t, 40.0, op.X)
	assert.Equal(t, 3.0, op.Y)
	assert.Equal(t, 20.0, op.Size)
}

func TestRenderIncompleteCommandsIsNoOp(t *testing.T) {
	rec := paint.NewRecorder(10, 10)
	Render(nil, rec)
	Render(&Stroke{}, rec)
	Render(&Sticker{}, rec)
	Render((*Stroke)(nil), rec)
	assert.Empty(t, rec.Ops())
}

func TestPreviewRender(t *testing.T) {
	bg := color.NRGBA{G: 0x80, A: 0xff}

	rec := paint.NewRecorder(10, 10)
	(&Preview{At: Point{X: 3, Y: 4}, Tool: Tool{Brush: thin, Color: red}}).Render(rec, bg)
	assert.Equal(t, []paint.Op{{
		Kind: paint.OpCircle, X: 3, Y: 4, R: 1, Fill: "#008000", Stroke: "#ff0000", Width: 1,
	}}, rec.Ops())

	rec.Reset()
	(&Preview{At: Point{X: 3, Y: 4}, Tool: ToolFor(carrot)}).Render(rec, bg)
	require.Len(t, rec.Ops(), 1)
	assert.Equal(t, paint.OpText, rec.Ops()[0].Kind)
	assert.Equal(t, 20.0, rec.Ops()[0].Size)

	rec.Reset()
	(*Preview)(nil).Render(rec, bg)
	assert.Empty(t, rec.Ops())
}

func TestClockStamps(t *testing.T) {
	var clock Clock
	a, b := clock.Next(), clock.Next()
	assert.Equal(t, uint64(1), a.Seq)
	assert.Equal(t, uint64(2), b.Seq)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a, StampOf(&Stroke{Stamp: a}))
	assert.Zero(t, StampOf(nil))
}

func TestCatalog(t *testing.T) {
	c := NewCatalog(thin)
	assert.True(t, c.Register(carrot))
	assert.False(t, c.Register(Brush{ID: "thin", Glyph: "x"}), "ids are unique")

	got, ok := c.Lookup("carrot")
	require.True(t, ok)
	assert.Equal(t, carrot, got)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)

	list := c.Brushes()
	list[0].Thickness = 99
	b, _ := c.Lookup("thin")
	assert.Equal(t, 1.0, b.Thickness)
	assert.Equal(t, 2, c.Len())

	got, ok = c.LookupGlyph("🥕")
	require.True(t, ok)
	assert.Equal(t, "carrot", got.ID)
	_, ok = c.LookupGlyph("")
	assert.False(t, ok, "freehand brushes have no glyph to match")

	assert.Equal(t, "sticker-1", c.NextID("sticker"))
	c.Register(Brush{ID: "sticker-1", Glyph: "⭐"})
	assert.Equal(t, "sticker-2", c.NextID("sticker"))
}

func TestBounds(t *testing.T) {
	var clock Clock
	_, ok := Bounds(nil)
	assert.False(t, ok)

	s := stroke(&clock, Point{10, 10}, Point{30, 20})
	s.Thickness = 4
	st := &Sticker{At: Point{50, 50}, Glyph: "x", Size: 10}

	r, ok := Bounds([]Command{s, st})
	require.True(t, ok)
	assert.Equal(t, Rect{X: 8, Y: 8, Width: 47, Height: 47}, r)

	assert.Equal(t, Rect{X: 3, Y: 3, Width: 57, Height: 57}, r.Inset(5))
	assert.Equal(t, Rect{X: 8, Y: 8, Width: 2, Height: 2}, r.Intersect(Rect{Width: 10, Height: 10}))
	assert.True(t, r.Intersect(Rect{X: 100, Y: 100, Width: 1, Height: 1}).Empty())
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.NRGBA{
		"black":     black,
		" Red ":     red,
		"#f00":      red,
		"#ff0000":   red,
		"#ff000080": {R: 0xff, A: 0x80},
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "mauve", "#12", "#gggggg"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}
