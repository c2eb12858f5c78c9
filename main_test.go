package main

import (
	"bytes"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sketchpad/internal/config"
	"Sketchpad/internal/paint"
)

const events = `[
	{"type": "down", "x": 100, "y": 100},
	{"type": "move", "x": 120, "y": 110},
	{"type": "up"},
	{"type": "brush", "brush": "carrot"},
	{"type": "down", "x": 30, "y": 30}
]`

func writeEvents(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReplayToPNG(t *testing.T) {
	in := writeEvents(t, events)
	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, run("", 0, []string{"replay", in, out}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
}

func TestReplayTrimmed(t *testing.T) {
	in := writeEvents(t, `[{"type": "down", "x": 10, "y": 10}, {"type": "up"}]`)
	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, run("", 2, []string{"replay", in, out}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Less(t, img.Bounds().Dx(), 1024)
}

func TestReplayToPDF(t *testing.T) {
	in := writeEvents(t, events)
	out := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, run("", 0, []string{"replay", in, out}))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestReplayReportsBadEvent(t *testing.T) {
	in := writeEvents(t, `[{"type": "brush", "brush": "nope"}]`)
	err := run("", 0, []string{"replay", in, filepath.Join(t.TempDir(), "out.png")})
	assert.ErrorContains(t, err, "event 0 (brush)")
}

func TestWarnUncoveredNamesDefaultStickers(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := config.Default()
	fonts, err := paint.LoadFonts("", "")
	require.NoError(t, err)

	warnUncovered(cfg, fonts, log)
	out := buf.String()
	for _, id := range []string{"carrot", "corn", "tomato"} {
		assert.Contains(t, out, "brush="+id)
	}
	assert.NotContains(t, out, "brush=thin")
}

func TestRunUsageErrors(t *testing.T) {
	assert.Error(t, run("", 0, []string{"replay", "only-one"}))
	assert.ErrorContains(t, run("", 0, []string{"paint"}), `unknown mode "paint"`)
	assert.ErrorContains(t, run(filepath.Join(t.TempDir(), "missing.toml"), 0, nil), "read config")
}
