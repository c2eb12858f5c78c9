package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"Sketchpad/internal/state"
)

// Config is the sketchpad configuration file.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Log     Log     `toml:"log"`
	Web     Web     `toml:"web"`
	Brushes []Brush `toml:"brush"`
}

type Canvas struct {
	Width             int     `toml:"width"`
	Height            int     `toml:"height"`
	Background        string  `toml:"background"`
	ExportScale       float64 `toml:"export_scale"`
	Font              string  `toml:"font"`
	// StickerFont is a TrueType file used for glyphs Font lacks. Go Regular
	// has no emoji, so the default stickers need a monochrome emoji font such
	// as Noto Emoji here to render outside the browser.
	StickerFont       string  `toml:"sticker_font"`
	CustomStickerSize float64 `toml:"custom_sticker_size"`
}

type Log struct {
	Level string `toml:"level"`
}

type Web struct {
	Listen string `toml:"listen"`
	MDNS   bool   `toml:"mdns"`
}

type Brush struct {
	ID        string  `toml:"id"`
	Thickness float64 `toml:"thickness"`
	Color     string  `toml:"color"`
	Glyph     string  `toml:"glyph"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:             256,
			Height:            256,
			Background:        "green",
			ExportScale:       4,
			CustomStickerSize: 20,
		},
		Log: Log{Level: "info"},
		Web: Web{Listen: ":8888"},
		Brushes: []Brush{
			{ID: "thin", Thickness: 1, Color: "black"},
			{ID: "thick", Thickness: 5, Color: "black"},
			{ID: "carrot", Thickness: 20, Color: "black", Glyph: "🥕"},
			{ID: "corn", Thickness: 20, Color: "black", Glyph: "🌽"},
			{ID: "tomato", Thickness: 20, Color: "black", Glyph: "🍅"},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// A file that lists any [[brush]] replaces the whole default catalog.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.merge(file, md)
	return cfg, cfg.Validate()
}

func (c *Config) merge(f Config, md toml.MetaData) {
	if md.IsDefined("canvas", "width") {
		c.Canvas.Width = f.Canvas.Width
	}
	if md.IsDefined("canvas", "height") {
		c.Canvas.Height = f.Canvas.Height
	}
	if md.IsDefined("canvas", "background") {
		c.Canvas.Background = f.Canvas.Background
	}
	if md.IsDefined("canvas", "export_scale") {
		c.Canvas.ExportScale = f.Canvas.ExportScale
	}
	if md.IsDefined("canvas", "font") {
		c.Canvas.Font = f.Canvas.Font
	}
	if md.IsDefined("canvas", "sticker_font") {
		c.Canvas.StickerFont = f.Canvas.StickerFont
	}
	if md.IsDefined("canvas", "custom_sticker_size") {
		c.Canvas.CustomStickerSize = f.Canvas.CustomStickerSize
	}
	if md.IsDefined("log", "level") {
		c.Log.Level = f.Log.Level
	}
	if md.IsDefined("web", "listen") {
		c.Web.Listen = f.Web.Listen
	}
	if md.IsDefined("web", "mdns") {
		c.Web.MDNS = f.Web.MDNS
	}
	if len(f.Brushes) > 0 {
		c.Brushes = f.Brushes
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := state.ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas background: %w", err))
	}
	if c.Canvas.ExportScale <= 0 {
		errs = append(errs, fmt.Errorf("export_scale must be positive, got %v", c.Canvas.ExportScale))
	}
	if c.Canvas.CustomStickerSize <= 0 {
		errs = append(errs, fmt.Errorf("custom_sticker_size must be positive, got %v", c.Canvas.CustomStickerSize))
	}
	if _, err := ResolveLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(c.Brushes) == 0 {
		errs = append(errs, errors.New("at least one brush is required"))
	}
	seen := make(map[string]bool, len(c.Brushes))
	for _, b := range c.Brushes {
		if b.ID == "" {
			errs = append(errs, errors.New("brush without id"))
			continue
		}
		if seen[b.ID] {
			errs = append(errs, fmt.Errorf("duplicate brush %q", b.ID))
		}
		seen[b.ID] = true
		if b.Thickness <= 0 {
			errs = append(errs, fmt.Errorf("brush %q: thickness must be positive", b.ID))
		}
		if _, err := state.ParseColor(b.Color); err != nil {
			errs = append(errs, fmt.Errorf("brush %q: %w", b.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Background returns the parsed canvas colour. Call Validate first.
func (c Config) Background() color.NRGBA {
	bg, _ := state.ParseColor(c.Canvas.Background)
	return bg
}

// Catalog builds the brush catalog. Call Validate first.
func (c Config) Catalog() *state.Catalog {
	brushes := make([]state.Brush, 0, len(c.Brushes))
	for _, b := range c.Brushes {
		col, _ := state.ParseColor(b.Color)
		brushes = append(brushes, state.Brush{
			ID:        b.ID,
			Thickness: b.Thickness,
			Color:     col,
			Glyph:     b.Glyph,
		})
	}
	return state.NewCatalog(brushes...)
}
