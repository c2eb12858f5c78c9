package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
	"Sketchpad/internal/export"
	sknet "Sketchpad/internal/net"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/ui"
)

const usage = `usage: sketchpad [-config file] [-trim padding] [desktop | web | discover | replay events.json out.png|out.pdf]`

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	trim := flag.Float64("trim", 0, "replay: crop a PNG to the drawing plus this much padding")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, *trim, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}
}

func run(configPath string, trim float64, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	fonts, err := paint.LoadFonts(cfg.Canvas.Font, cfg.Canvas.StickerFont)
	if err != nil {
		return err
	}
	warnUncovered(cfg, fonts, log)
	exp := export.Options{Scale: cfg.Canvas.ExportScale, Fonts: fonts}

	mode := "desktop"
	if len(args) > 0 {
		mode = args[0]
	}
	switch mode {
	case "desktop":
		runDesktop(cfg, exp, log)
		return nil
	case "web":
		return runWeb(cfg, exp, log)
	case "discover":
		return runDiscover(log)
	case "replay":
		if len(args) != 3 {
			return errors.New(usage)
		}
		return runReplay(cfg, exp, args[1], args[2], trim, log)
	default:
		return fmt.Errorf("unknown mode %q\n%s", mode, usage)
	}
}

// warnUncovered names catalog stickers the raster and PNG output cannot draw.
func warnUncovered(cfg config.Config, fonts paint.Fonts, log *slog.Logger) {
	for _, br := range cfg.Catalog().Brushes() {
		if br.IsSticker() && !fonts.Covers(br.Glyph) {
			log.Warn("sticker glyph missing from fonts, set canvas.sticker_font to an emoji TTF",
				"brush", br.ID, "glyph", br.Glyph)
		}
	}
}

func runDesktop(cfg config.Config, exp export.Options, log *slog.Logger) {
	log.Info("starting desktop sketchpad")
	opts := board.OptionsFrom(cfg)
	opts.Logger = log
	ui.RunApp(board.New(opts), exp, log)
}

func runWeb(cfg config.Config, exp export.Options, log *slog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Web.Listen)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	fmt.Println("Open", sknet.ShareURL(ln.Addr()))

	if cfg.Web.MDNS {
		port := ln.Addr().(*net.TCPAddr).Port
		srv, err := sknet.Advertise(port)
		if err != nil {
			log.Warn("mdns advertise failed", "err", err)
		} else {
			defer srv.Shutdown()
			log.Info("advertising over mdns", "port", port)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return sknet.NewServer(cfg, exp.Fonts, log).ListenAndServe(ctx, ln)
}

func runDiscover(log *slog.Logger) error {
	urls, err := sknet.Discover(3 * time.Second)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Info("no sketchpads found on the local network")
	}
	for _, url := range urls {
		fmt.Println(url)
	}
	return nil
}

func runReplay(cfg config.Config, exp export.Options, in, out string, trim float64, log *slog.Logger) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open events: %w", err)
	}
	defer f.Close()

	events, err := board.ReadEvents(f)
	if err != nil {
		return err
	}
	opts := board.OptionsFrom(cfg)
	opts.Logger = log
	b := board.New(opts)
	if err := b.Replay(events); err != nil {
		return err
	}
	if err := writeReplay(out, b, exp, trim); err != nil {
		return err
	}
	log.Info("replayed", "events", len(events), "commands", b.History().Len(), "out", out)
	return nil
}

func writeReplay(out string, b *board.Board, exp export.Options, trim float64) (err error) {
	if trim <= 0 || !strings.EqualFold(filepath.Ext(out), ".png") {
		return export.File(out, b, exp)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return export.PNGTrimmed(f, b, exp, trim)
}
