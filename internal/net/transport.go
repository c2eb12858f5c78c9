package net

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
	"Sketchpad/internal/export"
	"Sketchpad/internal/paint"
	"Sketchpad/internal/state"
)

//go:embed static
var static embed.FS

// Message is what the server sends to the page.
type Message struct {
	Type    string      `json:"type"`
	Cause   string      `json:"cause,omitempty"`
	Ops     []paint.Op  `json:"ops,omitempty"`
	Brushes []BrushInfo `json:"brushes,omitempty"`
	Canvas  *CanvasInfo `json:"canvas,omitempty"`
	PNG     string      `json:"png,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type BrushInfo struct {
	ID        string  `json:"id"`
	Thickness float64 `json:"thickness"`
	Color     string  `json:"color"`
	Glyph     string  `json:"glyph,omitempty"`
}

type CanvasInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// EventExport asks for a high-resolution PNG of the page's board. Every
// other request from the page is a board.Event.
const EventExport board.EventType = "export"

// Peer is one connected page and the board it draws on. Each peer's board
// is only touched from that peer's read loop.
type Peer struct {
	ID    string
	Conn  *websocket.Conn
	board *board.Board
	rec   *paint.Recorder
	err   error
}

func (p *Peer) Surface() paint.Surface {
	p.rec.Reset()
	return p.rec
}

func (p *Peer) Present(cause board.Cause) {
	p.send(Message{Type: "frame", Cause: cause.String(), Ops: p.rec.Ops()})
}

// send keeps the first write error; the read loop ends the session on it.
func (p *Peer) send(m Message) {
	if p.err != nil {
		return
	}
	p.Conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	p.err = p.Conn.WriteJSON(m)
}

const writeTimeout = 5 * time.Second

// PeerManager tracks live connections so shutdown can close them.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
}

func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
	}
}

func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[peer.ID] = peer
}

func (pm *PeerManager) Remove(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.peers, peer.ID)
}

func (pm *PeerManager) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll closes every connection, which ends their read loops.
func (pm *PeerManager) CloseAll() {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	for _, p := range pm.peers {
		p.Conn.Close()
	}
}

// Server serves the page and one independent board per websocket.
type Server struct {
	cfg      config.Config
	exp      export.Options
	log      *slog.Logger
	peers    *PeerManager
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config, fonts paint.Fonts, log *slog.Logger) *Server {
	return &Server{
		cfg:   cfg,
		exp:   export.Options{Scale: cfg.Canvas.ExportScale, Fonts: fonts},
		log:   log.With("component", "web"),
		peers: NewPeerManager(),
	}
}

func (s *Server) Peers() *PeerManager { return s.peers }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(mustSub(static, "static")))
	mux.HandleFunc("GET /ws", s.serveWS)
	return mux
}

// ListenAndServe runs until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		s.peers.CloseAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	s.log.Info("listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	peer := &Peer{
		ID:   uuid.NewString(),
		Conn: conn,
		rec:  paint.NewRecorder(float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height)),
	}
	log := s.log.With("peer", peer.ID, "remote", r.RemoteAddr)
	opts := board.OptionsFrom(s.cfg)
	opts.Logger = log
	peer.board = board.New(opts)

	s.peers.Add(peer)
	defer s.peers.Remove(peer)
	log.Info("page connected", "peers", s.peers.Len())

	peer.send(Message{Type: "hello", Canvas: &CanvasInfo{Width: s.cfg.Canvas.Width, Height: s.cfg.Canvas.Height}})
	peer.send(brushMessage(peer.board))
	peer.board.SetDisplay(peer)

	for peer.err == nil {
		var req board.Event
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("page disconnected", "err", err)
			}
			return
		}
		s.handle(peer, req, log)
	}
	log.Warn("write failed", "err", peer.err)
}

func (s *Server) handle(peer *Peer, req board.Event, log *slog.Logger) {
	switch req.Type {
	case EventExport:
		var buf bytes.Buffer
		if err := export.PNG(&buf, peer.board, s.exp); err != nil {
			log.Error("export failed", "err", err)
			peer.send(Message{Type: "error", Error: err.Error()})
			return
		}
		peer.send(Message{Type: "export", PNG: base64.StdEncoding.EncodeToString(buf.Bytes())})
	default:
		if err := peer.board.Apply(req); err != nil {
			log.Debug("bad event", "type", req.Type, "err", err)
			peer.send(Message{Type: "error", Error: err.Error()})
			return
		}
		if req.Type == board.EventSticker {
			peer.send(brushMessage(peer.board))
		}
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

func brushMessage(b *board.Board) Message {
	brushes := b.Brushes()
	infos := make([]BrushInfo, len(brushes))
	for i, br := range brushes {
		infos[i] = brushInfo(br)
	}
	return Message{Type: "brushes", Brushes: infos}
}

func brushInfo(b state.Brush) BrushInfo {
	return BrushInfo{
		ID:        b.ID,
		Thickness: b.Thickness,
		Color:     paint.Hex(b.Color),
		Glyph:     b.Glyph,
	}
}
