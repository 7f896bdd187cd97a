package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/diegok/pongduel/internal/protocol"
)

// WatchPath is the websocket endpoint spectators connect to
const WatchPath = "/watch"

// Hub streams match frames to any number of spectators
type Hub struct {
	addr     string
	log      *slog.Logger
	listener net.Listener
	httpSrv  *http.Server
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	viewers map[string]*Viewer
	last    []byte // Latest snapshot frame, replayed to new viewers
	done    chan struct{}
}

// NewHub creates a hub that will listen on addr
func NewHub(addr string, logger *slog.Logger) *Hub {
	return &Hub{
		addr: addr,
		log:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		viewers: make(map[string]*Viewer),
		done:    make(chan struct{}),
	}
}

// Start begins listening for spectators
func (h *Hub) Start() error {
	listener, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("failed to start spectator hub: %w", err)
	}
	h.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc(WatchPath, h.handleWatch)
	h.httpSrv = &http.Server{Handler: mux}

	go func() {
		if err := h.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Error("spectator hub stopped", "error", err)
		}
	}()

	h.log.Info("spectator hub listening", "addr", listener.Addr().String())
	return nil
}

// Addr returns the address the hub is listening on
func (h *Hub) Addr() string {
	if h.listener == nil {
		return h.addr
	}
	return h.listener.Addr().String()
}

// URL returns the websocket URL spectators should dial
func (h *Hub) URL() string {
	return "ws://" + h.Addr() + WatchPath
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	h.mu.Lock()
	select {
	case <-h.done:
		h.mu.Unlock()
		return
	default:
		close(h.done)
	}
	viewers := h.viewers
	h.viewers = make(map[string]*Viewer)
	h.mu.Unlock()

	if h.httpSrv != nil {
		h.httpSrv.Close()
	}

	// Upgraded connections are hijacked, so the http server does not close them
	for _, v := range viewers {
		v.Close()
	}
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Broadcast encodes msg once and queues it for every spectator.
// Slow spectators miss frames rather than stalling the caller.
func (h *Hub) Broadcast(msg *protocol.Message) error {
	frame, err := protocol.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if msg.Type == protocol.MsgSnapshot {
		h.last = frame
	}
	for _, v := range h.viewers {
		v.Send(frame)
	}
	return nil
}

func (h *Hub) handleWatch(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.done:
		http.Error(w, "hub stopped", http.StatusServiceUnavailable)
		return
	default:
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("spectator upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	v := NewViewer(conn)

	h.mu.Lock()
	select {
	case <-h.done:
		h.mu.Unlock()
		v.Close()
		return
	default:
	}
	if h.last != nil {
		v.Send(h.last)
	}
	h.viewers[v.ID] = v
	count := len(h.viewers)
	h.mu.Unlock()

	h.log.Info("spectator joined", "viewer", v.ID, "remote", r.RemoteAddr, "viewers", count)
	v.StartWriter()

	// Spectators never send anything; reading only detects the disconnect
	h.readLoop(v)
}

func (h *Hub) readLoop(v *Viewer) {
	defer h.remove(v)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(v *Viewer) {
	v.Close()

	h.mu.Lock()
	_, ok := h.viewers[v.ID]
	delete(h.viewers, v.ID)
	count := len(h.viewers)
	h.mu.Unlock()

	if ok {
		h.log.Info("spectator left", "viewer", v.ID, "viewers", count)
	}
}
