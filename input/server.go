package input

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/gargantua/components"
)

// Server accepts hand landmark frames over websocket and publishes them to
// a Slot. It is the adapter between an external detection pipeline and the
// simulation.
type Server struct {
	addr      string
	slot      *Slot
	readLimit int64
	upgrader  websocket.Upgrader

	clients  atomic.Int32
	accepted atomic.Uint64
	rejected atomic.Uint64
}

// NewServer creates a server publishing into slot.
func NewServer(addr string, slot *Slot, readLimit int64) *Server {
	return &Server{
		addr:      addr,
		slot:      slot,
		readLimit: readLimit,
		upgrader: websocket.Upgrader{
			// The detection page is usually served from another origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP routes served by the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/hands", s.handleHands)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("hand input server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Clients returns the number of connected producers.
func (s *Server) Clients() int {
	return int(s.clients.Load())
}

// Counts returns how many frames were accepted and rejected.
func (s *Server) Counts() (accepted, rejected uint64) {
	return s.accepted.Load(), s.rejected.Load()
}

func (s *Server) handleHands(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	if s.readLimit > 0 {
		conn.SetReadLimit(s.readLimit)
	}

	n := s.clients.Add(1)
	slog.Info("hand producer connected", "remote", r.RemoteAddr, "clients", n)
	defer func() {
		n := s.clients.Add(-1)
		// Losing the last tracker is the same as seeing no hands
		if n == 0 {
			s.slot.Put(components.Observation{})
		}
		slog.Info("hand producer disconnected", "remote", r.RemoteAddr, "clients", n)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", "remote", r.RemoteAddr, "error", err)
			}
			return
		}

		obs, err := DecodeFrame(data)
		if err != nil {
			s.rejected.Add(1)
			slog.Warn("dropping malformed frame", "remote", r.RemoteAddr, "error", err)
			continue
		}
		s.accepted.Add(1)
		s.slot.Put(obs)
	}
}
