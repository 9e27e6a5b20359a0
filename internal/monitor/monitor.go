// Package monitor streams frame snapshots to websocket clients so a
// cube on a bench can be watched from a browser. It is strictly
// read-only: inbound messages are drained and dropped, so a client
// can observe the cube but never drive it.
package monitor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// Frame is one snapshot pushed to clients. Layers is the raw
// active-low storage, 64 bytes Z-major, base64 encoded; a cleared bit
// is a lit LED.
type Frame struct {
	Type   string `json:"type"`
	Frame  uint64 `json:"frame"`
	Mode   int    `json:"mode"`
	Paused bool   `json:"paused"`
	Layers string `json:"layers"`
}

type Server struct {
	fb   *cube.Buffer
	st   *input.State
	rate time.Duration
	log  zerolog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	frameID uint64
}

func New(fb *cube.Buffer, st *input.State, rate time.Duration, log zerolog.Logger) *Server {
	return &Server{
		fb:      fb,
		st:      st,
		rate:    rate,
		log:     log,
		clients: map[*websocket.Conn]bool{},
	}
}

// Handler returns the monitor's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleFrames)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	n := len(s.clients)
	s.mu.Unlock()
	s.log.Info().Str("remote", conn.RemoteAddr().String()).Int("clients", n).Msg("monitor client connected")

	// Drain (and ignore) anything the client sends; the read loop
	// also notices the disconnect.
	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	_ = conn.Close()
}

// Run broadcasts snapshots at the configured rate until ctx is done.
// The frame buffer is read live, same as the scan-out: a snapshot
// taken mid-update is a partial frame, which is fine for a monitor.
func (s *Server) Run(ctx context.Context) {
	t := time.NewTicker(s.rate)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.broadcast()
		}
	}
}

func (s *Server) broadcast() {
	s.mu.Lock()
	if len(s.clients) == 0 {
		s.mu.Unlock()
		return
	}
	s.frameID++
	msg, err := json.Marshal(s.snapshot())
	if err != nil {
		s.mu.Unlock()
		return
	}
	var dead []*websocket.Conn
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(s.clients, conn)
		_ = conn.Close()
	}
	s.mu.Unlock()
}

// snapshot is called with mu held for the frame counter.
func (s *Server) snapshot() Frame {
	rows := s.fb.Snapshot()
	flat := make([]byte, 0, cube.Size*cube.Size)
	for z := 0; z < cube.Size; z++ {
		flat = append(flat, rows[z][:]...)
	}
	return Frame{
		Type:   "frame",
		Frame:  s.frameID,
		Mode:   s.st.Mode,
		Paused: s.st.Paused,
		Layers: base64.StdEncoding.EncodeToString(flat),
	}
}
