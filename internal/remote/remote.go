// Package remote accepts phone-style controllers over WebSocket and turns
// their events into platformer input and session control.
//
// A controller sends JSON text frames:
//
//	{"type":"game-input","action":"left","state":"start"}
//	{"type":"game-input","action":"left","state":"end"}
//	{"type":"game-input","action":"jump","state":"start"}
//	{"type":"game-started"}
//	{"type":"game-paused"}
//	{"type":"game-resumed"}
//	{"type":"game-restart"}
//
// Unknown messages are dropped. A controller that disconnects leaves its
// last input in place.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Message types sent by controllers.
const (
	TypeInput   = "game-input"
	TypeStart   = "game-started"
	TypePause   = "game-paused"
	TypeResume  = "game-resumed"
	TypeRestart = "game-restart"

	// TypeConnected is sent back to every controller when the count changes.
	TypeConnected = "controller-connected"
)

const (
	readLimit    = 4 << 10
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

// Message is one controller event.
type Message struct {
	Type   string `json:"type"`
	Action string `json:"action,omitempty"`
	State  string `json:"state,omitempty"`
}

// Status is sent to controllers when one connects.
type Status struct {
	Type            string `json:"type"`
	ControllerCount int    `json:"controllerCount"`
}

// Sink receives decoded controller events. Implementations must be safe to
// call from connection goroutines.
type Sink interface {
	// Input reports a direction press/release or a jump press.
	Input(a core.Action, pressed bool)
	// Control reports a session control signal.
	Control(a core.Action)
}

// Dispatch forwards msg to sink. It reports false for messages it does not
// understand.
func Dispatch(msg Message, sink Sink) bool {
	switch msg.Type {
	case TypeInput:
		var a core.Action
		switch msg.Action {
		case "left":
			a = core.ActionLeft
		case "right":
			a = core.ActionRight
		case "jump":
			a = core.ActionJump
		default:
			return false
		}
		switch msg.State {
		case "start":
			sink.Input(a, true)
		case "end":
			sink.Input(a, false)
		default:
			return false
		}
	case TypeStart:
		sink.Control(core.ActionStart)
	case TypePause:
		sink.Control(core.ActionPauseOnly)
	case TypeResume:
		sink.Control(core.ActionResume)
	case TypeRestart:
		sink.Control(core.ActionRestart)
	default:
		return false
	}
	return true
}

// Server accepts controller connections on /ws.
type Server struct {
	sink     Sink
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewServer creates a server that listens on addr and feeds sink.
func NewServer(addr string, sink Sink, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		sink:   sink,
		logger: logger,
		upgrader: websocket.Upgrader{
			// Controllers are served from other origins (phones on the LAN).
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler serving the controller endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("remote controller endpoint listening", "address", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting controllers and closes the open connections.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	s.mu.Lock()
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	return err
}

// Controllers returns the number of connected controllers.
func (s *Server) Controllers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("controller upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	count := s.track(conn, true)
	s.logger.Info("controller connected", "remote", r.RemoteAddr, "controllers", count)
	defer func() {
		count := s.track(conn, false)
		conn.Close()
		s.logger.Info("controller disconnected", "remote", r.RemoteAddr, "controllers", count)
	}()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(Status{Type: TypeConnected, ControllerCount: count}); err != nil {
		return
	}

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go s.ping(conn, done)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("controller read failed", "remote", r.RemoteAddr, "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("dropping malformed controller message", "remote", r.RemoteAddr, "error", err)
			continue
		}
		if !Dispatch(msg, s.sink) {
			s.logger.Debug("dropping unknown controller message", "remote", r.RemoteAddr, "type", msg.Type)
		}
	}
}

func (s *Server) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// track adds or removes conn and returns the resulting count.
func (s *Server) track(conn *websocket.Conn, add bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
	} else {
		delete(s.conns, conn)
	}
	return len(s.conns)
}
