package remote

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type event struct {
	action  core.Action
	pressed bool
	control bool
}

type recorder struct {
	mu     sync.Mutex
	events []event
	notify chan struct{}
}

func newRecorder() *recorder {
	return &recorder{notify: make(chan struct{}, 64)}
}

func (r *recorder) Input(a core.Action, pressed bool) {
	r.add(event{action: a, pressed: pressed})
}

func (r *recorder) Control(a core.Action) {
	r.add(event{action: a, control: true})
}

func (r *recorder) add(e event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	r.notify <- struct{}{}
}

func (r *recorder) waitFor(t *testing.T, n int) []event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		r.mu.Lock()
		got := len(r.events)
		r.mu.Unlock()
		if got >= n {
			break
		}
		select {
		case <-r.notify:
		case <-deadline:
			t.Fatalf("timed out waiting for %d events, got %d", n, got)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.events...)
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		ok   bool
		want event
	}{
		{"left press", Message{Type: TypeInput, Action: "left", State: "start"}, true, event{action: core.ActionLeft, pressed: true}},
		{"left release", Message{Type: TypeInput, Action: "left", State: "end"}, true, event{action: core.ActionLeft}},
		{"right press", Message{Type: TypeInput, Action: "right", State: "start"}, true, event{action: core.ActionRight, pressed: true}},
		{"jump", Message{Type: TypeInput, Action: "jump", State: "start"}, true, event{action: core.ActionJump, pressed: true}},
		{"start", Message{Type: TypeStart}, true, event{action: core.ActionStart, control: true}},
		{"pause", Message{Type: TypePause}, true, event{action: core.ActionPauseOnly, control: true}},
		{"resume", Message{Type: TypeResume}, true, event{action: core.ActionResume, control: true}},
		{"restart", Message{Type: TypeRestart}, true, event{action: core.ActionRestart, control: true}},
		{"unknown action", Message{Type: TypeInput, Action: "duck", State: "start"}, false, event{}},
		{"unknown state", Message{Type: TypeInput, Action: "left", State: "hold"}, false, event{}},
		{"unknown type", Message{Type: "create-room"}, false, event{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecorder()
			if got := Dispatch(tc.msg, rec); got != tc.ok {
				t.Fatalf("Dispatch() = %v, expected %v", got, tc.ok)
			}
			if !tc.ok {
				if len(rec.events) != 0 {
					t.Errorf("rejected message reached the sink: %+v", rec.events)
				}
				return
			}
			if len(rec.events) != 1 || rec.events[0] != tc.want {
				t.Errorf("events = %+v, expected %+v", rec.events, tc.want)
			}
		})
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServerForwardsControllerEvents(t *testing.T) {
	rec := newRecorder()
	s := NewServer("", rec, log.New(io.Discard))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)

	var status Status
	if err := conn.ReadJSON(&status); err != nil {
		t.Fatalf("reading status failed: %v", err)
	}
	if status.Type != TypeConnected || status.ControllerCount != 1 {
		t.Errorf("status = %+v, expected one connected controller", status)
	}

	frames := []string{
		`{"type":"game-started"}`,
		`not json`,
		`{"type":"game-input","action":"right","state":"start"}`,
		`{"type":"controller-ping"}`,
		`{"type":"game-input","action":"jump","state":"start"}`,
		`{"type":"game-input","action":"right","state":"end"}`,
		`{"type":"game-paused"}`,
	}
	for _, f := range frames {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	got := rec.waitFor(t, 5)
	want := []event{
		{action: core.ActionStart, control: true},
		{action: core.ActionRight, pressed: true},
		{action: core.ActionJump, pressed: true},
		{action: core.ActionRight},
		{action: core.ActionPauseOnly, control: true},
	}
	if len(got) != len(want) {
		t.Fatalf("events = %+v, expected %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestServerCountsControllers(t *testing.T) {
	s := NewServer("", newRecorder(), log.New(io.Discard))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	a := dial(t, srv)
	var status Status
	a.ReadJSON(&status)

	b := dial(t, srv)
	if err := b.ReadJSON(&status); err != nil {
		t.Fatalf("reading status failed: %v", err)
	}
	if status.ControllerCount != 2 {
		t.Errorf("second controller saw count %d, expected 2", status.ControllerCount)
	}

	b.Close()
	deadline := time.Now().Add(2 * time.Second)
	for s.Controllers() != 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := s.Controllers(); n != 1 {
		t.Errorf("controllers after disconnect = %d, expected 1", n)
	}
}
