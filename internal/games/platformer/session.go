package platformer

import "github.com/vovakirdan/tui-platformer/internal/config"

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome tells how an ended session finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// HUD is the snapshot of the four displayed counters.
type HUD struct {
	Score int
	Coins int
	Time  int
	Lives int
}

// HUDSink receives the counters after every change.
type HUDSink interface {
	UpdateHUD(HUD)
}

// Session tracks the lifecycle and the score, coin, life and time counters.
// Counters only change while running; once ended only a restart moves the
// session on.
type Session struct {
	rules   config.SessionConfig
	state   State
	outcome Outcome

	score    int
	coins    int
	lives    int
	timeLeft int

	hud HUDSink
}

// NewSession creates an idle session. hud may be nil.
func NewSession(rules config.SessionConfig, hud HUDSink) *Session {
	s := &Session{rules: rules, hud: hud}
	s.reset()
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Score() int { return s.score }
func (s *Session) Coins() int { return s.coins }
func (s *Session) Lives() int { return s.lives }
func (s *Session) TimeLeft() int { return s.timeLeft }
func (s *Session) Running() bool { return s.state == StateRunning }
func (s *Session) Ended() bool { return s.state == StateEnded }
func (s *Session) Rules() config.SessionConfig { return s.rules }

// HUD returns the current counters.
func (s *Session) HUD() HUD {
	return HUD{Score: s.score, Coins: s.coins, Time: s.timeLeft, Lives: s.lives}
}

func (s *Session) reset() {
	s.score = 0
	s.coins = 0
	s.lives = s.rules.Lives
	s.timeLeft = s.rules.Time
	s.outcome = OutcomeNone
}

// Start moves an idle session to running. Other states are left alone.
func (s *Session) Start() bool {
	if s.state != StateIdle {
		return false
	}
	s.reset()
	s.state = StateRunning
	s.notify()
	return true
}

// Restart resets every counter and enters running from any state.
func (s *Session) Restart() {
	s.reset()
	s.state = StateRunning
	s.notify()
}

// Pause suspends a running session.
func (s *Session) Pause() bool {
	if s.state != StateRunning {
		return false
	}
	s.state = StatePaused
	return true
}

// Resume continues a paused session.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.state = StateRunning
	return true
}

// AddScore awards points.
func (s *Session) AddScore(points int) {
	if s.state != StateRunning {
		return
	}
	s.score += points
	s.notify()
}

// CollectCoin counts a picked up coin, awards its points and trades a full
// purse for an extra life.
func (s *Session) CollectCoin() {
	if s.state != StateRunning {
		return
	}
	s.coins++
	s.score += s.rules.CoinPoints
	if s.coins >= s.rules.CoinsPerLife {
		s.coins = 0
		s.lives++
	}
	s.notify()
}

// LoseLife takes a life. It returns true when the session continues and
// the caller should respawn; on the last life the session ends as a loss.
func (s *Session) LoseLife() bool {
	if s.state != StateRunning {
		return false
	}
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.end(OutcomeLoss)
		return false
	}
	s.notify()
	return true
}

// ResetClock refills the countdown.
func (s *Session) ResetClock() {
	if s.state != StateRunning {
		return
	}
	s.timeLeft = s.rules.Time
	s.notify()
}

// Tick counts one second off the clock while running. It reports expiry;
// the counter never goes below zero.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.notify()
		return true
	}
	s.notify()
	return false
}

// End finishes a running or paused session with the given outcome.
func (s *Session) End(o Outcome) {
	if s.state != StateRunning && s.state != StatePaused {
		return
	}
	s.end(o)
}

func (s *Session) end(o Outcome) {
	s.state = StateEnded
	s.outcome = o
	s.notify()
}

func (s *Session) notify() {
	if s.hud != nil {
		s.hud.UpdateHUD(s.HUD())
	}
}
