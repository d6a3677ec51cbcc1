package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/remote"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// RemoteInputMsg carries a direction or jump event from a remote controller.
type RemoteInputMsg struct {
	Action  core.Action
	Pressed bool
}

// RemoteControlMsg carries a session control signal from a remote controller.
type RemoteControlMsg struct {
	Action core.Action
}

// ConfigMsg delivers reloaded tuning. It applies on the next restart.
type ConfigMsg struct {
	Config config.PlatformerConfig
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool
}

// NewModel creates a new model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(holdFramesFor(cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the game and starts both tickers.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if _, ok := m.game.(registry.Clocked); ok {
		cmds = append(cmds, clockCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the view changes; the level is laid out in world units.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ClockMsg:
		if c, ok := m.game.(registry.Clocked); ok {
			c.ClockTick()
			m.gameState = m.game.State()
			m.saveRun()
		}
		return m, clockCmd()

	case RemoteInputMsg:
		if msg.Action == core.ActionJump {
			if msg.Pressed {
				m.inputFrame.Set(core.ActionJump)
			}
			return m, nil
		}
		m.holds.Remote(msg.Action, msg.Pressed)
		return m, nil

	case RemoteControlMsg:
		m.inputFrame.Set(msg.Action)
		return m, nil

	case ConfigMsg:
		if r, ok := m.game.(registry.Reconfigurable); ok {
			r.Reconfigure(msg.Config)
			m.logger.Info("config reloaded, applies on restart")
		}
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.holds) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.holds.Reset()
	}
	m.holds.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveRun()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished session once. A restart re-arms it.
func (m *Model) saveRun() {
	if !m.gameState.GameOver {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Coins:   m.gameState.Coins,
		Lives:   m.gameState.Lives,
		Outcome: storage.OutcomeLoss,
	}
	if m.gameState.Won {
		run.Outcome = storage.OutcomeWin
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// programSink forwards remote controller events into a running program so
// they are handled between ticks.
type programSink struct {
	p *tea.Program
}

func (s programSink) Input(a core.Action, pressed bool) {
	s.p.Send(RemoteInputMsg{Action: a, Pressed: pressed})
}

func (s programSink) Control(a core.Action) {
	s.p.Send(RemoteControlMsg{Action: a})
}

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	logger     *log.Logger
	remoteAddr string
	watchPath  string
}

// WithLogger sets the logger used by the program and its helpers.
func WithLogger(l *log.Logger) RunOption {
	return func(o *runOptions) { o.logger = l }
}

// WithRemote serves remote controllers on addr while the game runs.
func WithRemote(addr string) RunOption {
	return func(o *runOptions) { o.remoteAddr = addr }
}

// WithConfigWatch reloads the config file at path whenever it changes.
func WithConfigWatch(path string) RunOption {
	return func(o *runOptions) { o.watchPath = path }
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...RunOption) error {
	o := runOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "platformer"})
	}

	model := NewModel(game, store, cfg, o.logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if o.remoteAddr != "" {
		srv := remote.NewServer(o.remoteAddr, programSink{p: p}, o.logger)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				o.logger.Error("remote controller endpoint stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			//nolint:errcheck // Best-effort shutdown on exit
			srv.Shutdown(shutdownCtx)
		}()
	}

	if o.watchPath != "" {
		w, err := config.NewWatcher(o.watchPath)
		if err != nil {
			return err
		}
		go w.Run(ctx,
			func(c config.PlatformerConfig) { p.Send(ConfigMsg{Config: c}) },
			func(err error) { o.logger.Warn("ignoring config change", "error", err) },
		)
	}

	_, err := p.Run()
	return err
}
