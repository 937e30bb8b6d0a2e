package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

// holdDuration is how long a direction stays held after its last key press.
// Terminals report presses and auto-repeats but never releases, so a held
// key is one that keeps repeating within this window.
const holdDuration = 150 * time.Millisecond

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool
	keys      KeyMap
	help      help.Model
	logger    *log.Logger

	held      map[core.Action]int // direction -> ticks left
	holdTicks int
	edges     core.InputFrame // one-shot actions for the next tick

	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The last screen row is reserved for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		held:      make(map[core.Action]int),
		holdTicks: holdTicksFor(cfg.TickRate),
		edges:     core.NewInputFrame(),
	}
}

// holdTicksFor converts holdDuration to whole ticks, minimum one.
func holdTicksFor(tickRate int) int {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return max(1, int(holdDuration*time.Duration(tickRate)/time.Second))
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case isDirection(action):
		delete(m.held, opposite(action))
		m.held[action] = m.holdTicks
	default:
		m.edges.Set(action)
	}
	return m, nil
}

// restart begins a new session, with a new seed unless one was given.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.logger.Info("session restarted", "game", m.game.ID(), "score", m.gameState.Score, "seed", m.config.Seed)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	clear(m.held)
	m.edges.Clear()
}

// handleResize processes window resize events. The game keeps running;
// only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.gameState = result.State
	return m, tickCmd(m.config.TickRate)
}

// frame builds this tick's input: held directions plus one-shot actions.
// Held directions count down and are released when they reach zero.
func (m *Model) frame() core.InputFrame {
	in := m.edges.Clone()
	m.edges.Clear()
	for a, left := range m.held {
		in.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}
	return in
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
