package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
	"github.com/roadrush/roadrush/internal/race"
	"github.com/roadrush/roadrush/internal/storage"
)

// Model is the Bubble Tea model running the game.
type Model struct {
	machine  *race.Machine
	renderer *Renderer
	screen   *core.Screen
	runs     *storage.Store // Run history, may be nil
	keys     *KeyMapper
	rt       core.RuntimeConfig
	frame    core.InputFrame
	log      *log.Logger
	quitting bool
	runSaved bool // Whether the current crash has been recorded
}

// NewModel creates a model around a prepared game machine.
func NewModel(machine *race.Machine, cfg *config.GameConfig, runs *storage.Store,
	rt core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		machine:  machine,
		renderer: NewRenderer(cfg),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		runs:     runs,
		keys:     NewKeyMapper(),
		rt:       rt,
		frame:    core.NewInputFrame(),
		log:      logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.machine.TickRate(m.rt))
}

// Update handles messages and advances the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey collects input for the next tick. Terminals deliver no key-up
// events, so keys accumulate in the frame until the tick consumes it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.frame)
	return m, nil
}

// handleTick runs one simulation step and re-arms the timer at the rate the
// current state wants.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.machine.State()
	m.machine.Step(m.frame)
	m.frame.Clear()

	after := m.machine.State()
	if after == race.StateCrashed && before != race.StateCrashed {
		m.recordRun()
	}
	if after != race.StateCrashed {
		m.runSaved = false
	}

	if after == race.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.machine.TickRate(m.rt))
}

// recordRun appends the finished run to the history database.
func (m *Model) recordRun() {
	if m.runSaved || m.runs == nil {
		return
	}
	m.runSaved = true
	sess := m.machine.Session()
	_, err := m.runs.SaveRun(sess.Score().Score(), sess.Difficulty().Name(), sess.Duration())
	if err != nil {
		m.log.Warn("could not record run", "err", err)
	}
}

// saveScreenshot dumps the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.machine)

	dir := filepath.Join(os.Getenv("HOME"), ".roadrush", "screenshots")
	//nolint:errcheck // Best-effort, the game continues regardless
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("roadrush_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.screen, m.machine)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(machine *race.Machine, cfg *config.GameConfig, runs *storage.Store,
	rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(machine, cfg, runs, rt, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
