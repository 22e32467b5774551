package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roadrush/roadrush/internal/storage"
)

const maxRuns = 100 // Max history rows to load

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for browsing the run history.
type ScoreboardModel struct {
	store   *storage.Store
	filters []string // "" (all) followed by difficulty names
	cursor  int
	runs    []storage.RunRecord
	stats   map[string]*storage.RunStats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
}

// NewScoreboardModel creates a scoreboard over the run history, filterable
// by difficulty.
func NewScoreboardModel(store *storage.Store, difficulties []string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:   store,
		filters: append([]string{""}, difficulties...),
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates the history table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Difficulty", Width: 12},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadRuns refreshes the table for the active difficulty filter.
func (m *ScoreboardModel) loadRuns() {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}
	runs, err := m.store.TopRuns(m.filters[m.cursor], maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// statsLine summarizes the runs under the active filter.
func (m ScoreboardModel) statsLine() string {
	var played int
	var best int
	var total int64
	for name, st := range m.stats {
		if f := m.filters[m.cursor]; f != "" && f != name {
			continue
		}
		played += st.RunCount
		total += st.TotalScore
		if st.HighScore > best {
			best = st.HighScore
		}
	}
	if played == 0 {
		return ""
	}
	avg := float64(total) / float64(played)
	return fmt.Sprintf("%d runs   best %d   avg %.1f", played, best, avg)
}

// updateTableRows rebuilds the table from the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Difficulty,
			fmt.Sprintf("%dm%02ds", r.Duration/60, r.Duration%60),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// filterTitle names the active filter for the header.
func (m ScoreboardModel) filterTitle() string {
	if m.filters[m.cursor] == "" {
		return "all difficulties"
	}
	return m.filters[m.cursor]
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 8)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("205")).
		Render(fmt.Sprintf("ROAD RUSH - best runs (%s)", m.filterTitle()))

	body := m.table.View()
	if len(m.runs) == 0 {
		body = lipgloss.NewStyle().Faint(true).Render("\n  no runs recorded yet - go race!\n")
	}

	footer := m.help.View(m.keys)
	if line := m.statsLine(); line != "" {
		footer = lipgloss.NewStyle().Faint(true).Render(line) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		footer,
	)
}
