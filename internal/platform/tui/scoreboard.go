package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/procroids/internal/registry"
	"github.com/vovakirdan/procroids/internal/storage"
)

const (
	maxScores   = 100
	recentKills = 5
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top scores of each mode and, for modes that
// terminate processes, the latest kill audit entries.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	cursor   int
	store    *storage.Store
	scores   []storage.ScoreEntry
	kills    []storage.KillRecord
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard starting at the given mode.
// An unknown or empty mode starts at the first registered one.
func NewScoreboardModel(store *storage.Store, mode string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, g := range m.modes {
		if g.ID == mode {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// Mode returns the ID of the selected mode, or "" when none is registered.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Kills", Width: 7},
		{Title: "Date", Width: 14},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load refreshes scores and kills for the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.kills = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.Mode()
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if tracksKills(id) {
			if kills, err := m.store.RecentKills(recentKills); err == nil {
				m.kills = kills
			}
		}
	}
	m.updateTableRows()
}

// tracksKills reports whether a mode terminates processes.
func tracksKills(mode string) bool {
	return mode == "procroids"
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Kills),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.modes)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.modes)) % len(m.modes)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

var tabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

var activeTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Italic(true).
	Padding(1, 2)

var killStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.modes[m.cursor].Title)
	}
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if len(m.kills) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(panelStyle.Render(m.renderKills()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderKills() string {
	var b strings.Builder
	b.WriteString("Recent kills\n")
	for i, k := range m.kills {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s  pid %-7d %s", k.CreatedAt.Format("15:04:05"), k.PID, k.Method)
		if k.Error != "" {
			line += "  (" + k.Error + ")"
		}
		b.WriteString(killStyle.Render(line))
	}
	return b.String()
}

// centerText pads text so it is centered within width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	lines := strings.Split(text, "\n")
	pad := strings.Repeat(" ", (width-w)/2)
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, mode string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, mode, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
