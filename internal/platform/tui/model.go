package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/registry"
	"github.com/vovakirdan/procroids/internal/storage"
)

// CuePlayer plays the sound for a simulation cue.
type CuePlayer interface {
	Play(c core.Cue)
}

// resizer is implemented by games that can follow a terminal resize
// without starting a new round.
type resizer interface {
	Resize(w, h int)
}

// killCounter is implemented by modes that track terminated processes.
type killCounter interface {
	Kills() int
}

// Options configures a Model. Zero values are valid: no storage, no sound,
// a discarding logger and the default hold window.
type Options struct {
	Store         *storage.Store
	Sound         CuePlayer
	Logger        *log.Logger
	HoldWindow    time.Duration
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      CuePlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	lastShot   string
	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		sound:      opts.Sound,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		shotDir:    shotDir,
	}
}

// fieldHeight leaves the last terminal row for the help bar.
func fieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// gameConfig is the runtime config the game sees.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = fieldHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.hold.Press(action, now, &m.inputFrame)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, fieldHeight(msg.Height))
		return m, nil
	}

	// Games laid out in screen cells start a new round.
	if !m.gameState.GameOver {
		m.hold.Reset()
		m.inputFrame.Clear()
		m.game.Reset(m.gameConfig())
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, &m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, c := range result.Cues {
			m.sound.Play(c)
		}
	}

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.hold.Reset()
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round. Failures are logged and ignored.
func (m Model) saveScore() {
	kills := 0
	if kc, ok := m.game.(killCounter); ok {
		kills = kc.Kills()
	}
	m.logger.Info("game over", "mode", m.game.ID(), "score", m.gameState.Score, "kills", kills)
	if m.store == nil || (m.gameState.Score == 0 && kills == 0) {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, kills); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "procroids-screenshots")
	}
	return filepath.Join(home, ".procroids", "screenshots")
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// LastScreenshot returns the path of the most recent screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	if m.config.ScreenH > 1 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// Games holding resources are closed afterwards.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if c, ok := game.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil && opts.Logger != nil {
				opts.Logger.Warn("closing game", "error", err)
			}
		}()
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
