package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	rc     core.RuntimeConfig
	frames []core.InputFrame
	state  core.GameState
	cues   []core.Cue
	kills  int
	closed bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Kills() int    { return g.kills }

func (g *stubGame) Reset(rc core.RuntimeConfig) {
	g.resets++
	g.rc = rc
	g.state = core.GameState{Lives: 3}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Close() error {
	g.closed = true
	return nil
}

type recordingSound struct {
	played []core.Cue
}

func (r *recordingSound) Play(c core.Cue) {
	r.played = append(r.played, c)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}
}

func step(t *testing.T, m Model, now time.Time) Model {
	t.Helper()
	next, cmd := m.handleTick(now)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	if g.rc.ScreenH != 11 || g.rc.ScreenW != 40 {
		t.Errorf("game sees %dx%d, want 40x11", g.rc.ScreenW, g.rc.ScreenH)
	}

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	if !strings.HasPrefix(lines[0], "stub") {
		t.Errorf("first line = %q, want the game frame", lines[0])
	}
	if !strings.Contains(lines[11], "thrust") {
		t.Errorf("help row = %q, want key help", lines[11])
	}
}

func TestModelPressAndSynthesisedRelease(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{HoldWindow: 100 * time.Millisecond})
	m.Init()
	t0 := time.Unix(100, 0)

	next, _ := m.handleKey(runeKey("w"), t0)
	m = next.(Model)
	next, _ = m.handleKey(runeKey("w"), t0.Add(40*time.Millisecond))
	m = next.(Model)
	m = step(t, m, t0.Add(50*time.Millisecond))
	m = step(t, m, t0.Add(100*time.Millisecond))
	m = step(t, m, t0.Add(140*time.Millisecond))

	if len(g.frames) != 3 {
		t.Fatalf("stepped %d times, want 3", len(g.frames))
	}
	first := g.frames[0].Events
	if len(first) != 1 || first[0] != (core.InputEvent{Action: core.ActionThrust, Pressed: true}) {
		t.Errorf("frame 0 = %v, want one thrust press", first)
	}
	if len(g.frames[1].Events) != 0 {
		t.Errorf("frame 1 = %v, want nothing while held", g.frames[1].Events)
	}
	last := g.frames[2].Events
	if len(last) != 1 || last[0] != (core.InputEvent{Action: core.ActionThrust, Pressed: false}) {
		t.Errorf("frame 2 = %v, want one thrust release", last)
	}
}

func TestModelRestartOnlyWhenGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()
	now := time.Unix(0, 0)

	next, _ := m.handleKey(runeKey("r"), now)
	m = step(t, next.(Model), now)
	if g.frames[0].Has(core.ActionRestart) {
		t.Error("restart should be ignored during play")
	}

	g.state.GameOver = true
	m = step(t, m, now)
	next, _ = m.handleKey(runeKey("r"), now)
	step(t, next.(Model), now)
	if !g.frames[2].Has(core.ActionRestart) {
		t.Error("restart should be forwarded after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testRuntime(), Options{})
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelPlaysCues(t *testing.T) {
	g := &stubGame{cues: []core.Cue{core.CueFire, core.CueExplosion}}
	sound := &recordingSound{}
	m := NewModel(g, testRuntime(), Options{Sound: sound})
	m.Init()
	step(t, m, time.Unix(0, 0))

	if len(sound.played) != 2 || sound.played[0] != core.CueFire || sound.played[1] != core.CueExplosion {
		t.Errorf("played = %v, want [fire explosion]", sound.played)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{kills: 4}
	m := NewModel(g, testRuntime(), Options{Store: store})
	m.Init()
	now := time.Unix(0, 0)

	g.state = core.GameState{Score: 320, GameOver: true}
	m = step(t, m, now)
	m = step(t, m, now)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 320 || scores[0].Kills != 4 {
		t.Errorf("saved %+v, want score 320 with 4 kills", scores[0])
	}

	// A new round ends and is saved again.
	g.state = core.GameState{Lives: 3}
	m = step(t, m, now)
	g.state = core.GameState{Score: 10, GameOver: true}
	step(t, m, now)

	scores, _ = store.TopScores("stub", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d scores after two rounds, want 2", len(scores))
	}
}

func TestModelResizeResetsRound(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if g.rc.ScreenW != 60 || g.rc.ScreenH != 19 {
		t.Errorf("game sees %dx%d, want 60x19", g.rc.ScreenW, g.rc.ScreenH)
	}

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.resets != 2 {
		t.Error("an unchanged size should not reset the round")
	}
}

type resizingGame struct {
	stubGame
	w, h int
}

func (g *resizingGame) Resize(w, h int) {
	g.w, g.h = w, h
}

func TestModelResizeKeepsRoundWhenSupported(t *testing.T) {
	g := &resizingGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.w != 100 || g.h != 29 {
		t.Errorf("Resize(%d, %d), want (100, 29)", g.w, g.h)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&stubGame{}, testRuntime(), Options{ScreenshotDir: dir})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	path := next.(Model).LastScreenshot()
	if path == "" {
		t.Fatal("no screenshot recorded")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot starts with %q, want the game frame", string(data[:10]))
	}
}
