package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/procroids/internal/core"
)

// DefaultHoldWindow is how long a held action survives without a key
// repeat before a release is synthesised.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Thrust      key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Fire        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Debug       key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "thrust"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f1", "`"),
			key.WithHelp("f1", "colliders"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.RotateLeft, k.RotateRight, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.RotateLeft, k.RotateRight, k.Fire},
		{k.Pause, k.Restart, k.Debug, k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Debug):
		return core.ActionDebug
	}
	return core.ActionNone
}

// held lists the actions that have press/release semantics, in the order
// releases are emitted.
var held = [...]core.Action{
	core.ActionThrust,
	core.ActionRotateLeft,
	core.ActionRotateRight,
}

// isHeld reports whether a has press/release semantics.
func isHeld(a core.Action) bool {
	for _, h := range held {
		if h == a {
			return true
		}
	}
	return false
}

// HoldTracker turns a stream of key presses and terminal auto-repeats into
// press and release events. The first press of a held action emits a Press.
// Repeats only refresh the deadline. Once an action goes a full window
// without a repeat, Expire emits its Release.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time, len(held)),
	}
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// Press records a key press at now and appends the resulting events.
// Actions without hold semantics are passed through as a single press.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		frame.Press(a)
		return
	}
	if _, down := h.lastSeen[a]; !down {
		frame.Press(a)
	}
	h.lastSeen[a] = now
}

// Expire appends a Release for every held action whose window has elapsed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for _, a := range held {
		last, down := h.lastSeen[a]
		if !down || now.Sub(last) < h.window {
			continue
		}
		delete(h.lastSeen, a)
		frame.Release(a)
	}
}

// Held reports whether a is currently considered held down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, down := h.lastSeen[a]
	return down
}

// Reset forgets every held action without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
}
