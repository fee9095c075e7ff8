// Package asteroids implements the asteroids game in two modes: classic
// rocks, and procroids, where every asteroid stands for a running process.
package asteroids

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/procroids/internal/config"
	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/registry"
	"github.com/vovakirdan/procroids/internal/sim"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "asteroids"
	ModeProcs   Mode = "procroids"
)

const (
	minScreenW = 40
	minScreenH = 12
	hudHeight  = 2
)

// Monitor is a process monitor the game owns for its lifetime.
type Monitor interface {
	sim.Monitor
	Close() error
}

// MonitorFactory creates the process monitor for procroids mode.
type MonitorFactory func(cfg config.ProcConfig) (Monitor, error)

// Package-level settings, set from the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	monitorFactory   MonitorFactory
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetMonitorFactory sets how procroids mode reaches the process table.
// Without one, procroids mode runs with an empty field.
func SetMonitorFactory(f MonitorFactory) {
	monitorFactory = f
}

// Game implements both asteroids modes.
type Game struct {
	mode       Mode
	cfg        config.AsteroidsConfig
	tuning     sim.Tuning
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	world      *sim.World
	monitor    Monitor
	tick       uint64
	kills      int
	rc         core.RuntimeConfig

	paused     bool
	debug      bool
	tooSmall   bool
	warning    string
	monitorErr string
}

// New creates a classic asteroids game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewProcs creates a procroids game.
func NewProcs() *Game {
	return &Game{mode: ModeProcs}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeProcs), func() registry.Game {
		return NewProcs()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeProcs {
		return "Procroids"
	}
	return "Asteroids"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.mode == ModeProcs {
		return "every asteroid is a running process; shooting one asks the OS to end it"
	}
	return "classic asteroids: split the rocks, dodge the debris"
}

// Reset initializes/restarts the game. The process monitor, once created,
// survives restarts.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.warning = ""
	tuning, err := tuningFromConfig(cfg)
	if err != nil {
		g.warning = err.Error()
	}
	if g.mode == ModeProcs {
		tuning.Asteroid.InitialCount = 0
		tuning.Asteroid.MinLive = 0
	}
	g.tuning = tuning

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.kills = 0
	g.paused = false
	g.debug = rc.Debug
	g.rc = rc
	g.tooSmall = rc.ScreenW < minScreenW || rc.ScreenH < minScreenH

	bounds := sim.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	prev := g.world
	g.world = sim.NewWorld(bounds, tuning, g.rng)
	g.world.InheritKilled(prev)

	if g.mode == ModeProcs {
		g.attachMonitor()
	}
}

func (g *Game) attachMonitor() {
	if g.monitor == nil && monitorFactory != nil {
		m, err := monitorFactory(g.cfg.Proc)
		if err != nil {
			g.monitorErr = err.Error()
			return
		}
		g.monitor = m
		g.monitorErr = ""
	}
	if g.monitor == nil {
		return
	}
	g.world.AttachMonitor(g.monitor, sim.MonitorOptions{
		MaxAsteroids:  g.cfg.Proc.MaxAsteroids,
		KillOnDestroy: g.cfg.Proc.KillOnDestroy,
	})
}

// Resize adapts to a new terminal size without restarting the round.
// The world is measured in its own units, so only the layout changes.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW = w
	g.rc.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Close releases the process monitor, if any.
func (g *Game) Close() error {
	if g.monitor == nil {
		return nil
	}
	err := g.monitor.Close()
	g.monitor = nil
	return err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.world.GameOver() {
		rc := g.rc
		rc.Seed = g.rng.Int63()
		rc.Debug = g.debug
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.world.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var cues []core.Cue
	if g.processInput(in) {
		cues = append(cues, core.CueFire)
	}

	if g.difficulty.IsEnabled() {
		score := g.world.Score()
		g.world.Asteroids.SetDifficulty(
			g.difficulty.SpeedScale(score, int(g.tick)),
			g.difficulty.MinLive(g.tuning.Asteroid.MinLive, score, int(g.tick)),
		)
	}

	rep := g.world.Step(g.rc.Dt())
	g.kills += len(rep.Killed)

	if len(rep.Destroyed) > 0 {
		cues = append(cues, core.CueExplosion)
	}
	if len(rep.Killed) > 0 {
		cues = append(cues, core.CueProcessKilled)
	}
	if rep.PlayerHit {
		cues = append(cues, core.CuePlayerHit)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// processInput applies press/release events in arrival order and reports
// whether a shot was fired.
func (g *Game) processInput(in core.InputFrame) bool {
	p := g.world.Player
	fired := false
	for _, ev := range in.Events {
		switch ev.Action {
		case core.ActionThrust:
			p.SetThrust(ev.Pressed)
		case core.ActionRotateLeft:
			if ev.Pressed {
				p.SetRotation(sim.RotatePositive)
			} else if p.Rotating == sim.RotatePositive {
				p.SetRotation(sim.RotateNone)
			}
		case core.ActionRotateRight:
			if ev.Pressed {
				p.SetRotation(sim.RotateNegative)
			} else if p.Rotating == sim.RotateNegative {
				p.SetRotation(sim.RotateNone)
			}
		case core.ActionFire:
			if ev.Pressed && g.world.Fire() {
				fired = true
			}
		}
	}
	return fired
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	field := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	g.world.Render(NewRaster(dst, field, g.world.Bounds), g.debug)

	switch {
	case g.world.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.world.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}

	if msg := g.statusLine(); msg != "" {
		dst.DrawTextColored(1, dst.Height()-1, msg, core.ColorYellow)
	}
}

func (g *Game) statusLine() string {
	switch {
	case g.monitorErr != "":
		return "process monitor unavailable: " + g.monitorErr
	case g.mode == ModeProcs && g.monitor == nil:
		return "no process monitor"
	case g.warning != "":
		return g.warning
	default:
		return ""
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	lives := strings.Repeat("♥", g.world.Player.Lives())
	hud := fmt.Sprintf(" %s  Score: %d  Lives: %s", g.Title(), g.world.Score(), lives)
	if g.mode == ModeProcs {
		hud += fmt.Sprintf("  Procs: %d  Kills: %d", g.pidAsteroids(), g.kills)
	} else {
		hud += fmt.Sprintf("  Rocks: %d", g.world.Asteroids.LiveCount())
	}
	if g.debug {
		hud += "  [debug]"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightCyan)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) pidAsteroids() int {
	n := 0
	for _, a := range g.world.Asteroids.All() {
		if a.PIDMapped() && a.B.IsLive() {
			n++
		}
	}
	return n
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Player.Lives(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
	}
}

// Kills returns how many kill requests this run has sent.
func (g *Game) Kills() int {
	return g.kills
}

// tuningFromConfig converts the YAML config into simulation parameters.
// Unknown size classes are skipped and reported.
func tuningFromConfig(cfg config.AsteroidsConfig) (sim.Tuning, error) {
	t := sim.Tuning{
		Player: sim.PlayerTuning{
			Radius:           cfg.Player.Radius,
			ThrustForce:      cfg.Player.ThrustForce,
			RotationVelocity: cfg.Player.RotationVelocity,
			Lives:            cfg.Player.Lives,
			InvulnerableSecs: msToSecs(cfg.Player.InvulnerableMs),
			CoastOnRelease:   cfg.Player.CoastOnRelease,
		},
		Asteroid: sim.AsteroidTuning{
			InitialCount:  cfg.Asteroids.InitialCount,
			MinLive:       cfg.Asteroids.MinLive,
			Speed:         cfg.Asteroids.Speed,
			Spin:          cfg.Asteroids.Spin,
			SafeRadius:    cfg.Asteroids.SafeRadius,
			SplitFactor:   cfg.Asteroids.SplitFactor,
			SplitVariance: cfg.Asteroids.SplitVariance,
			SplitSpeed:    cfg.Asteroids.SplitSpeed,
		},
		Projectile: sim.ProjectileTuning{
			Radius:      cfg.Projectile.Radius,
			Speed:       cfg.Projectile.Speed,
			MaxLifetime: msToSecs(cfg.Projectile.MaxLifetimeMs),
			Cooldown:    msToSecs(cfg.Projectile.CooldownMs),
		},
		Scoring: sim.Scoring{
			Small:  cfg.Scoring.Small,
			Medium: cfg.Scoring.Medium,
			Large:  cfg.Scoring.Large,
		},
	}

	var errs []error
	for _, name := range cfg.Asteroids.InitialClasses {
		c, err := sim.ParseSizeClass(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.Asteroid.InitialClasses = append(t.Asteroid.InitialClasses, c)
	}
	if len(t.Asteroid.InitialClasses) == 0 {
		t.Asteroid.InitialClasses = []sim.SizeClass{sim.Small}
	}
	return t, errors.Join(errs...)
}

func msToSecs(ms int) float64 {
	return float64(ms) / 1000
}
