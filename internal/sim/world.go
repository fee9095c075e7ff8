package sim

import (
	"math/rand"

	"github.com/vovakirdan/procroids/internal/core"
)

// Monitor supplies process ids and accepts kill requests. proc.Manager
// satisfies it.
type Monitor interface {
	// PollPIDs checks for a fresh snapshot without blocking and reports
	// whether one arrived.
	PollPIDs() bool
	// Procs returns the cached snapshot.
	Procs() []uint32
	// KillPID queues a termination request without blocking.
	KillPID(pid uint32)
}

// MonitorOptions configures how a World mirrors processes.
type MonitorOptions struct {
	MaxAsteroids  int  // cap on live pid asteroids, 0 means unlimited
	KillOnDestroy bool // request termination when a pid asteroid is shot
}

// FrameReport describes what happened during one Step.
type FrameReport struct {
	Destroyed []*Asteroid
	Spawned   int
	Killed    []uint32 // pids sent to the monitor
	Added     []uint32 // pids that got an asteroid
	Retired   []uint32 // pids whose process went away
	PlayerHit bool
	Points    int
}

// World is one asteroid field with its player, projectiles and an optional
// process monitor.
type World struct {
	Bounds      Bounds
	Tuning      Tuning
	Player      *Player
	Asteroids   *AsteroidManager
	Projectiles *ProjectileManager

	monitor  Monitor
	monOpts  MonitorOptions
	killed   map[uint32]bool
	score    int
	cooldown float64
	frames   uint64
}

// NewWorld builds a field seeded from rng.
func NewWorld(bounds Bounds, t Tuning, rng *rand.Rand) *World {
	return &World{
		Bounds:      bounds,
		Tuning:      t,
		Player:      NewPlayer(bounds, t.Player),
		Asteroids:   NewAsteroidManager(t.Asteroid, bounds, rng),
		Projectiles: NewProjectileManager(bounds, t.Projectile),
		killed:      make(map[uint32]bool),
	}
}

// InheritKilled carries prev's set of shot pids into w, so a restarted
// round does not bring them back while their processes live on.
func (w *World) InheritKilled(prev *World) {
	if prev == nil {
		return
	}
	for pid := range prev.killed {
		w.killed[pid] = true
	}
}

// AttachMonitor makes the world mirror m's process list as asteroids and
// seeds it from m's current snapshot.
func (w *World) AttachMonitor(m Monitor, opts MonitorOptions) {
	w.monitor = m
	w.monOpts = opts
	w.reconcile(m.Procs(), &FrameReport{})
}

// Score returns the points earned so far.
func (w *World) Score() int {
	return w.score
}

// Frames returns the number of completed steps.
func (w *World) Frames() uint64 {
	return w.frames
}

// GameOver reports whether the player has no lives left.
func (w *World) GameOver() bool {
	return !w.Player.B.IsLive()
}

// Fire shoots a projectile unless the gun is cooling down.
func (w *World) Fire() bool {
	if w.cooldown > 0 || w.GameOver() {
		return false
	}
	if w.Player.ShootProjectile(w.Projectiles) == nil {
		return false
	}
	w.cooldown = w.Tuning.Projectile.Cooldown
	return true
}

// Step advances the world by dt seconds: purge, move the player, the
// projectiles and the asteroids, sweep collisions, then sync with the
// monitor.
func (w *World) Step(dt float64) FrameReport {
	var rep FrameReport

	w.Projectiles.Purge()
	w.Player.Update(dt)
	w.Projectiles.Update(dt)
	w.Asteroids.SetAvoid(w.Player.B.P)
	w.Asteroids.Update(dt)

	res := Sweep(w.Projectiles, w.Asteroids, w.Player)
	rep.Destroyed = res.Destroyed
	rep.Spawned = len(res.Spawned)
	rep.PlayerHit = res.PlayerHit
	for _, a := range res.Destroyed {
		rep.Points += w.Tuning.Scoring.Points(a.Class)
		if a.PIDMapped() {
			w.killed[a.ID] = true
			if w.monitor != nil && w.monOpts.KillOnDestroy {
				w.monitor.KillPID(a.ID)
				rep.Killed = append(rep.Killed, a.ID)
			}
		}
	}
	w.score += rep.Points

	if w.monitor != nil && w.monitor.PollPIDs() {
		w.reconcile(w.monitor.Procs(), &rep)
	}

	if w.cooldown > 0 {
		w.cooldown -= dt
	}
	w.frames++
	return rep
}

// reconcile retires pid asteroids whose process is gone and adds asteroids
// for new pids in snapshot order, up to the cap. Pids already shot are not
// brought back while they stay in the snapshot. Once a shot pid leaves the
// snapshot it is forgotten, so a reused pid gets an asteroid again.
func (w *World) reconcile(pids []uint32, rep *FrameReport) {
	alive := make(map[uint32]bool, len(pids))
	for _, pid := range pids {
		alive[pid] = true
	}
	for pid := range w.killed {
		if !alive[pid] {
			delete(w.killed, pid)
		}
	}

	live := 0
	for _, a := range w.Asteroids.All() {
		if !a.PIDMapped() || !a.B.IsLive() {
			continue
		}
		if !alive[a.ID] {
			a.B.Kill()
			a.C.Off()
			rep.Retired = append(rep.Retired, a.ID)
			continue
		}
		live++
	}

	for _, pid := range pids {
		if w.monOpts.MaxAsteroids > 0 && live >= w.monOpts.MaxAsteroids {
			break
		}
		if pid == 0 || w.killed[pid] || w.Asteroids.ByPID(pid) != nil {
			continue
		}
		w.Asteroids.AddPIDAsteroid(pid)
		rep.Added = append(rep.Added, pid)
		live++
	}
}

// Render draws the field. With debug set it adds collider and motion
// overlays.
func (w *World) Render(r Renderer, debug bool) {
	w.Asteroids.Render(r, debug)
	w.Projectiles.Render(r, debug)
	w.Player.Render(r)
	if debug {
		w.Player.RenderDebug(r)
	}
}

// PlayerPosition returns where the ship is.
func (w *World) PlayerPosition() core.Vec2 {
	return w.Player.B.P
}
