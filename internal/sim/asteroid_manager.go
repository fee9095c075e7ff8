package sim

import (
	"math/rand"

	"github.com/vovakirdan/procroids/internal/core"
)

const (
	compactThreshold = 64 // dead asteroids tolerated before compaction
	spawnAttempts    = 16
)

// AsteroidManager owns every asteroid in the field.
type AsteroidManager struct {
	bounds    Bounds
	tuning    AsteroidTuning
	rng       *rand.Rand
	asteroids []*Asteroid
	nextID    uint32

	avoid      core.Vec2
	speedScale float64
	minLive    int
}

// NewAsteroidManager seeds InitialCount asteroids away from the middle of
// bounds, where the player spawns.
func NewAsteroidManager(t AsteroidTuning, bounds Bounds, rng *rand.Rand) *AsteroidManager {
	m := &AsteroidManager{
		bounds:     bounds,
		tuning:     t,
		rng:        rng,
		avoid:      bounds.Center(),
		speedScale: 1,
		minLive:    t.MinLive,
	}
	for i := 0; i < t.InitialCount; i++ {
		m.AddAsteroid(m.randomAsteroid(m.randomClass()))
	}
	return m
}

// SetAvoid moves the point new asteroids keep SafeRadius away from.
func (m *AsteroidManager) SetAvoid(p core.Vec2) {
	m.avoid = p
}

// SetDifficulty scales the speed of new asteroids and the live population
// kept by Update.
func (m *AsteroidManager) SetDifficulty(speedScale float64, minLive int) {
	if speedScale <= 0 {
		speedScale = 1
	}
	m.speedScale = speedScale
	m.minLive = minLive
}

// AddAsteroid adopts a, giving it a fresh ID unless it has one.
func (m *AsteroidManager) AddAsteroid(a *Asteroid) {
	if a.ID == 0 && !a.pid {
		m.nextID++
		a.ID = m.nextID
	}
	m.asteroids = append(m.asteroids, a)
}

// AddPIDAsteroid creates a small asteroid at a random spot whose ID is pid.
func (m *AsteroidManager) AddPIDAsteroid(pid uint32) *Asteroid {
	a := m.randomAsteroid(Small)
	a.ID = pid
	a.pid = true
	m.asteroids = append(m.asteroids, a)
	return a
}

// Explode splits a and returns its fragments without adopting them.
func (m *AsteroidManager) Explode(a *Asteroid) []*Asteroid {
	t := m.tuning
	t.SplitSpeed *= m.speedScale
	return a.Explode(m.rng, t)
}

// Update advances every live asteroid, then tops the field up to the
// minimum live count.
func (m *AsteroidManager) Update(dt float64) {
	m.compact()
	for _, a := range m.asteroids {
		a.Update(dt)
	}
	for n := m.LiveCount(); n < m.minLive; n++ {
		m.AddAsteroid(m.randomAsteroid(m.randomClass()))
	}
}

// All returns every managed asteroid, dead ones included.
func (m *AsteroidManager) All() []*Asteroid {
	return m.asteroids
}

// Live returns the live asteroids.
func (m *AsteroidManager) Live() []*Asteroid {
	out := make([]*Asteroid, 0, len(m.asteroids))
	for _, a := range m.asteroids {
		if a.B.IsLive() {
			out = append(out, a)
		}
	}
	return out
}

// LiveCount returns the number of live asteroids.
func (m *AsteroidManager) LiveCount() int {
	n := 0
	for _, a := range m.asteroids {
		if a.B.IsLive() {
			n++
		}
	}
	return n
}

// ByPID returns the live asteroid mapped to pid, or nil.
func (m *AsteroidManager) ByPID(pid uint32) *Asteroid {
	for _, a := range m.asteroids {
		if a.pid && a.ID == pid && a.B.IsLive() {
			return a
		}
	}
	return nil
}

// Render draws every live asteroid.
func (m *AsteroidManager) Render(r Renderer, debug bool) {
	for _, a := range m.asteroids {
		a.Render(r)
		if debug {
			a.RenderDebug(r)
		}
	}
}

func (m *AsteroidManager) compact() {
	dead := len(m.asteroids) - m.LiveCount()
	if dead < compactThreshold {
		return
	}
	kept := m.asteroids[:0]
	for _, a := range m.asteroids {
		if a.B.IsLive() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(m.asteroids); i++ {
		m.asteroids[i] = nil
	}
	m.asteroids = kept
}

func (m *AsteroidManager) randomClass() SizeClass {
	if len(m.tuning.InitialClasses) == 0 {
		return Small
	}
	return m.tuning.InitialClasses[m.rng.Intn(len(m.tuning.InitialClasses))]
}

func (m *AsteroidManager) randomAsteroid(c SizeClass) *Asteroid {
	body := NewMovableBody(m.randomPosition(), m.bounds)
	speed := m.tuning.Speed * m.speedScale
	body.V = core.V(uniform(m.rng, -speed, speed), uniform(m.rng, -speed, speed))
	body.RV = uniform(m.rng, -m.tuning.Spin, m.tuning.Spin)
	return NewAsteroid(body, c, 0)
}

// randomPosition samples the window, rejecting points within SafeRadius of
// the avoid point. After spawnAttempts misses it takes the last sample.
func (m *AsteroidManager) randomPosition() core.Vec2 {
	safe := m.tuning.SafeRadius * m.tuning.SafeRadius
	var p core.Vec2
	for i := 0; i < spawnAttempts; i++ {
		p = core.V(m.rng.Float64()*m.bounds.W, m.rng.Float64()*m.bounds.H)
		if p.DistSq(m.avoid) >= safe {
			return p
		}
	}
	return p
}
