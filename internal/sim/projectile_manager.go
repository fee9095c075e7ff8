package sim

import "github.com/vovakirdan/procroids/internal/core"

// ProjectileManager owns the projectiles in flight.
type ProjectileManager struct {
	bounds      Bounds
	tuning      ProjectileTuning
	projectiles []*Projectile
}

// NewProjectileManager creates an empty manager.
func NewProjectileManager(bounds Bounds, t ProjectileTuning) *ProjectileManager {
	return &ProjectileManager{bounds: bounds, tuning: t}
}

// SpawnProjectile adds a projectile at origin travelling along heading.
// Projectiles are not wrapped at the window edge.
func (m *ProjectileManager) SpawnProjectile(origin core.Vec2, heading float64) *Projectile {
	body := NewMovableBody(origin, m.bounds)
	body.V = core.Heading(heading).Scale(m.tuning.Speed)
	body.Boundary = BoundaryNone
	body.R = heading

	p := NewProjectile(body, m.tuning.Radius, m.tuning.MaxLifetime)
	m.projectiles = append(m.projectiles, p)
	return p
}

// Purge drops dead projectiles, keeping the order of the rest.
func (m *ProjectileManager) Purge() {
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		if p.B.IsLive() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(m.projectiles); i++ {
		m.projectiles[i] = nil
	}
	m.projectiles = kept
}

// Projectiles returns the managed projectiles, dead ones included until the
// next Purge.
func (m *ProjectileManager) Projectiles() []*Projectile {
	return m.projectiles
}

// Len returns the number of managed projectiles.
func (m *ProjectileManager) Len() int {
	return len(m.projectiles)
}

// Update advances every live projectile.
func (m *ProjectileManager) Update(dt float64) {
	for _, p := range m.projectiles {
		p.Update(dt)
	}
}

// Render draws every live projectile.
func (m *ProjectileManager) Render(r Renderer, debug bool) {
	for _, p := range m.projectiles {
		p.Render(r)
		if debug {
			p.RenderDebug(r)
		}
	}
}
