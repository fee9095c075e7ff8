package sim

import (
	"math"

	"github.com/vovakirdan/procroids/internal/core"
)

// Projectile is a shot fired by the player. It has no identity and dies on
// its first hit or when its lifetime runs out.
type Projectile struct {
	C Collider
	B MovableBody

	age float64
	ttl float64 // seconds, 0 means unlimited
}

// NewProjectile wraps body with a collider of the given radius.
func NewProjectile(body MovableBody, radius, ttl float64) *Projectile {
	return &Projectile{
		C:   NewCollider(body.P, radius),
		B:   body,
		ttl: ttl,
	}
}

// Destroy marks the projectile dead. The manager drops it on the next purge.
func (p *Projectile) Destroy() {
	p.B.Kill()
}

// Update implements GameObject.
func (p *Projectile) Update(dt float64) {
	if !p.B.IsLive() {
		return
	}
	p.B.Update(dt)
	p.C.Center = p.B.P
	p.age += dt
	if p.ttl > 0 && p.age >= p.ttl {
		p.Destroy()
	}
}

// Render implements GameObject.
func (p *Projectile) Render(r Renderer) {
	if !p.B.IsLive() {
		return
	}
	s := p.C.Radius
	r.Draw(Shape{
		Kind:      ShapeRect,
		Color:     core.ColorBrightRed,
		Transform: Transform{Translate: p.B.P, Offset: core.V(-s/2, -s/2)},
		Size:      core.V(s, s),
	})
}

// RenderDebug implements GameObject.
func (p *Projectile) RenderDebug(r Renderer) {
	if !p.B.IsLive() {
		return
	}
	r.Draw(Shape{
		Kind:      ShapeCircleArc,
		Color:     core.ColorDim,
		Transform: Transform{Translate: p.C.Center},
		Radius:    p.C.Radius,
		End:       2 * math.Pi,
	})
}

// CollidesWith implements Collides.
func (p *Projectile) CollidesWith(other Collides) bool {
	return p.C.AreColliding(other.Collider())
}

// Collider implements Collides.
func (p *Projectile) Collider() *Collider {
	return &p.C
}

// OnCollision destroys the projectile when it hits an asteroid.
func (p *Projectile) OnCollision(other Collides) {
	if other.ColliderType() == ColliderAsteroid {
		p.Destroy()
	}
}

// ColliderType implements Collides.
func (p *Projectile) ColliderType() ColliderType {
	return ColliderProjectile
}
