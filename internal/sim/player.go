package sim

import (
	"math"

	"github.com/vovakirdan/procroids/internal/core"
)

// RotationState is the player's turning intent.
type RotationState int

const (
	RotateNone RotationState = iota
	RotatePositive
	RotateNegative
)

// Player is the ship. It turns at a fixed rate while a rotation intent is
// held and pushes along its heading while thrusting.
type Player struct {
	C        Collider
	B        MovableBody
	Thrust   bool
	Rotating RotationState

	tuning       PlayerTuning
	spawn        core.Vec2
	lives        int
	invulnerable float64
}

// NewPlayer creates a player at rest in the middle of bounds.
func NewPlayer(bounds Bounds, t PlayerTuning) *Player {
	spawn := bounds.Center()
	lives := t.Lives
	if lives <= 0 {
		lives = 1
	}
	return &Player{
		C:      NewCollider(spawn, t.Radius),
		B:      NewMovableBody(spawn, bounds),
		tuning: t,
		spawn:  spawn,
		lives:  lives,
	}
}

// Lives returns the remaining lives.
func (p *Player) Lives() int {
	return p.lives
}

// Spawn returns the respawn point.
func (p *Player) Spawn() core.Vec2 {
	return p.spawn
}

// Invulnerable reports whether the player is in its post-respawn grace time.
func (p *Player) Invulnerable() bool {
	return p.invulnerable > 0
}

// SetThrust switches the engine. Releasing it with CoastOnRelease drops the
// accumulated acceleration so velocity stays where it is.
func (p *Player) SetThrust(on bool) {
	if !on && p.Thrust && p.tuning.CoastOnRelease {
		p.B.A = core.Vec2{}
	}
	p.Thrust = on
}

// SetRotation sets the turning intent.
func (p *Player) SetRotation(s RotationState) {
	p.Rotating = s
}

// ShootProjectile fires from the ship's position along its heading.
func (p *Player) ShootProjectile(pm *ProjectileManager) *Projectile {
	if !p.B.IsLive() {
		return nil
	}
	return pm.SpawnProjectile(p.B.P, p.B.R)
}

// Update implements GameObject.
func (p *Player) Update(dt float64) {
	if !p.B.IsLive() {
		return
	}

	switch p.Rotating {
	case RotatePositive:
		p.B.RV = p.tuning.RotationVelocity
	case RotateNegative:
		p.B.RV = -p.tuning.RotationVelocity
	default:
		p.B.RV = 0
	}

	if p.invulnerable > 0 {
		p.invulnerable -= dt
		if p.invulnerable <= 0 {
			p.invulnerable = 0
			p.C.On()
		}
	}

	var force core.Vec2
	if p.Thrust {
		force = core.Heading(p.B.R).Scale(p.tuning.ThrustForce)
	}
	p.B.ApplyForce(force)
	p.B.Update(dt)
	p.C.Center = p.B.P
}

// Render draws the ship as a triangle pointing along its heading.
func (p *Player) Render(r Renderer) {
	if !p.B.IsLive() {
		return
	}
	color := core.ColorBrightCyan
	if p.invulnerable > 0 {
		color = core.ColorDim
	}
	r.Draw(Shape{
		Kind:  ShapePolygon,
		Color: color,
		Transform: Transform{
			Translate: p.B.P,
			Rotate:    -p.B.R,
			Offset:    core.V(-10, -10),
		},
		Points: []core.Vec2{core.V(0, 0), core.V(20, 0), core.V(10, 20)},
	})
	if p.Thrust {
		r.Draw(Shape{
			Kind:      ShapeLine,
			Color:     core.ColorBrightYellow,
			Transform: Transform{Translate: p.B.P, Rotate: -p.B.R},
			Points:    []core.Vec2{core.V(0, -10), core.V(0, -16)},
		})
	}
}

// RenderDebug draws velocity, heading and the collider circle.
func (p *Player) RenderDebug(r Renderer) {
	if !p.B.IsLive() {
		return
	}
	at := Transform{Translate: p.B.P}
	r.Draw(Shape{
		Kind:      ShapeLine,
		Color:     core.ColorGreen,
		Transform: at,
		Points:    []core.Vec2{{}, p.B.V},
	})
	r.Draw(Shape{
		Kind:      ShapeLine,
		Color:     core.ColorYellow,
		Transform: at,
		Points:    []core.Vec2{{}, core.Heading(p.B.R).Scale(20)},
	})
	r.Draw(Shape{
		Kind:      ShapeCircleArc,
		Color:     core.ColorDim,
		Transform: Transform{Translate: p.C.Center},
		Radius:    p.C.Radius,
		End:       2 * math.Pi,
	})
}

// CollidesWith implements Collides.
func (p *Player) CollidesWith(other Collides) bool {
	return p.C.AreColliding(other.Collider())
}

// Collider implements Collides.
func (p *Player) Collider() *Collider {
	return &p.C
}

// OnCollision costs a life when an asteroid hits the ship.
func (p *Player) OnCollision(other Collides) {
	if other.ColliderType() != ColliderAsteroid {
		return
	}
	p.lives--
	if p.lives <= 0 {
		p.lives = 0
		p.B.Kill()
		p.C.Off()
		return
	}
	p.respawn()
}

// ColliderType implements Collides.
func (p *Player) ColliderType() ColliderType {
	return ColliderPlayer
}

func (p *Player) respawn() {
	p.B = NewMovableBody(p.spawn, p.B.Bounds)
	p.C.Center = p.spawn
	p.Thrust = false
	p.Rotating = RotateNone
	if p.tuning.InvulnerableSecs > 0 {
		p.invulnerable = p.tuning.InvulnerableSecs
		p.C.Off()
	}
}
