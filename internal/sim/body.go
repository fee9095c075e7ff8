// Package sim is the entity simulation for the asteroids game: rigid-body
// integration, circle colliders, entity lifecycles and the per-frame
// collision sweep. It has no terminal or OS dependencies.
package sim

import (
	"math"

	"github.com/vovakirdan/procroids/internal/core"
)

// BoundaryMode controls what happens when a body leaves the window.
type BoundaryMode int

const (
	BoundaryWrap BoundaryMode = iota // teleport to the opposite edge
	BoundaryNone                     // fly off unbounded
)

// BodyState is the life state of a body. Dead is terminal.
type BodyState int

const (
	Live BodyState = iota
	Dead
)

func (s BodyState) String() string {
	if s == Dead {
		return "dead"
	}
	return "live"
}

// Bounds is the window extent every physics-bearing entity is bounded by.
// It is an immutable value shared by all entities of a world.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the window.
func (b Bounds) Center() core.Vec2 {
	return core.V(b.W/2, b.H/2)
}

// MovableBody holds kinematic state and integrates it one step at a time.
type MovableBody struct {
	P core.Vec2 // position
	V core.Vec2 // velocity
	A core.Vec2 // acceleration
	F core.Vec2 // force input, folded into A on the next step

	R  float64 // rotation angle in radians
	RV float64 // rotation velocity in radians per second

	Bounds   Bounds
	Boundary BoundaryMode
	State    BodyState
}

// NewMovableBody creates a live, wrapping body at rest at p.
func NewMovableBody(p core.Vec2, bounds Bounds) MovableBody {
	return MovableBody{
		P:        p,
		Bounds:   bounds,
		Boundary: BoundaryWrap,
		State:    Live,
	}
}

// Update advances the body by dt seconds.
//
// Position moves by the old velocity, velocity by the old acceleration and
// acceleration by the applied force, so a force reaches velocity one step
// after it is applied.
func (b *MovableBody) Update(dt float64) {
	p := b.P.Add(b.V.Scale(dt))

	if b.Boundary == BoundaryWrap {
		if p.X > b.Bounds.W {
			p.X = 0
		}
		if p.X < 0 {
			p.X = b.Bounds.W
		}
		if p.Y > b.Bounds.H {
			p.Y = 0
		}
		if p.Y < 0 {
			p.Y = b.Bounds.H
		}
	}

	b.P = p
	b.V = b.V.Add(b.A.Scale(dt))
	b.A = b.A.Add(b.F.Scale(dt))
	b.R = math.Mod(b.R+b.RV*dt, 2*math.Pi)
}

// ApplyForce replaces the force input used by the next Update.
func (b *MovableBody) ApplyForce(f core.Vec2) {
	b.F = f
}

// IsLive reports whether the body is still in play.
func (b *MovableBody) IsLive() bool {
	return b.State == Live
}

// Kill marks the body dead.
func (b *MovableBody) Kill() {
	b.State = Dead
}
