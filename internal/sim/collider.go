package sim

import "github.com/vovakirdan/procroids/internal/core"

// Collider is a circular collision shape that can be switched off.
// The center follows the owning body after each physics step.
type Collider struct {
	Center  core.Vec2
	Radius  float64
	enabled bool
}

// NewCollider creates an enabled collider.
func NewCollider(center core.Vec2, radius float64) Collider {
	return Collider{Center: center, Radius: radius, enabled: true}
}

// AreColliding reports whether two colliders touch. Disabled colliders never
// collide. The reach is the larger of the two radii, not their sum.
func (c *Collider) AreColliding(other *Collider) bool {
	if !c.enabled || !other.enabled {
		return false
	}
	r := max(c.Radius, other.Radius)
	return c.Center.DistSq(other.Center) <= r*r
}

// On enables the collider.
func (c *Collider) On() {
	c.enabled = true
}

// Off disables the collider.
func (c *Collider) Off() {
	c.enabled = false
}

// Enabled reports whether the collider takes part in collision tests.
func (c *Collider) Enabled() bool {
	return c.enabled
}
