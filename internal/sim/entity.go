package sim

// ColliderType tags the closed set of entity variants for collision dispatch.
type ColliderType int

const (
	ColliderAsteroid ColliderType = iota
	ColliderProjectile
	ColliderPlayer
)

func (t ColliderType) String() string {
	switch t {
	case ColliderAsteroid:
		return "asteroid"
	case ColliderProjectile:
		return "projectile"
	case ColliderPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Collides is implemented by every entity that owns a Collider.
type Collides interface {
	// CollidesWith tests this entity's collider against other's.
	CollidesWith(other Collides) bool

	// Collider gives access to the entity's collider.
	Collider() *Collider

	// OnCollision reacts to a hit, keyed by other's ColliderType.
	OnCollision(other Collides)

	// ColliderType returns the entity's own tag.
	ColliderType() ColliderType
}

// GameObject is implemented by every simulated, drawable entity.
// Update, Render and RenderDebug do nothing once the entity is dead.
type GameObject interface {
	Update(dt float64)
	Render(r Renderer)
	RenderDebug(r Renderer)
}

// Entity is the full capability set of asteroids, projectiles and the player.
type Entity interface {
	Collides
	GameObject
}

var (
	_ Entity = (*Asteroid)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Player)(nil)
)
