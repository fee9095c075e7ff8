package sim

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/procroids/internal/core"
)

// SizeClass is the asteroid size tier.
type SizeClass int

const (
	Small SizeClass = iota
	Medium
	Large
)

func (c SizeClass) String() string {
	switch c {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// Diameter returns the nominal size of the class in world units.
func (c SizeClass) Diameter() float64 {
	switch c {
	case Medium:
		return 80
	case Large:
		return 120
	default:
		return 50
	}
}

// Radius returns the collider radius of the class.
func (c SizeClass) Radius() float64 {
	return c.Diameter() / 2
}

// ParseSizeClass parses "small", "medium" or "large".
func ParseSizeClass(s string) (SizeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	default:
		return Small, fmt.Errorf("sim: unknown size class %q", s)
	}
}

// Asteroid is a drifting rock. Its ID may be an OS process id when it was
// created for one.
type Asteroid struct {
	ID    uint32
	Size  float64
	Class SizeClass
	C     Collider
	B     MovableBody

	pid bool
}

// NewAsteroid builds a live asteroid of class c around body.
func NewAsteroid(body MovableBody, c SizeClass, id uint32) *Asteroid {
	return &Asteroid{
		ID:    id,
		Size:  c.Diameter(),
		Class: c,
		C:     NewCollider(body.P, c.Radius()),
		B:     body,
	}
}

// PIDMapped reports whether ID is an OS process id.
func (a *Asteroid) PIDMapped() bool {
	return a.pid
}

// Update implements GameObject.
func (a *Asteroid) Update(dt float64) {
	if !a.B.IsLive() {
		return
	}
	a.B.Update(dt)
	a.C.Center = a.B.P
}

// Render draws a rotated square body, labelled with the pid if it has one.
func (a *Asteroid) Render(r Renderer) {
	if !a.B.IsLive() {
		return
	}
	side := a.Size * 0.8
	color := core.ColorGray
	label := ""
	if a.pid {
		color = core.ColorOrange
		label = strconv.FormatUint(uint64(a.ID), 10)
	}
	r.Draw(Shape{
		Kind:  ShapeRect,
		Color: color,
		Transform: Transform{
			Translate: a.B.P,
			Rotate:    a.B.R,
			Offset:    core.V(-side/2, -side/2),
		},
		Size:  core.V(side, side),
		Label: label,
	})
}

// RenderDebug draws the collider outline.
func (a *Asteroid) RenderDebug(r Renderer) {
	if !a.B.IsLive() {
		return
	}
	r.Draw(Shape{
		Kind:      ShapeCircleArc,
		Color:     core.ColorDim,
		Transform: Transform{Translate: a.C.Center},
		Radius:    a.C.Radius,
		End:       2 * math.Pi,
	})
}

// CollidesWith implements Collides.
func (a *Asteroid) CollidesWith(other Collides) bool {
	return a.C.AreColliding(other.Collider())
}

// Collider implements Collides.
func (a *Asteroid) Collider() *Collider {
	return &a.C
}

// OnCollision implements Collides. Asteroids are only changed by Explode, so
// there is nothing to react to here.
func (a *Asteroid) OnCollision(Collides) {}

// ColliderType implements Collides.
func (a *Asteroid) ColliderType() ColliderType {
	return ColliderAsteroid
}

// Explode kills the asteroid and returns its fragments. Small asteroids leave
// nothing. Medium ones split into t.SplitFactor small ones. Large ones split
// into t.SplitFactor pieces, half of them medium. Fragments have ID 0 until
// a manager adopts them.
func (a *Asteroid) Explode(rng *rand.Rand, t AsteroidTuning) []*Asteroid {
	a.B.Kill()
	a.C.Off()

	n := t.SplitFactor
	if a.Class == Small || n <= 0 {
		return nil
	}

	mediums := 0
	if a.Class == Large {
		mediums = n / 2
	}

	base := rng.Float64() * 2 * math.Pi
	step := 2 * math.Pi / float64(n)
	children := make([]*Asteroid, 0, n)
	for i := 0; i < n; i++ {
		class := Small
		if i < mediums {
			class = Medium
		}
		dir := core.Heading(base + float64(i)*step)
		p := a.B.P.Add(dir.Scale(class.Radius())).Add(jitter(rng, t.SplitVariance))
		v := a.B.V.Add(dir.Scale(t.SplitSpeed)).Add(jitter(rng, t.SplitVariance))

		body := NewMovableBody(p, a.B.Bounds)
		body.V = v
		body.R = a.B.R
		body.RV = uniform(rng, -t.Spin, t.Spin)
		children = append(children, NewAsteroid(body, class, 0))
	}
	return children
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func jitter(rng *rand.Rand, v float64) core.Vec2 {
	return core.V(uniform(rng, -v, v), uniform(rng, -v, v))
}
