package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/procroids/internal/core"
)

var testBounds = Bounds{W: 800, H: 800}

func quietTuning() AsteroidTuning {
	t := DefaultTuning().Asteroid
	t.InitialCount = 0
	t.MinLive = 0
	return t
}

func newTestAsteroid(c SizeClass, p core.Vec2) *Asteroid {
	return NewAsteroid(NewMovableBody(p, testBounds), c, 0)
}

func TestExplodeSplitRules(t *testing.T) {
	tests := []struct {
		class   SizeClass
		small   int
		medium  int
		nothing bool
	}{
		{Small, 0, 0, true},
		{Medium, 4, 0, false},
		{Large, 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			a := newTestAsteroid(tt.class, core.V(400, 400))
			children := a.Explode(rng, quietTuning())

			if a.B.IsLive() {
				t.Error("exploded asteroid should be dead")
			}
			if a.C.Enabled() {
				t.Error("exploded asteroid should have its collider off")
			}
			if tt.nothing {
				if len(children) != 0 {
					t.Fatalf("got %d children, want none", len(children))
				}
				return
			}

			small, medium := 0, 0
			for _, c := range children {
				switch c.Class {
				case Small:
					small++
				case Medium:
					medium++
				default:
					t.Errorf("unexpected child class %v", c.Class)
				}
				if !c.B.IsLive() || !c.C.Enabled() {
					t.Error("child should be live with collider on")
				}
				if c.ID != 0 || c.PIDMapped() {
					t.Errorf("child should be unadopted, got ID %d pid %v", c.ID, c.PIDMapped())
				}
			}
			if small != tt.small || medium != tt.medium {
				t.Errorf("got %d small %d medium, want %d small %d medium",
					small, medium, tt.small, tt.medium)
			}
		})
	}
}

func TestExplodeChildrenStayNearParent(t *testing.T) {
	tun := quietTuning()
	rng := rand.New(rand.NewSource(42))
	parent := newTestAsteroid(Large, core.V(400, 400))
	parent.B.V = core.V(10, -10)

	for _, c := range parent.Explode(rng, tun) {
		maxDist := c.Class.Radius() + tun.SplitVariance*math.Sqrt2
		if d := c.B.P.Sub(parent.B.P).Len(); d > maxDist+1e-9 {
			t.Errorf("child %v at distance %v, want <= %v", c.Class, d, maxDist)
		}
		if c.C.Center != c.B.P {
			t.Errorf("child collider at %v, body at %v", c.C.Center, c.B.P)
		}
		if c.B.Bounds != parent.B.Bounds {
			t.Error("child should share parent bounds")
		}
	}
}

func TestDeadAsteroidDoesNothing(t *testing.T) {
	a := newTestAsteroid(Small, core.V(100, 100))
	a.B.V = core.V(50, 0)
	a.B.Kill()

	a.Update(1)
	if a.B.P != core.V(100, 100) {
		t.Errorf("dead asteroid moved to %v", a.B.P)
	}

	var dl DrawList
	a.Render(&dl)
	a.RenderDebug(&dl)
	if len(dl) != 0 {
		t.Errorf("dead asteroid drew %d shapes", len(dl))
	}
}

func TestPIDAsteroidRendersLabel(t *testing.T) {
	m := NewAsteroidManager(quietTuning(), testBounds, rand.New(rand.NewSource(1)))
	a := m.AddPIDAsteroid(4242)

	var dl DrawList
	a.Render(&dl)
	if len(dl) != 1 {
		t.Fatalf("got %d shapes, want 1", len(dl))
	}
	if dl[0].Label != "4242" {
		t.Errorf("label = %q, want 4242", dl[0].Label)
	}
}

func TestParseSizeClass(t *testing.T) {
	for _, c := range []SizeClass{Small, Medium, Large} {
		got, err := ParseSizeClass(c.String())
		if err != nil || got != c {
			t.Errorf("ParseSizeClass(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseSizeClass("huge"); err == nil {
		t.Error("expected error for unknown class")
	}
}
