package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/procroids/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBodyForceLagsVelocityByOneStep(t *testing.T) {
	b := NewMovableBody(core.V(0, 0), Bounds{W: 1000, H: 1000})
	b.ApplyForce(core.V(10, 0))

	b.Update(1)
	if b.V.X != 0 || b.A.X != 10 {
		t.Fatalf("after step 1: V=%v A=%v, want V=0 A=10", b.V, b.A)
	}

	b.Update(1)
	if b.P.X != 0 || b.V.X != 10 || b.A.X != 20 {
		t.Fatalf("after step 2: P=%v V=%v A=%v, want P=0 V=10 A=20", b.P, b.V, b.A)
	}

	b.Update(1)
	if b.P.X != 10 || b.V.X != 30 {
		t.Errorf("after step 3: P=%v V=%v, want P=10 V=30", b.P, b.V)
	}
}

func TestBodyRotationKeepsDividendSign(t *testing.T) {
	tests := []struct {
		name   string
		r, rv  float64
		dt     float64
		expect float64
	}{
		{"no wrap", 1, 1, 0.5, 1.5},
		{"positive wrap", 6, 1, 0.5, 6.5 - 2*math.Pi},
		{"negative stays negative", -1, -7, 1, -8 + 2*math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMovableBody(core.V(0, 0), Bounds{W: 10, H: 10})
			b.R = tt.r
			b.RV = tt.rv
			b.Update(tt.dt)
			if !near(b.R, tt.expect) {
				t.Errorf("R = %v, want %v", b.R, tt.expect)
			}
		})
	}
}

func TestBodyWrapEdges(t *testing.T) {
	bounds := Bounds{W: 800, H: 800}
	tests := []struct {
		name string
		p, v core.Vec2
		want core.Vec2
	}{
		{"just past right edge", core.V(800-eps, 400), core.V(1, 0), core.V(0, 400)},
		{"exactly on right edge", core.V(800, 400), core.V(0, 0), core.V(800, 400)},
		{"just past left edge", core.V(eps, 400), core.V(-1, 0), core.V(800, 400)},
		{"exactly on left edge", core.V(0, 400), core.V(0, 0), core.V(0, 400)},
		{"just past bottom edge", core.V(400, 800-eps), core.V(0, 1), core.V(400, 0)},
		{"just past top edge", core.V(400, eps), core.V(0, -1), core.V(400, 800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMovableBody(tt.p, bounds)
			b.V = tt.v
			b.Update(0.01)
			if !near(b.P.X, tt.want.X) || !near(b.P.Y, tt.want.Y) {
				t.Errorf("P = %v, want %v", b.P, tt.want)
			}
		})
	}
}

func TestBodyBoundaryNoneLeavesWindow(t *testing.T) {
	b := NewMovableBody(core.V(790, 10), Bounds{W: 800, H: 800})
	b.Boundary = BoundaryNone
	b.V = core.V(100, -100)
	b.Update(1)
	if b.P.X != 890 || b.P.Y != -90 {
		t.Errorf("P = %v, want (890,-90)", b.P)
	}
}

func TestBodyDeterminism(t *testing.T) {
	mk := func() MovableBody {
		b := NewMovableBody(core.V(400, 400), Bounds{W: 800, H: 800})
		b.V = core.V(37, -12)
		b.RV = 1.3
		b.ApplyForce(core.V(3, 5))
		return b
	}
	b1, b2 := mk(), mk()
	for i := 0; i < 1000; i++ {
		b1.Update(1.0 / 60)
		b2.Update(1.0 / 60)
	}
	if b1 != b2 {
		t.Errorf("bodies diverged: %+v vs %+v", b1, b2)
	}
}

func TestBodyKill(t *testing.T) {
	b := NewMovableBody(core.V(0, 0), Bounds{W: 1, H: 1})
	if !b.IsLive() {
		t.Fatal("new body should be live")
	}
	b.Kill()
	if b.IsLive() || b.State.String() != "dead" {
		t.Errorf("state = %v, want dead", b.State)
	}
}
