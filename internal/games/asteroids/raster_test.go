package asteroids

import (
	"testing"

	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/sim"
)

// 1 cell per 10 world units on a 10x10 field.
func newTestRaster() (*core.Screen, *Raster) {
	screen := core.NewScreen(10, 10)
	return screen, NewRaster(screen, core.NewRect(0, 0, 10, 10), sim.Bounds{W: 100, H: 100})
}

func TestRasterLine(t *testing.T) {
	screen, r := newTestRaster()
	r.Draw(sim.Shape{
		Kind:   sim.ShapeLine,
		Points: []core.Vec2{core.V(0, 50), core.V(95, 50)},
	})
	if got := screen.Row(5); got != ".........." {
		t.Errorf("row 5 = %q", got)
	}
}

func TestRasterTinyRectIsAStar(t *testing.T) {
	screen, r := newTestRaster()
	r.Draw(sim.Shape{
		Kind:      sim.ShapeRect,
		Transform: sim.Transform{Translate: core.V(55, 55), Offset: core.V(-2, -2)},
		Size:      core.V(4, 4),
	})
	if got := screen.Get(5, 5); got != '*' {
		t.Errorf("cell = %q, want '*'", got)
	}
}

func TestRasterRectOutline(t *testing.T) {
	screen, r := newTestRaster()
	r.Draw(sim.Shape{
		Kind:      sim.ShapeRect,
		Transform: sim.Transform{Translate: core.V(20, 20)},
		Size:      core.V(40, 40),
	})
	for _, c := range [][2]int{{2, 2}, {6, 2}, {2, 6}, {6, 6}, {4, 2}} {
		if got := screen.Get(c[0], c[1]); got != '#' {
			t.Errorf("cell %v = %q, want '#'", c, got)
		}
	}
	if got := screen.Get(4, 4); got != ' ' {
		t.Errorf("interior = %q, want blank", got)
	}
}

func TestRasterShipArrowFollowsHeading(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		want    rune
	}{
		{"down", 0, '↓'},
		{"right", 1.5707963267948966, '→'},
		{"up", 3.141592653589793, '↑'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, r := newTestRaster()
			p := sim.NewPlayer(sim.Bounds{W: 100, H: 100}, sim.DefaultTuning().Player)
			p.B.R = tt.heading
			p.Render(r)

			found := false
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if screen.Get(x, y) == tt.want {
						found = true
					}
				}
			}
			if !found {
				t.Errorf("no %q on screen:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestRasterLabelAndClipping(t *testing.T) {
	screen, r := newTestRaster()
	r.Draw(sim.Shape{
		Kind:      sim.ShapeRect,
		Transform: sim.Transform{Translate: core.V(10, 10)},
		Size:      core.V(1, 1),
		Label:     "42",
	})
	if got := screen.Row(1); got[3:5] != "42" {
		t.Errorf("row 1 = %q, want label at column 3", got)
	}

	// Entirely outside the field: nothing drawn, no panic.
	r.Draw(sim.Shape{Kind: sim.ShapeLine, Points: []core.Vec2{core.V(-50, -50), core.V(-10, -10)}})
	r.Draw(sim.Shape{Kind: sim.ShapeCircleArc, Transform: sim.Transform{Translate: core.V(500, 500)}, Radius: 10, End: 6.28})
}

func TestRasterArc(t *testing.T) {
	screen, r := newTestRaster()
	r.Draw(sim.Shape{
		Kind:      sim.ShapeCircleArc,
		Transform: sim.Transform{Translate: core.V(50, 50)},
		Radius:    30,
		End:       6.283185307179586,
	})
	if got := screen.Get(8, 5); got != '·' {
		t.Errorf("rim cell = %q, want '·'", got)
	}
	if got := screen.Get(5, 5); got != ' ' {
		t.Errorf("center = %q, want blank", got)
	}
}
