package asteroids

import (
	"math"

	"github.com/vovakirdan/procroids/internal/core"
	"github.com/vovakirdan/procroids/internal/sim"
)

// arrows indexed by octant, starting east and turning clockwise on screen.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Raster draws simulation shapes onto a character screen. World coordinates
// are stretched to fill the field rectangle; nothing is drawn outside it.
type Raster struct {
	dst    *core.Screen
	field  core.Rect
	sx, sy float64 // cells per world unit
}

var _ sim.Renderer = (*Raster)(nil)

// NewRaster maps world onto field of dst.
func NewRaster(dst *core.Screen, field core.Rect, world sim.Bounds) *Raster {
	r := &Raster{dst: dst, field: field}
	if world.W > 0 {
		r.sx = float64(field.W) / world.W
	}
	if world.H > 0 {
		r.sy = float64(field.H) / world.H
	}
	return r
}

// Draw implements sim.Renderer.
func (r *Raster) Draw(s sim.Shape) {
	pts := s.WorldPoints()
	if len(pts) == 0 {
		return
	}

	switch s.Kind {
	case sim.ShapeRect:
		if r.collapses(pts) {
			x, y := r.cell(centroid(pts))
			r.plot(x, y, '*', s.Color)
		} else {
			r.outline(pts, '#', s.Color)
		}
	case sim.ShapePolygon:
		if r.collapses(pts) || r.small(pts) {
			x, y := r.cell(centroid(pts))
			r.plot(x, y, apexArrow(pts), s.Color)
		} else {
			r.outline(pts, '@', s.Color)
		}
	case sim.ShapeLine:
		for i := 1; i < len(pts); i++ {
			x0, y0 := r.cell(pts[i-1])
			x1, y1 := r.cell(pts[i])
			r.line(x0, y0, x1, y1, '.', s.Color)
		}
	case sim.ShapeCircleArc:
		r.arc(pts[0], s.Radius, s.Start, s.End, s.Color)
	}

	if s.Label != "" {
		x, y := r.cell(centroid(pts))
		r.text(x+2, y, s.Label, s.Color)
	}
}

// cell maps a world point to screen coordinates.
func (r *Raster) cell(p core.Vec2) (int, int) {
	x := r.field.X + int(math.Floor(p.X*r.sx))
	y := r.field.Y + int(math.Floor(p.Y*r.sy))
	return x, y
}

func (r *Raster) inField(x, y int) bool {
	return r.field.Contains(x, y)
}

func (r *Raster) plot(x, y int, ch rune, c core.Color) {
	if r.inField(x, y) {
		r.dst.SetColored(x, y, ch, c)
	}
}

func (r *Raster) text(x, y int, s string, c core.Color) {
	for i, ch := range []rune(s) {
		r.plot(x+i, y, ch, c)
	}
}

// collapses reports whether all points land in a single cell.
func (r *Raster) collapses(pts []core.Vec2) bool {
	x0, y0 := r.cell(pts[0])
	for _, p := range pts[1:] {
		if x, y := r.cell(p); x != x0 || y != y0 {
			return false
		}
	}
	return true
}

// small reports whether the shape spans at most two cells either way.
func (r *Raster) small(pts []core.Vec2) bool {
	minX, minY := r.cell(pts[0])
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		x, y := r.cell(p)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return maxX-minX <= 2 && maxY-minY <= 2
}

func (r *Raster) outline(pts []core.Vec2, ch rune, c core.Color) {
	for i := range pts {
		x0, y0 := r.cell(pts[i])
		x1, y1 := r.cell(pts[(i+1)%len(pts)])
		r.line(x0, y0, x1, y1, ch, c)
	}
}

// line plots a Bresenham segment.
func (r *Raster) line(x0, y0, x1, y1 int, ch rune, c core.Color) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	err := dx + dy

	for {
		r.plot(x0, y0, ch, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}

func (r *Raster) arc(center core.Vec2, radius, start, end float64, c core.Color) {
	span := end - start
	if span <= 0 || radius <= 0 {
		return
	}
	// Enough samples to touch every cell on the rim.
	reach := radius * max(r.sx, r.sy)
	n := max(8, int(math.Ceil(span*reach*2)))
	for i := 0; i <= n; i++ {
		a := start + span*float64(i)/float64(n)
		x, y := r.cell(center.Add(core.V(math.Cos(a), math.Sin(a)).Scale(radius)))
		r.plot(x, y, '·', c)
	}
}

func centroid(pts []core.Vec2) core.Vec2 {
	var sum core.Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// apexArrow returns the arrow pointing from the centroid to the vertex
// farthest from it.
func apexArrow(pts []core.Vec2) rune {
	c := centroid(pts)
	apex := pts[0]
	for _, p := range pts[1:] {
		if p.DistSq(c) > apex.DistSq(c) {
			apex = p
		}
	}
	d := apex.Sub(c)
	angle := math.Atan2(d.Y, d.X)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[octant]
}
