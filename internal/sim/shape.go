package sim

import "github.com/vovakirdan/procroids/internal/core"

// ShapeKind selects the primitive a Shape describes.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapePolygon
	ShapeCircleArc
	ShapeLine
)

// Transform places local shape geometry in the world: the local point is
// shifted by Offset, rotated by Rotate and then moved to Translate.
type Transform struct {
	Translate core.Vec2
	Rotate    float64
	Offset    core.Vec2
}

// Apply maps a local point to world space.
func (t Transform) Apply(local core.Vec2) core.Vec2 {
	return local.Add(t.Offset).Rotate(t.Rotate).Add(t.Translate)
}

// Shape is a drawing request handed to the rendering collaborator.
type Shape struct {
	Kind      ShapeKind
	Color     core.Color
	Transform Transform

	Size   core.Vec2   // ShapeRect: width and height from the local origin
	Points []core.Vec2 // ShapePolygon vertices, ShapeLine endpoints

	Radius     float64 // ShapeCircleArc, centered on the local origin
	Start, End float64 // arc angles in radians

	Label string // optional text drawn at the shape's anchor
}

// WorldPoints returns the shape's vertices in world space. Arcs return their
// center only.
func (s Shape) WorldPoints() []core.Vec2 {
	switch s.Kind {
	case ShapeRect:
		corners := [4]core.Vec2{
			core.V(0, 0),
			core.V(s.Size.X, 0),
			core.V(s.Size.X, s.Size.Y),
			core.V(0, s.Size.Y),
		}
		out := make([]core.Vec2, len(corners))
		for i, c := range corners {
			out[i] = s.Transform.Apply(c)
		}
		return out
	case ShapePolygon, ShapeLine:
		out := make([]core.Vec2, len(s.Points))
		for i, p := range s.Points {
			out[i] = s.Transform.Apply(p)
		}
		return out
	default:
		return []core.Vec2{s.Transform.Apply(core.Vec2{})}
	}
}

// Renderer is the drawing collaborator. Entities call Draw once per
// primitive; dead entities never call it.
type Renderer interface {
	Draw(s Shape)
}

// DrawList is a Renderer that records shapes in order.
type DrawList []Shape

// Draw appends s.
func (d *DrawList) Draw(s Shape) {
	*d = append(*d, s)
}
