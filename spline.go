package vellum

import "fmt"

// Spline is a smooth Catmull-Rom curve through an ordered list of control
// points. The interpolated curve is rebuilt on every query.
type Spline struct {
	Node
	points []Vec2
}

// NewSpline creates a spline through pts, in source coordinates.
func NewSpline(name string, pts ...Vec2) *Spline {
	g := &Spline{points: append([]Vec2(nil), pts...)}
	nodeDefaults(&g.Node, g, name)
	return g
}

// Len returns the number of control points.
func (g *Spline) Len() int { return len(g.points) }

// Points returns a copy of the control points in the current coordinate system.
func (g *Spline) Points() []Vec2 {
	out := make([]Vec2, len(g.points))
	for i, p := range g.points {
		out[i] = g.toCurrent(p)
	}
	return out
}

// Append adds p, given in the current coordinate system, at the end.
func (g *Spline) Append(p Vec2) { g.Insert(len(g.points), p) }

// Insert inserts p, given in the current coordinate system, at index i.
func (g *Spline) Insert(i int, p Vec2) {
	if i < 0 || i > len(g.points) {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d]", i, len(g.points)))
	}
	g.points = append(g.points, Vec2{})
	copy(g.points[i+1:], g.points[i:])
	g.points[i] = g.fromCurrent(p)
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// RemoveAt removes control point i.
func (g *Spline) RemoveAt(i int) {
	if i < 0 || i >= len(g.points) {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d)", i, len(g.points)))
	}
	g.points = append(g.points[:i], g.points[i+1:]...)
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// SetPoint moves control point i to p, given in the current coordinate system.
func (g *Spline) SetPoint(i int, p Vec2) {
	if i < 0 || i >= len(g.points) {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d)", i, len(g.points)))
	}
	g.points[i] = g.fromCurrent(p)
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// SetPoints replaces every control point, given in the current coordinate
// system.
func (g *Spline) SetPoints(pts []Vec2) {
	g.points = g.points[:0]
	for _, p := range pts {
		g.points = append(g.points, g.fromCurrent(p))
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// Curve returns the interpolated curve in the current coordinate system.
func (g *Spline) Curve() []Vec2 {
	return CatmullRom(g.Points(), splineSegmentsPerSpan)
}

// Outline returns the interpolated curve in destination coordinates.
func (g *Spline) Outline() []Vec2 {
	return CatmullRom(g.Transform().current().TransformPoints(g.points), splineSegmentsPerSpan)
}

// BoundingBox returns the normalized box around the interpolated curve in the
// current coordinate system.
func (g *Spline) BoundingBox() Rect { return boundsOf(g.Curve()) }

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the curve.
func (g *Spline) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// ClosestPoint returns the point of the curve nearest to p, both in the
// current coordinate system.
func (g *Spline) ClosestPoint(p Vec2) Vec2 {
	return ClosestPointOnPolyline(p, g.Curve())
}

// Move translates every control point by delta, given in the current
// coordinate system.
func (g *Spline) Move(delta Vec2) {
	d := g.vectorFromCurrent(delta)
	for i := range g.points {
		g.points[i] = g.points[i].Add(d)
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// Clone returns an independent copy.
func (g *Spline) Clone() Graphic {
	dst := NewSpline(g.Name, g.points...)
	g.Node.cloneInto(&dst.Node)
	return dst
}
