package vellum

// Ellipse is the ellipse inscribed in the rectangle given by its corners.
type Ellipse struct {
	boundable
}

// NewEllipse creates the ellipse inscribed in r, in source coordinates.
func NewEllipse(name string, r Rect) *Ellipse {
	g := &Ellipse{}
	g.initBoundable(g, name, r)
	return g
}

// Center returns the center in the current coordinate system.
func (g *Ellipse) Center() Vec2 {
	c, _, _ := g.ellipseParams()
	return g.toCurrent(c)
}

// Outline returns the flattened closed outline in destination coordinates.
func (g *Ellipse) Outline() []Vec2 {
	c, a, b := g.ellipseParams()
	return g.Transform().current().TransformPoints(FlattenEllipse(c, a, b, outlineSegments))
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the outline.
func (g *Ellipse) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// Contains reports whether p, in destination coordinates, lies inside the
// ellipse.
func (g *Ellipse) Contains(p Vec2) bool {
	c, a, b := g.ellipseParams()
	if a == 0 || b == 0 {
		return false
	}
	q := g.Transform().ConvertToSource(p).Sub(c)
	return (q.X*q.X)/(a*a)+(q.Y*q.Y)/(b*b) <= 1
}

// ClosestPoint returns the point where the ray from the center through p
// crosses the ellipse. Both are in the current coordinate system. If p is the
// center, the center is returned.
func (g *Ellipse) ClosestPoint(p Vec2) Vec2 {
	c, a, b := g.ellipseParams()
	return g.toCurrent(EllipseIntersection(c, a, b, g.fromCurrent(p)))
}

// Clone returns an independent copy.
func (g *Ellipse) Clone() Graphic {
	dst := &Ellipse{}
	dst.initBoundable(dst, g.Name, Rect{})
	g.copyCorners(&dst.boundable)
	return dst
}
