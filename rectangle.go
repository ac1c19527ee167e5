package vellum

// Rectangle is an axis-aligned rectangle in its source space. Under a rotated
// transform it appears rotated in destination space.
type Rectangle struct {
	boundable
}

// NewRectangle creates a rectangle spanning r, in source coordinates.
func NewRectangle(name string, r Rect) *Rectangle {
	g := &Rectangle{}
	g.initBoundable(g, name, r)
	return g
}

// Outline returns the closed outline in destination coordinates.
func (g *Rectangle) Outline() []Vec2 {
	pts := g.cornersIn(Destination)
	return append(pts, pts[0])
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the outline.
func (g *Rectangle) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// Contains reports whether p, in destination coordinates, lies inside the
// rectangle.
func (g *Rectangle) Contains(p Vec2) bool {
	return PointInPolygon(p, g.cornersIn(Destination))
}

// ClosestPoint returns the point of the outline nearest to p. Both are in the
// current coordinate system.
func (g *Rectangle) ClosestPoint(p Vec2) Vec2 {
	pts := g.cornersIn(g.CoordinateSystem())
	return ClosestPointOnPolyline(p, append(pts, pts[0]))
}

// Clone returns an independent copy.
func (g *Rectangle) Clone() Graphic {
	dst := &Rectangle{}
	dst.initBoundable(dst, g.Name, Rect{})
	g.copyCorners(&dst.boundable)
	return dst
}
