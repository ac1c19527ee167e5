package vellum

// Point is a single location with a zero-size bounding box.
type Point struct {
	Node
	location Vec2
}

// NewPoint creates a point at p, in source coordinates.
func NewPoint(name string, p Vec2) *Point {
	g := &Point{location: p}
	nodeDefaults(&g.Node, g, name)
	return g
}

// Location returns the point in the current coordinate system.
func (g *Point) Location() Vec2 { return g.toCurrent(g.location) }

// SetLocation moves the point to p, given in the current coordinate system.
func (g *Point) SetLocation(p Vec2) {
	p = g.fromCurrent(p)
	if p == g.location {
		return
	}
	g.location = p
	g.NotifyVisualStateChanged("Location", VisualStateGeometry)
}

// BoundingBox returns a zero-size box at the location.
func (g *Point) BoundingBox() Rect {
	p := g.Location()
	return Rect{X: p.X, Y: p.Y}
}

// HitTest reports whether p, in destination coordinates, coincides with the
// location within FloatTolerance.
func (g *Point) HitTest(p Vec2) bool {
	return g.Transform().ConvertToDestination(g.location).ApproxEqual(p)
}

// ClosestPoint returns the location.
func (g *Point) ClosestPoint(Vec2) Vec2 { return g.Location() }

// Move translates the point by delta, given in the current coordinate system.
func (g *Point) Move(delta Vec2) {
	g.SetLocation(g.Location().Add(delta))
}

// Clone returns an independent copy.
func (g *Point) Clone() Graphic {
	dst := NewPoint(g.Name, g.location)
	g.Node.cloneInto(&dst.Node)
	return dst
}
