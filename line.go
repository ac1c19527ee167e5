package vellum

// Line is a straight segment between two points.
type Line struct {
	Node
	p1, p2 Vec2
}

// NewLine creates a segment from p1 to p2, in source coordinates.
func NewLine(name string, p1, p2 Vec2) *Line {
	g := &Line{p1: p1, p2: p2}
	nodeDefaults(&g.Node, g, name)
	return g
}

// Point1 returns the first end point in the current coordinate system.
func (g *Line) Point1() Vec2 { return g.toCurrent(g.p1) }

// SetPoint1 sets the first end point, given in the current coordinate system.
func (g *Line) SetPoint1(p Vec2) {
	p = g.fromCurrent(p)
	if p == g.p1 {
		return
	}
	g.p1 = p
	g.NotifyVisualStateChanged("Point1", VisualStateGeometry)
}

// Point2 returns the second end point in the current coordinate system.
func (g *Line) Point2() Vec2 { return g.toCurrent(g.p2) }

// SetPoint2 sets the second end point, given in the current coordinate system.
func (g *Line) SetPoint2(p Vec2) {
	p = g.fromCurrent(p)
	if p == g.p2 {
		return
	}
	g.p2 = p
	g.NotifyVisualStateChanged("Point2", VisualStateGeometry)
}

// setSourcePoints replaces both end points, in source coordinates.
func (g *Line) setSourcePoints(p1, p2 Vec2) {
	if p1 == g.p1 && p2 == g.p2 {
		return
	}
	g.p1, g.p2 = p1, p2
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// Length returns the length in the current coordinate system.
func (g *Line) Length() float64 { return g.Point1().Distance(g.Point2()) }

// BoundingBox returns the normalized box spanned by the end points.
func (g *Line) BoundingBox() Rect {
	return RectFromCorners(g.Point1(), g.Point2()).Normalize()
}

// Outline returns both end points in destination coordinates.
func (g *Line) Outline() []Vec2 {
	m := g.Transform().current()
	return []Vec2{m.TransformPoint(g.p1), m.TransformPoint(g.p2)}
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the segment.
func (g *Line) HitTest(p Vec2) bool {
	o := g.Outline()
	return DistanceToSegment(p, o[0], o[1]) <= HitTestDistance
}

// ClosestPoint returns the point of the segment nearest to p, both in the
// current coordinate system.
func (g *Line) ClosestPoint(p Vec2) Vec2 {
	return ClosestPointOnSegment(p, g.Point1(), g.Point2())
}

// Move translates both end points by delta, given in the current coordinate
// system.
func (g *Line) Move(delta Vec2) {
	d := g.vectorFromCurrent(delta)
	g.setSourcePoints(g.p1.Add(d), g.p2.Add(d))
}

// Clone returns an independent copy.
func (g *Line) Clone() Graphic {
	dst := NewLine(g.Name, g.p1, g.p2)
	g.Node.cloneInto(&dst.Node)
	return dst
}
