package vellum

import "fmt"

// Polyline is an open or closed chain of points backed by one Line child per
// pair of consecutive points. Segments are kept in sync incrementally as points
// are inserted, removed or moved.
type Polyline struct {
	Composite
	points []Vec2
}

// NewPolyline creates a polyline through pts, in source coordinates.
func NewPolyline(name string, pts ...Vec2) *Polyline {
	g := &Polyline{}
	g.initComposite(g, name)
	g.SetPoints(pts)
	return g
}

// Len returns the number of points.
func (g *Polyline) Len() int { return len(g.points) }

// Point returns point i in the current coordinate system.
func (g *Polyline) Point(i int) Vec2 { return g.toCurrent(g.points[i]) }

// Points returns a copy of the points in the current coordinate system.
func (g *Polyline) Points() []Vec2 {
	out := make([]Vec2, len(g.points))
	for i, p := range g.points {
		out[i] = g.toCurrent(p)
	}
	return out
}

// Segments returns the line segments in order. The returned slice is a copy.
func (g *Polyline) Segments() []*Line {
	out := make([]*Line, len(g.children))
	for i, c := range g.children {
		out[i] = c.(*Line)
	}
	return out
}

// Closed reports whether the chain has at least three points and its first
// and last points coincide.
func (g *Polyline) Closed() bool {
	n := len(g.points)
	return n >= 3 && g.points[0].ApproxEqual(g.points[n-1])
}

// Append adds p, given in the current coordinate system, at the end.
func (g *Polyline) Append(p Vec2) {
	g.Insert(len(g.points), p)
}

// Insert inserts p, given in the current coordinate system, at index i.
// Panics if i is out of range.
func (g *Polyline) Insert(i int, p Vec2) {
	n := len(g.points)
	if i < 0 || i > n {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d]", i, n))
	}
	p = g.fromCurrent(p)
	g.points = append(g.points, Vec2{})
	copy(g.points[i+1:], g.points[i:])
	g.points[i] = p

	switch {
	case n == 0:
	case i == n:
		g.Composite.Add(g.newSegment(g.points[n-1], p))
	case i == 0:
		g.Composite.Insert(0, g.newSegment(p, g.points[1]))
	default:
		g.segment(i-1).setSourcePoints(g.points[i-1], p)
		g.Composite.Insert(i, g.newSegment(p, g.points[i+1]))
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// RemoveAt removes point i. Panics if i is out of range.
func (g *Polyline) RemoveAt(i int) {
	n := len(g.points)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d)", i, n))
	}
	switch {
	case n == 1:
	case i == 0:
		g.Composite.RemoveAt(0)
	case i == n-1:
		g.Composite.RemoveAt(n - 2)
	default:
		g.segment(i-1).setSourcePoints(g.points[i-1], g.points[i+1])
		g.Composite.RemoveAt(i)
	}
	copy(g.points[i:], g.points[i+1:])
	g.points = g.points[:n-1]
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// SetPoint moves point i to p, given in the current coordinate system. Panics
// if i is out of range.
func (g *Polyline) SetPoint(i int, p Vec2) {
	n := len(g.points)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vellum: point index %d out of range [0,%d)", i, n))
	}
	p = g.fromCurrent(p)
	if p == g.points[i] {
		return
	}
	g.points[i] = p
	if i > 0 {
		g.segment(i-1).setSourcePoints(g.points[i-1], p)
	}
	if i < n-1 {
		g.segment(i).setSourcePoints(p, g.points[i+1])
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// SetPoints replaces every point, given in the current coordinate system, and
// rebuilds the segments.
func (g *Polyline) SetPoints(pts []Vec2) {
	g.Composite.Clear()
	g.points = g.points[:0]
	for _, p := range pts {
		g.points = append(g.points, g.fromCurrent(p))
	}
	for i := 1; i < len(g.points); i++ {
		g.Composite.Add(g.newSegment(g.points[i-1], g.points[i]))
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// Clear removes every point.
func (g *Polyline) Clear() { g.SetPoints(nil) }

// Add panics: the segments of a polyline are derived from its points. Use
// Append or Insert.
func (g *Polyline) Add(Graphic) {
	panic("vellum: cannot add children to a polyline, use Append or Insert")
}

// Remove panics: the segments of a polyline are derived from its points. Use
// RemoveAt.
func (g *Polyline) Remove(Graphic) {
	panic("vellum: cannot remove children from a polyline, use RemoveAt")
}

func (g *Polyline) segment(i int) *Line { return g.children[i].(*Line) }

func (g *Polyline) newSegment(p1, p2 Vec2) *Line {
	return NewLine(fmt.Sprintf("%s/segment", g.Name), p1, p2)
}

// BoundingBox returns the normalized box around the points in the current
// coordinate system.
func (g *Polyline) BoundingBox() Rect { return boundsOf(g.Points()) }

// Outline returns the points in destination coordinates.
func (g *Polyline) Outline() []Vec2 {
	return g.Transform().current().TransformPoints(g.points)
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of any segment. A single-point polyline is hit near its
// point.
func (g *Polyline) HitTest(p Vec2) bool {
	if len(g.points) == 1 {
		return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
	}
	return g.Composite.HitTest(p)
}

// ClosestPoint returns the point of the chain nearest to p, both in the
// current coordinate system.
func (g *Polyline) ClosestPoint(p Vec2) Vec2 {
	if len(g.points) == 1 {
		return g.Point(0)
	}
	return g.Composite.ClosestPoint(p)
}

// Move translates every point by delta, given in the current coordinate system.
func (g *Polyline) Move(delta Vec2) {
	d := g.vectorFromCurrent(delta)
	if d == (Vec2{}) {
		return
	}
	for i := range g.points {
		g.points[i] = g.points[i].Add(d)
	}
	for i, c := range g.children {
		c.(*Line).setSourcePoints(g.points[i], g.points[i+1])
	}
	g.NotifyVisualStateChanged("Points", VisualStateGeometry)
}

// Clone returns an independent copy with its own segments.
func (g *Polyline) Clone() Graphic {
	dst := &Polyline{}
	dst.initComposite(dst, g.Name)
	dst.points = append([]Vec2(nil), g.points...)
	for i := 1; i < len(dst.points); i++ {
		dst.Composite.Add(dst.newSegment(dst.points[i-1], dst.points[i]))
	}
	g.Node.cloneInto(&dst.Node)
	return dst
}
