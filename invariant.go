package vellum

import "math"

// invariant is the shared state of shapes whose extent is fixed in
// destination units. The shape is anchored at a source point; its corner
// offsets are destination-space vectors relative to the anchor, rotated to
// follow the direction the source x-axis takes in destination space. Ancestor
// scale does not change the on-screen size.
type invariant struct {
	Node
	location       Vec2
	invTopLeft     Vec2
	invBottomRight Vec2
}

func (v *invariant) initInvariant(self Graphic, name string, location, topLeft, bottomRight Vec2) {
	nodeDefaults(&v.Node, self, name)
	v.location = location
	v.invTopLeft = topLeft
	v.invBottomRight = bottomRight
}

// Location returns the anchor in the current coordinate system.
func (v *invariant) Location() Vec2 { return v.toCurrent(v.location) }

// SetLocation moves the anchor to p, given in the current coordinate system.
func (v *invariant) SetLocation(p Vec2) {
	p = v.fromCurrent(p)
	if p == v.location {
		return
	}
	v.location = p
	v.NotifyVisualStateChanged("Location", VisualStateGeometry)
}

// InvariantTopLeft returns the top-left offset from the anchor in destination units.
func (v *invariant) InvariantTopLeft() Vec2 { return v.invTopLeft }

// SetInvariantTopLeft sets the top-left offset in destination units.
func (v *invariant) SetInvariantTopLeft(p Vec2) {
	if p == v.invTopLeft {
		return
	}
	v.invTopLeft = p
	v.NotifyVisualStateChanged("InvariantTopLeft", VisualStateGeometry)
}

// InvariantBottomRight returns the bottom-right offset from the anchor in
// destination units.
func (v *invariant) InvariantBottomRight() Vec2 { return v.invBottomRight }

// SetInvariantBottomRight sets the bottom-right offset in destination units.
func (v *invariant) SetInvariantBottomRight(p Vec2) {
	if p == v.invBottomRight {
		return
	}
	v.invBottomRight = p
	v.NotifyVisualStateChanged("InvariantBottomRight", VisualStateGeometry)
}

// frame returns the matrix mapping invariant offsets to destination
// coordinates: a rotation by the rounded angle of the source x-axis in
// destination space, then a translation to the anchor.
func (v *invariant) frame() Matrix {
	m := v.Transform().current()
	anchor := m.TransformPoint(v.location)
	rot := math.Round(vectorAngle(m.TransformVector(Vec2{100, 0})))
	return Translate(anchor.X, anchor.Y).Multiply(RotateDegrees(rot))
}

// offsetRect returns the invariant rectangle in offset space.
func (v *invariant) offsetRect() Rect { return RectFromCorners(v.invTopLeft, v.invBottomRight) }

// TopLeft returns the top-left corner in the current coordinate system.
func (v *invariant) TopLeft() Vec2 { return v.fromDestination(v.frame().TransformPoint(v.invTopLeft)) }

// BottomRight returns the bottom-right corner in the current coordinate system.
func (v *invariant) BottomRight() Vec2 {
	return v.fromDestination(v.frame().TransformPoint(v.invBottomRight))
}

// Rect returns the rectangle spanned by the corners in the current coordinate
// system. It is not normalized.
func (v *invariant) Rect() Rect { return RectFromCorners(v.TopLeft(), v.BottomRight()) }

// Width returns the signed width in the current coordinate system.
func (v *invariant) Width() float64 { return v.BottomRight().X - v.TopLeft().X }

// Height returns the signed height in the current coordinate system.
func (v *invariant) Height() float64 { return v.BottomRight().Y - v.TopLeft().Y }

// BoundingBox returns the normalized box around the four rotated corners in
// the current coordinate system.
func (v *invariant) BoundingBox() Rect {
	pts := v.frame().TransformPoints(rectOutline(v.offsetRect())[:4])
	for i := range pts {
		pts[i] = v.fromDestination(pts[i])
	}
	return boundsOf(pts)
}

// Move translates the anchor by delta, given in the current coordinate system.
func (v *invariant) Move(delta Vec2) {
	d := v.vectorFromCurrent(delta)
	if d == (Vec2{}) {
		return
	}
	v.location = v.location.Add(d)
	v.NotifyVisualStateChanged("Location", VisualStateGeometry)
}

// fromDestination maps a destination point into the current coordinate system.
func (v *invariant) fromDestination(p Vec2) Vec2 {
	if v.CoordinateSystem() == Destination {
		return p
	}
	return v.Transform().ConvertToSource(p)
}

// toDestination maps a point in the current coordinate system to destination.
func (v *invariant) toDestination(p Vec2) Vec2 {
	if v.CoordinateSystem() == Destination {
		return p
	}
	return v.Transform().ConvertToDestination(p)
}

// closestInFrame maps p from the current coordinate system into offset space,
// applies fn, and maps the result back.
func (v *invariant) closestInFrame(p Vec2, fn func(q Vec2) Vec2) Vec2 {
	f := v.frame()
	inv, _ := f.Invert()
	q := fn(inv.TransformPoint(v.toDestination(p)))
	return v.fromDestination(f.TransformPoint(q))
}

func (v *invariant) copyInvariant(dst *invariant) {
	v.Node.cloneInto(&dst.Node)
	dst.location = v.location
	dst.invTopLeft = v.invTopLeft
	dst.invBottomRight = v.invBottomRight
}

// --- InvariantRectangle ---

// InvariantRectangle is a rectangle of fixed on-screen size anchored to a
// source point.
type InvariantRectangle struct {
	invariant
}

// NewInvariantRectangle creates a rectangle anchored at location (source)
// whose corners are offset by topLeft and bottomRight (destination units).
func NewInvariantRectangle(name string, location, topLeft, bottomRight Vec2) *InvariantRectangle {
	g := &InvariantRectangle{}
	g.initInvariant(g, name, location, topLeft, bottomRight)
	return g
}

// Outline returns the closed outline in destination coordinates.
func (g *InvariantRectangle) Outline() []Vec2 {
	return g.frame().TransformPoints(rectOutline(g.offsetRect()))
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the outline.
func (g *InvariantRectangle) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// Contains reports whether p, in destination coordinates, lies inside.
func (g *InvariantRectangle) Contains(p Vec2) bool {
	o := g.Outline()
	return PointInPolygon(p, o[:4])
}

// ClosestPoint returns the point of the outline nearest to p, both in the
// current coordinate system.
func (g *InvariantRectangle) ClosestPoint(p Vec2) Vec2 {
	return g.closestInFrame(p, func(q Vec2) Vec2 {
		return ClosestPointOnPolyline(q, rectOutline(g.offsetRect()))
	})
}

// Clone returns an independent copy.
func (g *InvariantRectangle) Clone() Graphic {
	dst := &InvariantRectangle{}
	dst.initInvariant(dst, g.Name, Vec2{}, Vec2{}, Vec2{})
	g.copyInvariant(&dst.invariant)
	return dst
}

// --- InvariantEllipse ---

// InvariantEllipse is an ellipse of fixed on-screen size anchored to a source
// point.
type InvariantEllipse struct {
	invariant
}

// NewInvariantEllipse creates an ellipse inscribed in the invariant rectangle
// anchored at location.
func NewInvariantEllipse(name string, location, topLeft, bottomRight Vec2) *InvariantEllipse {
	g := &InvariantEllipse{}
	g.initInvariant(g, name, location, topLeft, bottomRight)
	return g
}

func (v *invariant) offsetEllipse() (center Vec2, semiX, semiY float64) {
	r := v.offsetRect().Normalize()
	return r.Center(), r.Width / 2, r.Height / 2
}

// Outline returns the flattened closed outline in destination coordinates.
func (g *InvariantEllipse) Outline() []Vec2 {
	c, a, b := g.offsetEllipse()
	return g.frame().TransformPoints(FlattenEllipse(c, a, b, outlineSegments))
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the outline.
func (g *InvariantEllipse) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// ClosestPoint returns the ray intersection of p with the ellipse, both in the
// current coordinate system.
func (g *InvariantEllipse) ClosestPoint(p Vec2) Vec2 {
	c, a, b := g.offsetEllipse()
	return g.closestInFrame(p, func(q Vec2) Vec2 { return EllipseIntersection(c, a, b, q) })
}

// Clone returns an independent copy.
func (g *InvariantEllipse) Clone() Graphic {
	dst := &InvariantEllipse{}
	dst.initInvariant(dst, g.Name, Vec2{}, Vec2{}, Vec2{})
	g.copyInvariant(&dst.invariant)
	return dst
}

// --- InvariantArc ---

// InvariantArc is an arc of fixed on-screen size anchored to a source point.
// Its angles are relative to the invariant frame, so the arc turns with its
// ancestors but never stretches.
type InvariantArc struct {
	invariant
	startAngle float64
	sweepAngle float64
}

// NewInvariantArc creates an arc of the ellipse inscribed in the invariant
// rectangle anchored at location.
func NewInvariantArc(name string, location, topLeft, bottomRight Vec2, startAngle, sweepAngle float64) *InvariantArc {
	g := &InvariantArc{startAngle: NormalizeDegrees(startAngle), sweepAngle: clampSweep(sweepAngle)}
	g.initInvariant(g, name, location, topLeft, bottomRight)
	return g
}

// StartAngle returns the start angle relative to the invariant frame.
func (g *InvariantArc) StartAngle() float64 { return g.startAngle }

// SetStartAngle sets the start angle relative to the invariant frame.
func (g *InvariantArc) SetStartAngle(deg float64) {
	deg = NormalizeDegrees(deg)
	if deg == g.startAngle {
		return
	}
	g.startAngle = deg
	g.NotifyVisualStateChanged("StartAngle", VisualStateGeometry)
}

// SweepAngle returns the sweep angle.
func (g *InvariantArc) SweepAngle() float64 { return g.sweepAngle }

// SetSweepAngle sets the sweep angle, clamped to [-360, 360].
func (g *InvariantArc) SetSweepAngle(deg float64) {
	deg = clampSweep(deg)
	if deg == g.sweepAngle {
		return
	}
	g.sweepAngle = deg
	g.NotifyVisualStateChanged("SweepAngle", VisualStateGeometry)
}

// Outline returns the flattened arc in destination coordinates.
func (g *InvariantArc) Outline() []Vec2 {
	c, a, b := g.offsetEllipse()
	return g.frame().TransformPoints(FlattenArc(c, a, b, g.startAngle, g.sweepAngle, outlineSegments))
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the arc.
func (g *InvariantArc) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// ClosestPoint returns the point of the arc nearest to p, both in the current
// coordinate system.
func (g *InvariantArc) ClosestPoint(p Vec2) Vec2 {
	c, a, b := g.offsetEllipse()
	return g.closestInFrame(p, func(q Vec2) Vec2 {
		return arcClosestPoint(c, a, b, g.startAngle, g.sweepAngle, q)
	})
}

// Clone returns an independent copy.
func (g *InvariantArc) Clone() Graphic {
	dst := &InvariantArc{startAngle: g.startAngle, sweepAngle: g.sweepAngle}
	dst.initInvariant(dst, g.Name, Vec2{}, Vec2{}, Vec2{})
	g.copyInvariant(&dst.invariant)
	return dst
}
