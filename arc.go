package vellum

import "math"

// Arc is an elliptical arc of the ellipse inscribed in its corners. Angles are
// in degrees, clockwise from the positive x-axis in a y-down space. A
// positive sweep runs clockwise.
type Arc struct {
	boundable
	startAngle float64
	sweepAngle float64
}

// NewArc creates an arc of the ellipse inscribed in r. Angles are in source
// coordinates.
func NewArc(name string, r Rect, startAngle, sweepAngle float64) *Arc {
	g := &Arc{startAngle: NormalizeDegrees(startAngle), sweepAngle: clampSweep(sweepAngle)}
	g.initBoundable(g, name, r)
	return g
}

func clampSweep(sweep float64) float64 {
	return math.Max(-360, math.Min(360, sweep))
}

// StartAngle returns the start angle in the current coordinate system.
func (g *Arc) StartAngle() float64 {
	if g.CoordinateSystem() == Destination {
		return convertStartAngle(g.Transform().current(), g.startAngle)
	}
	return g.startAngle
}

// SetStartAngle sets the start angle, given in the current coordinate system.
func (g *Arc) SetStartAngle(deg float64) {
	if g.CoordinateSystem() == Destination {
		inv, _ := g.Transform().current().Invert()
		deg = convertStartAngle(inv, deg)
	}
	deg = NormalizeDegrees(deg)
	if deg == g.startAngle {
		return
	}
	g.startAngle = deg
	g.NotifyVisualStateChanged("StartAngle", VisualStateGeometry)
}

// SweepAngle returns the sweep angle in the current coordinate system. A flip
// in the transform reverses its sign.
func (g *Arc) SweepAngle() float64 {
	if g.CoordinateSystem() == Destination {
		return convertSweepAngle(g.Transform().current(), g.startAngle, g.sweepAngle)
	}
	return g.sweepAngle
}

// SetSweepAngle sets the sweep angle, given in the current coordinate system.
func (g *Arc) SetSweepAngle(deg float64) {
	deg = clampSweep(deg)
	if g.CoordinateSystem() == Destination {
		m := g.Transform().current()
		inv, _ := m.Invert()
		deg = convertSweepAngle(inv, convertStartAngle(m, g.startAngle), deg)
	}
	if deg == g.sweepAngle {
		return
	}
	g.sweepAngle = deg
	g.NotifyVisualStateChanged("SweepAngle", VisualStateGeometry)
}

// Outline returns the flattened arc in destination coordinates.
func (g *Arc) Outline() []Vec2 {
	c, a, b := g.ellipseParams()
	pts := FlattenArc(c, a, b, g.startAngle, g.sweepAngle, outlineSegments)
	return g.Transform().current().TransformPoints(pts)
}

// HitTest reports whether p, in destination coordinates, lies within
// HitTestDistance of the arc.
func (g *Arc) HitTest(p Vec2) bool {
	return DistanceToPolyline(p, g.Outline()) <= HitTestDistance
}

// ClosestPoint returns the point of the arc nearest to p, both in the current
// coordinate system. It is the nearer endpoint unless the ray from the center
// through p meets the ellipse strictly inside the sweep at a closer point.
func (g *Arc) ClosestPoint(p Vec2) Vec2 {
	c, a, b := g.ellipseParams()
	return g.toCurrent(arcClosestPoint(c, a, b, g.startAngle, g.sweepAngle, g.fromCurrent(p)))
}

// Clone returns an independent copy.
func (g *Arc) Clone() Graphic {
	dst := &Arc{startAngle: g.startAngle, sweepAngle: g.sweepAngle}
	dst.initBoundable(dst, g.Name, Rect{})
	g.copyCorners(&dst.boundable)
	return dst
}

// arcClosestPoint implements Arc.ClosestPoint in the arc's own space.
func arcClosestPoint(center Vec2, a, b, start, sweep float64, p Vec2) Vec2 {
	p1 := pointOnEllipse(center, a, b, start)
	p2 := pointOnEllipse(center, a, b, start+sweep)
	best := p1
	if p.Distance(p2) < p.Distance(p1) {
		best = p2
	}
	q := EllipseIntersection(center, a, b, p)
	if q == center {
		return best
	}
	if angleInSweep(vectorAngle(q.Sub(center)), start, sweep) && p.Distance(q) < p.Distance(best) {
		return q
	}
	return best
}

// angleInSweep reports whether angle lies strictly inside the sweep that
// starts at start.
func angleInSweep(angle, start, sweep float64) bool {
	if math.Abs(sweep) >= 360 {
		return true
	}
	if sweep > 0 {
		rel := NormalizeDegrees(angle - start)
		return rel > 0 && rel < sweep
	}
	rel := NormalizeDegrees(start - angle)
	return rel > 0 && rel < -sweep
}

// angleVector returns the unit vector at deg degrees.
func angleVector(deg float64) Vec2 {
	sin, cos := sincosDegrees(deg)
	return Vec2{cos, sin}
}

// convertStartAngle maps an angle through the linear part of m by
// transforming its direction vector. Angles are not preserved under
// anisotropic scale, so the scalar cannot be converted directly. The result is
// rounded to whole degrees.
func convertStartAngle(m Matrix, deg float64) float64 {
	return NormalizeDegrees(math.Round(vectorAngle(m.TransformVector(angleVector(deg)))))
}

// convertSweepAngle maps a sweep starting at start through m. The magnitude is
// the angle between the transformed start and end directions, rounded to
// whole degrees; the sign flips when m mirrors. Full sweeps stay full.
func convertSweepAngle(m Matrix, start, sweep float64) float64 {
	if sweep == 0 {
		return 0
	}
	dir := sign(sweep) * sign(m.Determinant())
	if math.Abs(sweep) >= 360 {
		return 360 * dir
	}
	s := vectorAngle(m.TransformVector(angleVector(start)))
	e := vectorAngle(m.TransformVector(angleVector(start + sweep)))
	d := NormalizeDegrees(math.Round(e - s))
	if dir > 0 || d == 0 {
		return d
	}
	return d - 360
}
