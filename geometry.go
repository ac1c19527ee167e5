package vellum

import "math"

// outlineSegments is the number of segments used to flatten a full ellipse.
const outlineSegments = 64

// splineSegmentsPerSpan is the number of segments per control-point span used
// to flatten a spline.
const splineSegmentsPerSpan = 16

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 || d == 0 {
		return 0
	}
	return d
}

// EllipseIntersection returns the point where the ray from center through p
// crosses the ellipse with semi-axes a (along x) and b (along y). If p equals
// the center the center is returned.
func EllipseIntersection(center Vec2, a, b float64, p Vec2) Vec2 {
	a, b = math.Abs(a), math.Abs(b)
	xt := p.X - center.X
	yt := p.Y - center.Y
	denom := math.Sqrt(xt*xt*b*b + yt*yt*a*a)
	if denom < 1e-12 {
		return center
	}
	m := a * b / denom
	return Vec2{center.X + m*xt, center.Y + m*yt}
}

// pointOnEllipse returns the point of the ellipse in the direction of the
// given angle, measured clockwise from the positive x-axis.
func pointOnEllipse(center Vec2, a, b, deg float64) Vec2 {
	sin, cos := sincosDegrees(deg)
	return EllipseIntersection(center, a, b, Vec2{center.X + cos, center.Y + sin})
}

// ClosestPointOnSegment returns the point of segment a-b nearest to p.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if math.Abs(dx) < 1e-12 && math.Abs(dy) < 1e-12 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	switch {
	case t < 0:
		return a
	case t > 1:
		return b
	}
	return Vec2{a.X + t*dx, a.Y + t*dy}
}

// DistanceToSegment returns the distance from p to the segment a-b (not the
// infinite line through it).
func DistanceToSegment(p, a, b Vec2) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}

// DistanceToPolyline returns the shortest distance from p to the open chain of
// segments through pts. A single point degenerates to point distance; an empty
// chain returns +Inf.
func DistanceToPolyline(p Vec2, pts []Vec2) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		if d := DistanceToSegment(p, pts[i-1], pts[i]); d < best {
			best = d
		}
	}
	return best
}

// ClosestPointOnPolyline returns the point of the chain through pts nearest to
// p. Ties keep the earliest segment.
func ClosestPointOnPolyline(p Vec2, pts []Vec2) Vec2 {
	switch len(pts) {
	case 0:
		return p
	case 1:
		return pts[0]
	}
	best := pts[0]
	bestDist := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		c := ClosestPointOnSegment(p, pts[i-1], pts[i])
		if d := p.Distance(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// PointInPolygon reports whether p lies inside the closed polygon pts using
// the even-odd rule.
func PointInPolygon(p Vec2, pts []Vec2) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// SubtendedAngle returns the angle in degrees between the rays vertex→start
// and vertex→end. The sign is negative when end lies clockwise of start in a
// y-down space. Zero-length rays yield 0.
func SubtendedAngle(start, vertex, end Vec2) float64 {
	a := start.Sub(vertex)
	b := end.Sub(vertex)
	magA, magB := a.Length(), b.Length()
	if magA < FloatTolerance || magB < FloatTolerance {
		return 0
	}
	cos := math.Max(-1, math.Min(1, a.Dot(b)/magA/magB))
	theta := math.Acos(cos)
	if z := a.Cross(b); math.Abs(z) > FloatTolerance {
		theta *= -sign(z)
	}
	return theta * 180 / math.Pi
}

// vectorAngle returns the angle of v in degrees in [0, 360), clockwise from
// the positive x-axis in a y-down space.
func vectorAngle(v Vec2) float64 {
	return NormalizeDegrees(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// FlattenEllipse returns a closed outline of the ellipse: segments+1 points
// with the last equal to the first.
func FlattenEllipse(center Vec2, a, b float64, segments int) []Vec2 {
	return FlattenArc(center, a, b, 0, 360, segments)
}

// FlattenArc returns the outline of the elliptical arc starting at startDeg
// and sweeping sweepDeg (negative sweeps run counter-clockwise). The number of
// segments is scaled to the sweep.
func FlattenArc(center Vec2, a, b, startDeg, sweepDeg float64, segments int) []Vec2 {
	n := int(math.Ceil(float64(segments) * math.Abs(sweepDeg) / 360))
	if n < 1 {
		n = 1
	}
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = pointOnEllipse(center, a, b, startDeg+sweepDeg*float64(i)/float64(n))
	}
	return pts
}

// CatmullRom interpolates a uniform Catmull-Rom spline through pts. The
// curve passes through every control point; end tangents reuse the end points.
func CatmullRom(pts []Vec2, segmentsPerSpan int) []Vec2 {
	if len(pts) < 3 || segmentsPerSpan < 1 {
		return append([]Vec2(nil), pts...)
	}
	out := make([]Vec2, 0, (len(pts)-1)*segmentsPerSpan+1)
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		for s := 0; s < segmentsPerSpan; s++ {
			t := float64(s) / float64(segmentsPerSpan)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	return append(out, pts[len(pts)-1])
}

func catmullRomPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return Vec2{f(p0.X, p1.X, p2.X, p3.X), f(p0.Y, p1.Y, p2.Y, p3.Y)}
}

// rectOutline returns the closed outline of r: five points starting and
// ending at the top-left corner.
func rectOutline(r Rect) []Vec2 {
	tl := r.TopLeft()
	br := r.BottomRight()
	return []Vec2{tl, {br.X, tl.Y}, br, {tl.X, br.Y}, tl}
}
