package vellum

import "math"

// FloatTolerance is the absolute tolerance used when comparing coordinates.
const FloatTolerance = 1e-5

// HitTestDistance is the distance, in destination pixels, within which a point
// is considered to hit the outline of a shape.
const HitTestDistance = 10.0

// CoordinateSystem selects the space that a graphic's getters and setters
// operate in.
type CoordinateSystem uint8

const (
	// Source is the graphic's own space, that of its immediate parent.
	Source CoordinateSystem = iota
	// Destination is the space of the scene root, i.e. display pixels.
	Destination
)

// String returns "source" or "destination".
func (c CoordinateSystem) String() string {
	switch c {
	case Source:
		return "source"
	case Destination:
		return "destination"
	default:
		return "unknown"
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the magnitude of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Normalize returns the unit vector in the direction of v, or the zero vector
// if v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ApproxEqual reports whether v and o are within FloatTolerance on both axes.
func (v Vec2) ApproxEqual(o Vec2) bool {
	return math.Abs(v.X-o.X) <= FloatTolerance && math.Abs(v.Y-o.Y) <= FloatTolerance
}

// Rect is a rectangle given by its top-left corner and a signed size. The
// coordinate system has its origin at the top-left, with Y increasing
// downward. Width and Height are negative when the corners are inverted; use
// Normalize to get a positive-area rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCorners returns the rectangle spanning from topLeft to bottomRight.
// The result is not normalized.
func RectFromCorners(topLeft, bottomRight Vec2) Rect {
	return Rect{topLeft.X, topLeft.Y, bottomRight.X - topLeft.X, bottomRight.Y - topLeft.Y}
}

// TopLeft returns the (X, Y) corner.
func (r Rect) TopLeft() Vec2 { return Vec2{r.X, r.Y} }

// BottomRight returns the corner opposite to TopLeft.
func (r Rect) BottomRight() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Center returns the center point of the rect.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Normalize returns the equivalent rectangle with non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// IsEmpty reports whether the rect has neither width nor height.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 && r.Height == 0
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside. Inverted rectangles are
// normalized first.
func (r Rect) Contains(p Vec2) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X <= n.X+n.Width &&
		p.Y >= n.Y && p.Y <= n.Y+n.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	a, b := r.Normalize(), other.Normalize()
	return a.X <= b.X+b.Width &&
		a.X+a.Width >= b.X &&
		a.Y <= b.Y+b.Height &&
		a.Y+a.Height >= b.Y
}

// Union returns the smallest normalized rect containing both rects. Empty
// rects do not contribute.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other.Normalize()
	}
	if other.IsEmpty() {
		return r.Normalize()
	}
	a, b := r.Normalize(), other.Normalize()
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Inflate returns r grown by d on every side. r is normalized first.
func (r Rect) Inflate(d float64) Rect {
	n := r.Normalize()
	return Rect{n.X - d, n.Y - d, n.Width + 2*d, n.Height + 2*d}
}

// boundsOf returns the normalized bounding rect of a point set.
func boundsOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
