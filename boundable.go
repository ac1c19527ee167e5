package vellum

// boundable is the shared state of shapes defined by two corners: rectangles,
// ellipses and arcs. Corners are stored in source coordinates; every accessor
// honors the current coordinate system.
type boundable struct {
	Node
	topLeft     Vec2
	bottomRight Vec2
}

func (b *boundable) initBoundable(self Graphic, name string, r Rect) {
	nodeDefaults(&b.Node, self, name)
	b.topLeft = r.TopLeft()
	b.bottomRight = r.BottomRight()
}

// TopLeft returns the top-left corner in the current coordinate system.
func (b *boundable) TopLeft() Vec2 { return b.toCurrent(b.topLeft) }

// SetTopLeft sets the top-left corner, given in the current coordinate system.
func (b *boundable) SetTopLeft(p Vec2) {
	p = b.fromCurrent(p)
	if p == b.topLeft {
		return
	}
	b.topLeft = p
	b.NotifyVisualStateChanged("TopLeft", VisualStateGeometry)
}

// BottomRight returns the bottom-right corner in the current coordinate system.
func (b *boundable) BottomRight() Vec2 { return b.toCurrent(b.bottomRight) }

// SetBottomRight sets the bottom-right corner, given in the current coordinate system.
func (b *boundable) SetBottomRight(p Vec2) {
	p = b.fromCurrent(p)
	if p == b.bottomRight {
		return
	}
	b.bottomRight = p
	b.NotifyVisualStateChanged("BottomRight", VisualStateGeometry)
}

// Width returns BottomRight().X - TopLeft().X. It is negative when the corners
// are inverted.
func (b *boundable) Width() float64 { return b.BottomRight().X - b.TopLeft().X }

// Height returns BottomRight().Y - TopLeft().Y. It is negative when the
// corners are inverted.
func (b *boundable) Height() float64 { return b.BottomRight().Y - b.TopLeft().Y }

// Rect returns the rectangle spanned by the corners in the current coordinate
// system. It is not normalized.
func (b *boundable) Rect() Rect { return RectFromCorners(b.TopLeft(), b.BottomRight()) }

// SetRect sets both corners from r, given in the current coordinate system.
func (b *boundable) SetRect(r Rect) {
	tl := b.fromCurrent(r.TopLeft())
	br := b.fromCurrent(r.BottomRight())
	if tl == b.topLeft && br == b.bottomRight {
		return
	}
	b.topLeft, b.bottomRight = tl, br
	b.NotifyVisualStateChanged("Rect", VisualStateGeometry)
}

// BoundingBox returns the normalized bounding box of the four corners in the
// current coordinate system.
func (b *boundable) BoundingBox() Rect {
	return boundsOf(b.cornersIn(b.CoordinateSystem()))
}

// Move translates both corners by delta, given in the current coordinate system.
func (b *boundable) Move(delta Vec2) {
	d := b.vectorFromCurrent(delta)
	if d == (Vec2{}) {
		return
	}
	b.topLeft = b.topLeft.Add(d)
	b.bottomRight = b.bottomRight.Add(d)
	b.NotifyVisualStateChanged("Location", VisualStateGeometry)
}

// cornersIn returns the four corners, clockwise from the top-left, in cs.
func (b *boundable) cornersIn(cs CoordinateSystem) []Vec2 {
	pts := rectOutline(RectFromCorners(b.topLeft, b.bottomRight))[:4]
	if cs == Destination {
		return b.Transform().current().TransformPoints(pts)
	}
	return pts
}

// ellipseParams returns the center and semi-axes of the inscribed ellipse in
// source coordinates.
func (b *boundable) ellipseParams() (center Vec2, semiX, semiY float64) {
	r := RectFromCorners(b.topLeft, b.bottomRight).Normalize()
	return r.Center(), r.Width / 2, r.Height / 2
}

func (b *boundable) copyCorners(dst *boundable) {
	b.Node.cloneInto(&dst.Node)
	dst.topLeft = b.topLeft
	dst.bottomRight = b.bottomRight
}
