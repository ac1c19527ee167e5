package vellum

import "testing"

// zoomedParent returns a composite scaled by s with g attached.
func zoomedParent(s float64, g Graphic) *Composite {
	c := NewComposite("zoom")
	c.Transform().SetScale(s)
	c.Add(g)
	return c
}

func TestInvariantRectangleKeepsScreenSize(t *testing.T) {
	r := NewInvariantRectangle("r", Vec2{10, 10}, Vec2{-5, -5}, Vec2{5, 5})
	zoomedParent(4, r)

	WithCoordinateSystem(r, Destination, func() {
		assertVec(t, "anchor", r.Location(), Vec2{40, 40})
		assertVec(t, "TopLeft", r.TopLeft(), Vec2{35, 35})
		assertVec(t, "BottomRight", r.BottomRight(), Vec2{45, 45})
		assertNear(t, "Width", r.Width(), 10)
	})
	assertVec(t, "source TopLeft", r.TopLeft(), Vec2{8.75, 8.75})
	assertNear(t, "source Width", r.Width(), 2.5)
	assertVec(t, "offset unchanged", r.InvariantBottomRight(), Vec2{5, 5})
}

func TestInvariantRectangleFollowsRotation(t *testing.T) {
	r := NewInvariantRectangle("r", Vec2{10, 10}, Vec2{-5, -5}, Vec2{5, 5})
	c := NewComposite("rot")
	c.Transform().SetRotation(90)
	c.Add(r)

	WithCoordinateSystem(r, Destination, func() {
		assertVec(t, "anchor", r.Location(), Vec2{-10, 10})
		assertVec(t, "TopLeft", r.TopLeft(), Vec2{-5, 5})
		assertVec(t, "BottomRight", r.BottomRight(), Vec2{-15, 15})
		assertRect(t, "BoundingBox", r.BoundingBox(), Rect{-15, 5, 10, 10})
	})
}

func TestInvariantRectangleHitTestAndContains(t *testing.T) {
	r := NewInvariantRectangle("r", Vec2{10, 10}, Vec2{-20, -20}, Vec2{20, 20})
	zoomedParent(4, r)
	if !r.Contains(Vec2{40, 40}) {
		t.Error("anchor should be inside")
	}
	if !r.HitTest(Vec2{60, 40}) {
		t.Error("right edge should hit")
	}
	if r.HitTest(Vec2{40, 40}) {
		t.Error("center of a 40px box should not hit")
	}
}

func TestInvariantRectangleClosestPoint(t *testing.T) {
	r := NewInvariantRectangle("r", Vec2{10, 10}, Vec2{-5, -5}, Vec2{5, 5})
	zoomedParent(4, r)
	assertVec(t, "source", r.ClosestPoint(Vec2{20, 10}), Vec2{11.25, 10})
	WithCoordinateSystem(r, Destination, func() {
		assertVec(t, "destination", r.ClosestPoint(Vec2{80, 40}), Vec2{45, 40})
	})
}

func TestInvariantMoveAndOffsets(t *testing.T) {
	r := NewInvariantRectangle("r", Vec2{10, 10}, Vec2{-5, -5}, Vec2{5, 5})
	zoomedParent(4, r)
	WithCoordinateSystem(r, Destination, func() {
		r.Move(Vec2{8, 0})
	})
	assertVec(t, "moved anchor", r.Location(), Vec2{12, 10})

	fired := 0
	r.OnVisualStateChanged(func(VisualStateChange) { fired++ })
	r.SetInvariantTopLeft(Vec2{-5, -5})
	r.SetInvariantTopLeft(Vec2{-6, -6})
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestInvariantEllipseClosestPoint(t *testing.T) {
	e := NewInvariantEllipse("e", Vec2{0, 0}, Vec2{-10, -5}, Vec2{10, 5})
	zoomedParent(3, e)
	WithCoordinateSystem(e, Destination, func() {
		assertVec(t, "right", e.ClosestPoint(Vec2{100, 0}), Vec2{10, 0})
		assertVec(t, "down", e.ClosestPoint(Vec2{0, 100}), Vec2{0, 5})
	})
	if len(e.Outline()) != outlineSegments+1 {
		t.Error("ellipse outline should be closed")
	}
	if !e.HitTest(Vec2{0, 5}) {
		t.Error("outline point should hit")
	}
}

func TestInvariantArcTurnsWithGraphic(t *testing.T) {
	a := NewInvariantArc("a", Vec2{0, 0}, Vec2{-10, -10}, Vec2{10, 10}, 0, 90)
	a.Transform().SetRotation(90)
	o := a.Outline()
	assertVec(t, "start", o[0], Vec2{0, 10})
	assertVec(t, "end", o[len(o)-1], Vec2{-10, 0})
	assertNear(t, "start angle unchanged", a.StartAngle(), 0)

	a.SetSweepAngle(720)
	assertNear(t, "clamped sweep", a.SweepAngle(), 360)
}

func TestInvariantArcClosestPoint(t *testing.T) {
	a := NewInvariantArc("a", Vec2{0, 0}, Vec2{-10, -10}, Vec2{10, 10}, 0, 90)
	assertVec(t, "outside sweep", a.ClosestPoint(Vec2{-30, 1}), Vec2{0, 10})
}

func TestInvariantClone(t *testing.T) {
	a := NewInvariantArc("a", Vec2{3, 4}, Vec2{-1, -1}, Vec2{1, 1}, 45, 30)
	dup := a.Clone().(*InvariantArc)
	assertVec(t, "location", dup.Location(), Vec2{3, 4})
	assertNear(t, "start", dup.StartAngle(), 45)
	dup.SetLocation(Vec2{0, 0})
	assertVec(t, "original", a.Location(), Vec2{3, 4})

	r := NewInvariantRectangle("r", Vec2{1, 1}, Vec2{-2, -2}, Vec2{2, 2}).Clone().(*InvariantRectangle)
	assertVec(t, "rect offset", r.InvariantTopLeft(), Vec2{-2, -2})
	e := NewInvariantEllipse("e", Vec2{1, 1}, Vec2{-2, -2}, Vec2{2, 2}).Clone().(*InvariantEllipse)
	assertVec(t, "ellipse anchor", e.Location(), Vec2{1, 1})
}
