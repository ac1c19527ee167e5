package vellum

import "testing"

func TestPointBoundingBoxIsEmpty(t *testing.T) {
	p := NewPoint("p", Vec2{4, 5})
	box := p.BoundingBox()
	assertRect(t, "box", box, Rect{4, 5, 0, 0})
	if !box.IsEmpty() {
		t.Error("point box should be empty")
	}
}

func TestPointHitTestExact(t *testing.T) {
	p := NewPoint("p", Vec2{4, 5})
	p.Transform().SetScale(2)
	if !p.HitTest(Vec2{8, 10}) {
		t.Error("destination location should hit")
	}
	if p.HitTest(Vec2{8.5, 10}) {
		t.Error("a point only hits at its location")
	}
}

func TestPointSetLocationInDestination(t *testing.T) {
	p := NewPoint("p", Vec2{})
	p.Transform().SetTranslation(Vec2{10, 0})
	WithCoordinateSystem(p, Destination, func() {
		p.SetLocation(Vec2{15, 5})
		assertVec(t, "ClosestPoint", p.ClosestPoint(Vec2{100, 100}), Vec2{15, 5})
	})
	assertVec(t, "source", p.Location(), Vec2{5, 5})
}

func TestPointClone(t *testing.T) {
	p := NewPoint("p", Vec2{1, 2})
	p.SetVisible(false)
	dup := p.Clone().(*Point)
	if dup.Visible() {
		t.Error("clone should copy visibility")
	}
	dup.Move(Vec2{1, 1})
	assertVec(t, "original", p.Location(), Vec2{1, 2})
	assertVec(t, "clone", dup.Location(), Vec2{2, 3})
}
