package vellum

import "testing"

// checkSegments verifies that the line children of pl match its points.
func checkSegments(t *testing.T, pl *Polyline) {
	t.Helper()
	segs := pl.Segments()
	want := pl.Len() - 1
	if want < 0 {
		want = 0
	}
	if len(segs) != want {
		t.Fatalf("segments = %d, want %d", len(segs), want)
	}
	pts := pl.Points()
	for i, s := range segs {
		if s.Parent() != Graphic(pl) {
			t.Errorf("segment %d not parented to the polyline", i)
		}
		assertVec(t, "segment start", s.Point1(), pts[i])
		assertVec(t, "segment end", s.Point2(), pts[i+1])
	}
}

func TestNewPolylineBuildsSegments(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10})
	if pl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", pl.Len())
	}
	checkSegments(t, pl)

	checkSegments(t, NewPolyline("empty"))
	checkSegments(t, NewPolyline("single", Vec2{1, 1}))
}

func TestPolylineInsertBetweenTwoPoints(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0})
	pl.Insert(1, Vec2{5, 5})
	if pl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", pl.Len())
	}
	checkSegments(t, pl)
	if n := len(pl.Segments()); n != 2 {
		t.Errorf("segments = %d, want 2", n)
	}
}

func TestPolylineInsertIntoThreePoints(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10})
	pl.Insert(1, Vec2{5, -5})
	if pl.Len() != 4 {
		t.Fatalf("Len = %d, want 4", pl.Len())
	}
	checkSegments(t, pl)
	assertVec(t, "inserted", pl.Point(1), Vec2{5, -5})
	assertVec(t, "shifted", pl.Point(2), Vec2{10, 0})
}

func TestPolylineInsertAtEnds(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0})
	pl.Append(Vec2{10, 0})
	checkSegments(t, pl)
	pl.Insert(0, Vec2{-10, 0})
	checkSegments(t, pl)
	assertVec(t, "first", pl.Point(0), Vec2{-10, 0})

	first := NewPolyline("first")
	first.Insert(0, Vec2{1, 1})
	checkSegments(t, first)
}

func TestPolylineRemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []Vec2
	}{
		{"first", 0, []Vec2{{10, 0}, {10, 10}, {0, 10}}},
		{"interior", 1, []Vec2{{0, 0}, {10, 10}, {0, 10}}},
		{"last", 3, []Vec2{{0, 0}, {10, 0}, {10, 10}}},
	}
	for _, tt := range tests {
		pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10}, Vec2{0, 10})
		pl.RemoveAt(tt.index)
		if pl.Len() != len(tt.want) {
			t.Fatalf("%s: Len = %d", tt.name, pl.Len())
		}
		for i, p := range tt.want {
			assertVec(t, tt.name, pl.Point(i), p)
		}
		checkSegments(t, pl)
	}

	pl := NewPolyline("pl", Vec2{0, 0})
	pl.RemoveAt(0)
	checkSegments(t, pl)
}

func TestPolylineSetPointUpdatesNeighbours(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0})
	segs := pl.Segments()
	pl.SetPoint(1, Vec2{10, 10})
	checkSegments(t, pl)
	if pl.Segments()[0] != segs[0] || pl.Segments()[1] != segs[1] {
		t.Error("SetPoint should update segments in place")
	}
}

func TestPolylineIndexPanics(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{1, 1})
	assertPanics(t, "Insert", "out of range", func() { pl.Insert(3, Vec2{}) })
	assertPanics(t, "RemoveAt", "out of range", func() { pl.RemoveAt(2) })
	assertPanics(t, "SetPoint", "out of range", func() { pl.SetPoint(-1, Vec2{}) })
}

func TestPolylineClosed(t *testing.T) {
	if NewPolyline("open", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10}).Closed() {
		t.Error("open chain reported closed")
	}
	if !NewPolyline("closed", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10}, Vec2{0, 0}).Closed() {
		t.Error("closed chain reported open")
	}
	if NewPolyline("two", Vec2{0, 0}, Vec2{0, 0}).Closed() {
		t.Error("two coincident points are not a closed chain")
	}
}

func TestPolylinePointsInDestination(t *testing.T) {
	pl := NewPolyline("pl", Vec2{1, 0}, Vec2{2, 0})
	pl.Transform().SetScale(3)
	WithCoordinateSystem(pl, Destination, func() {
		assertVec(t, "p1", pl.Point(1), Vec2{6, 0})
		pl.Append(Vec2{9, 3})
		checkSegments(t, pl)
	})
	assertVec(t, "appended in source", pl.Point(2), Vec2{3, 1})
	o := pl.Outline()
	assertVec(t, "outline", o[2], Vec2{9, 3})
}

func TestPolylineHitTest(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{100, 0}, Vec2{100, 100})
	if !pl.HitTest(Vec2{105, 50}) {
		t.Error("near second segment should hit")
	}
	if pl.HitTest(Vec2{50, 50}) {
		t.Error("away from every segment should miss")
	}
	single := NewPolyline("single", Vec2{5, 5})
	if !single.HitTest(Vec2{8, 5}) {
		t.Error("single point polyline should hit near its point")
	}
}

func TestPolylineMoveAndClone(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0})
	pl.Move(Vec2{1, 1})
	checkSegments(t, pl)
	assertVec(t, "moved", pl.Point(0), Vec2{1, 1})
	assertRect(t, "box", pl.BoundingBox(), Rect{1, 1, 10, 0})

	dup := pl.Clone().(*Polyline)
	checkSegments(t, dup)
	dup.SetPoint(0, Vec2{-5, -5})
	assertVec(t, "original", pl.Point(0), Vec2{1, 1})
	if dup.Segments()[0] == pl.Segments()[0] {
		t.Error("clone should own its segments")
	}
	assertVec(t, "closest single", NewPolyline("s", Vec2{3, 3}).ClosestPoint(Vec2{9, 9}), Vec2{3, 3})
}

func TestPolylineRejectsForeignChildren(t *testing.T) {
	pl := NewPolyline("pl", Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 10})
	assertPanics(t, "Add", "use Append or Insert", func() { pl.Add(NewRectangle("r", Rect{0, 0, 1, 1})) })
	assertPanics(t, "Remove", "use RemoveAt", func() { pl.Remove(pl.Segments()[0]) })
	if pl.Len() != 3 || len(pl.Segments()) != 2 {
		t.Fatalf("points = %d segments = %d, want 3 2", pl.Len(), len(pl.Segments()))
	}

	pl.Clear()
	if pl.Len() != 0 || len(pl.Segments()) != 0 {
		t.Errorf("after Clear points = %d segments = %d, want 0 0", pl.Len(), len(pl.Segments()))
	}
	pl.Append(Vec2{1, 1})
	pl.Append(Vec2{2, 2})
	if len(pl.Segments()) != 1 {
		t.Errorf("segments = %d after two appends, want 1", len(pl.Segments()))
	}
}
