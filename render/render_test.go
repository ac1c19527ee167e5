package render

import (
	"math"
	"testing"

	"github.com/phanxgames/vellum"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- GeoM ---

func TestGeoMMatchesMatrix(t *testing.T) {
	m := vellum.Translate(10, 20).
		Multiply(vellum.RotateDegrees(30)).
		Multiply(vellum.Scale(2, 3))
	g := GeoM(m)

	for _, p := range []vellum.Vec2{{0, 0}, {1, 0}, {0, 1}, {-4, 7.5}} {
		x, y := g.Apply(p.X, p.Y)
		want := m.TransformPoint(p)
		assertNear(t, "x", x, want.X)
		assertNear(t, "y", y, want.Y)
	}
}

func TestImageGeoMScalesSourcePixels(t *testing.T) {
	info := vellum.ImageInfo{Rows: 100, Columns: 200}
	g := imageGeoM(vellum.Translate(5, 5), info, 50, 25)

	x, y := g.Apply(50, 25)
	assertNear(t, "x", x, 205)
	assertNear(t, "y", y, 105)
}

// --- Stroke ---

func TestStrokeVerticesCounts(t *testing.T) {
	pts := []vellum.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	verts, inds := StrokeVertices(pts, 2, ColorWhite)
	if len(verts) != 8 {
		t.Errorf("len(verts) = %d, want 8", len(verts))
	}
	if len(inds) != 18 {
		t.Errorf("len(inds) = %d, want 18", len(inds))
	}
	for _, i := range inds {
		if int(i) >= len(verts) {
			t.Fatalf("index %d out of range", i)
		}
	}
}

func TestStrokeVerticesTooFewPoints(t *testing.T) {
	verts, inds := StrokeVertices([]vellum.Vec2{{1, 1}}, 2, ColorWhite)
	if verts != nil || inds != nil {
		t.Error("single point should produce no geometry")
	}
}

func TestStrokeVerticesStraightSegmentWidth(t *testing.T) {
	verts, _ := StrokeVertices([]vellum.Vec2{{0, 0}, {10, 0}}, 4, ColorWhite)
	// Left perpendicular of +x in y-down space is +y.
	assertNear(t, "v0.y", float64(verts[0].DstY), 2)
	assertNear(t, "v1.y", float64(verts[1].DstY), -2)
	assertNear(t, "v2.x", float64(verts[2].DstX), 10)
	assertNear(t, "v3.y", float64(verts[3].DstY), -2)
}

func TestStrokeVerticesMiterClamped(t *testing.T) {
	// A hairpin turn must not extend past twice the half width.
	pts := []vellum.Vec2{{0, 0}, {10, 0}, {0, 0.5}}
	verts, _ := StrokeVertices(pts, 2, ColorWhite)
	for i, v := range verts[2:4] {
		d := math.Hypot(float64(v.DstX)-10, float64(v.DstY))
		if d > 2+1e-6 {
			t.Errorf("join vertex %d at distance %v, want <= 2", i, d)
		}
	}
}

func TestStrokeVerticesPremultipliedColor(t *testing.T) {
	verts, _ := StrokeVertices([]vellum.Vec2{{0, 0}, {1, 0}}, 1, Color{1, 0.5, 0, 0.5})
	assertNear(t, "R", float64(verts[0].ColorR), 0.5)
	assertNear(t, "G", float64(verts[0].ColorG), 0.25)
	assertNear(t, "A", float64(verts[0].ColorA), 0.5)
}

func TestStrokeRunsShareEndpoints(t *testing.T) {
	pts := make([]vellum.Vec2, maxStrokePoints*2+5)
	for i := range pts {
		pts[i] = vellum.Vec2{X: float64(i)}
	}
	runs := strokeRuns(pts)
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	total := 0
	for i, run := range runs {
		if len(run) > maxStrokePoints {
			t.Errorf("run %d has %d points", i, len(run))
		}
		if i > 0 && run[0] != runs[i-1][len(runs[i-1])-1] {
			t.Errorf("run %d does not start where run %d ends", i, i-1)
		}
		total += len(run) - 1
	}
	if total != len(pts)-1 {
		t.Errorf("segments covered = %d, want %d", total, len(pts)-1)
	}
}

// --- Plan ---

func TestPlanPainterOrderAndNotifications(t *testing.T) {
	img := vellum.NewImageGraphic("img", vellum.ImageInfo{Rows: 10, Columns: 10})
	rect := vellum.NewRectangle("rect", vellum.Rect{X: 1, Y: 1, Width: 2, Height: 2})
	hidden := vellum.NewEllipse("hidden", vellum.Rect{Width: 4, Height: 4})
	hidden.SetVisible(false)
	poly := vellum.NewPolyline("poly", vellum.Vec2{}, vellum.Vec2{X: 5}, vellum.Vec2{X: 5, Y: 5})
	img.Add(rect)
	img.Add(hidden)
	img.Add(poly)

	drawn := 0
	rect.OnDrawing(func(vellum.Graphic) { drawn++ })
	hidden.OnDrawing(func(vellum.Graphic) { t.Error("hidden graphic notified") })

	r := &Renderer{Highlighted: rect, HighlightColor: Color{1, 0, 0, 1}}
	ops := r.plan(img)

	// image, rect outline, polyline outline; segments are not stroked twice.
	if len(ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(ops))
	}
	if ops[0].image != img {
		t.Error("first op should draw the image")
	}
	if len(ops[1].outline) != 5 {
		t.Errorf("rect outline = %d points, want 5", len(ops[1].outline))
	}
	if ops[1].color != (Color{1, 0, 0, 1}) {
		t.Errorf("highlighted color = %+v", ops[1].color)
	}
	if ops[2].color != ColorWhite {
		t.Errorf("default color = %+v, want white", ops[2].color)
	}
	if len(ops[2].outline) != 3 {
		t.Errorf("poly outline = %d points, want 3", len(ops[2].outline))
	}
	if drawn != 1 {
		t.Errorf("rect notified %d times, want 1", drawn)
	}
}
