package vellum

import (
	"errors"
	"testing"
)

// testImage is 384 columns by 512 rows.
func testImage(spacing Vec2) ImageInfo {
	return ImageInfo{Rows: 512, Columns: 384, PixelSpacing: spacing}
}

func TestImageInfoAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		info ImageInfo
		want float64
	}{
		{"square", ImageInfo{}, 1},
		{"spacing", ImageInfo{PixelSpacing: Vec2{0.1, 0.2}}, 2},
		{"aspect ratio", ImageInfo{PixelAspectRatio: Vec2{3, 4}}, 4.0 / 3},
		{"spacing wins", ImageInfo{PixelSpacing: Vec2{0.4, 0.2}, PixelAspectRatio: Vec2{3, 4}}, 0.5},
		{"partial spacing ignored", ImageInfo{PixelSpacing: Vec2{0, 0.2}}, 1},
	}
	for _, tt := range tests {
		assertNear(t, tt.name, tt.info.AspectRatio(), tt.want)
	}
	assertVec(t, "Center", testImage(Vec2{}).Center(), Vec2{192, 256})
}

func TestScaleToFitWithPixelSpacing(t *testing.T) {
	tests := []struct {
		name          string
		spacing       Vec2
		client        Rect
		scale, sx, sy float64
	}{
		{"tall pixels", Vec2{0.1, 0.2}, Rect{Width: 768, Height: 2048}, 2, 2, 4},
		{"wide pixels", Vec2{0.4, 0.3}, Rect{Width: 1024, Height: 1024}, 2, 8.0 / 3, 2},
		{"slightly tall pixels", Vec2{0.3, 0.4}, Rect{Width: 1152, Height: 2048}, 3, 3, 4},
	}
	for _, tt := range tests {
		g := NewImageGraphic("img", testImage(tt.spacing))
		g.SetClientRectangle(tt.client)
		it := g.ImageTransform()
		assertApprox(t, tt.name+" scale", it.Scale(), tt.scale, 1e-9)
		assertApprox(t, tt.name+" scaleX", it.ScaleX(), tt.sx, 1e-9)
		assertApprox(t, tt.name+" scaleY", it.ScaleY(), tt.sy, 1e-9)
	}
}

func TestScaleToFitCentersImage(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	g.SetClientRectangle(Rect{Width: 256, Height: 192})
	assertNear(t, "scale", g.ImageTransform().Scale(), 0.375)
	WithCoordinateSystem(g, Destination, func() {
		assertRect(t, "image rect", g.ImageRect(), Rect{56, 0, 144, 192})
	})
}

func TestScaleToFitSwapsAxesWhenRotated(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	g.SetClientRectangle(Rect{Width: 256, Height: 192})
	g.Transform().SetRotation(90)
	assertNear(t, "scale", g.ImageTransform().Scale(), 0.5)
	WithCoordinateSystem(g, Destination, func() {
		assertRect(t, "image rect", g.ImageRect(), Rect{256, 0, -256, 192})
	})
	if _, err := g.Transform().CumulativeTransform(); err != nil {
		t.Errorf("right angle rotation rejected: %v", err)
	}
}

func TestFitScalePortraitImage(t *testing.T) {
	// 100 columns by 200 rows.
	info := ImageInfo{Rows: 200, Columns: 100}
	tests := []struct {
		name     string
		client   Rect
		rotation float64
		want     float64
	}{
		{"square client", Rect{Width: 200, Height: 200}, 0, 1},
		{"square client rotated", Rect{Width: 200, Height: 200}, 90, 1},
		{"wide client", Rect{Width: 200, Height: 100}, 0, 0.5},
		{"wide client rotated", Rect{Width: 200, Height: 100}, 90, 1},
		{"tall client rotated", Rect{Width: 100, Height: 400}, 270, 0.5},
	}
	for _, tt := range tests {
		g := NewImageGraphic("img", info)
		g.SetClientRectangle(tt.client)
		g.Transform().SetRotation(tt.rotation)
		got, ok := g.ImageTransform().FitScale()
		if !ok {
			t.Fatalf("%s: FitScale not ok", tt.name)
		}
		assertNear(t, tt.name, got, tt.want)
	}
}

func TestFitScaleNeedsClientAndImage(t *testing.T) {
	it := NewImageGraphic("img", testImage(Vec2{})).ImageTransform()
	if _, ok := it.FitScale(); ok {
		t.Error("FitScale without a client rectangle should fail")
	}
	assertNear(t, "scale stays 1", it.Scale(), 1)

	empty := NewImageGraphic("empty", ImageInfo{}).ImageTransform()
	empty.SetClientRectangle(Rect{Width: 100, Height: 100})
	if _, ok := empty.FitScale(); ok {
		t.Error("FitScale of an empty image should fail")
	}
}

func TestSetScaleDisablesScaleToFitAndResetRestores(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	g.SetClientRectangle(Rect{Width: 256, Height: 192})
	it := g.ImageTransform()
	if !it.ScaleToFit() {
		t.Fatal("new image should be in scale-to-fit mode")
	}

	it.Zoom(2)
	if it.ScaleToFit() {
		t.Fatal("Zoom should turn scale-to-fit off")
	}
	assertNear(t, "zoomed", it.Scale(), 0.75)

	g.SetClientRectangle(Rect{Width: 512, Height: 384})
	assertNear(t, "resize keeps manual scale", it.Scale(), 0.75)

	it.Reset()
	if !it.ScaleToFit() {
		t.Fatal("Reset should turn scale-to-fit back on")
	}
	assertNear(t, "refitted", it.Scale(), 0.75)

	g.SetClientRectangle(Rect{Width: 256, Height: 192})
	assertNear(t, "refit on resize", it.Scale(), 0.375)
}

func TestChildFollowsAnisotropicImage(t *testing.T) {
	g := NewImageGraphic("img", ImageInfo{Rows: 512, Columns: 384, PixelAspectRatio: Vec2{3, 4}})
	g.ImageTransform().SetScaleToFit(false)
	g.Transform().SetScale(2)
	child := NewRectangle("child", Rect{0, 0, 10, 10})
	child.Transform().SetRotation(30)
	g.Add(child)

	m := cumulativeOf(t, child)
	want := [4]float64{1.7321, 1.3333, -1, 2.3094}
	for i, w := range want {
		assertApprox(t, "child cumulative", m[i], w, 1e-4)
	}
}

func TestClientRectangleInvalidatesChildren(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	p := NewPoint("p", Vec2{0, 0})
	g.Add(p)
	g.SetClientRectangle(Rect{Width: 256, Height: 192})
	WithCoordinateSystem(p, Destination, func() {
		assertVec(t, "before", p.Location(), Vec2{56, 0})
	})
	g.SetClientRectangle(Rect{X: 100, Width: 256, Height: 192})
	WithCoordinateSystem(p, Destination, func() {
		assertVec(t, "after", p.Location(), Vec2{156, 0})
	})
}

func TestImageRejectsArbitraryRotation(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	g.Transform().SetRotation(45)
	_, err := g.Transform().CumulativeTransform()
	if !errors.Is(err, ErrDisallowedRotation) {
		t.Fatalf("err = %v, want ErrDisallowedRotation", err)
	}
}

func TestAnnotationFlipsWithImage(t *testing.T) {
	g := NewImageGraphic("img", testImage(Vec2{}))
	g.SetClientRectangle(Rect{Width: 384, Height: 512})
	p := NewPoint("p", Vec2{10, 20})
	g.Add(p)

	g.Transform().FlipHorizontal()
	WithCoordinateSystem(p, Destination, func() {
		assertVec(t, "mirrored", p.Location(), Vec2{374, 20})
	})
}
