package render

import (
	"strings"
	"testing"

	"github.com/phanxgames/vellum"
)

func TestStatusTextWithoutTarget(t *testing.T) {
	got := statusText(59.94, 60, nil)
	if got != "FPS: 59.9\nTPS: 60.0" {
		t.Errorf("statusText = %q", got)
	}
}

func TestStatusTextShowsCumulativeZoom(t *testing.T) {
	parent := vellum.NewComposite("parent")
	parent.Transform().SetScale(2)
	child := vellum.NewPoint("child", vellum.Vec2{})
	child.Transform().SetScale(1.5)
	child.Transform().SetRotation(90)
	child.Transform().SetFlipY(true)
	parent.Add(child)

	got := statusText(60, 60, child)
	for _, want := range []string{"zoom: 3.000", "rot: 90", "flip: h"} {
		if !strings.Contains(got, want) {
			t.Errorf("statusText = %q, want it to contain %q", got, want)
		}
	}
}

func TestFlipLabel(t *testing.T) {
	tr := vellum.NewSpatialTransform()
	if flipLabel(tr) != "-" {
		t.Errorf("no flip = %q", flipLabel(tr))
	}
	tr.SetFlipX(true)
	if flipLabel(tr) != "v" {
		t.Errorf("flipX = %q", flipLabel(tr))
	}
	tr.SetFlipY(true)
	if flipLabel(tr) != "both" {
		t.Errorf("both = %q", flipLabel(tr))
	}
}
