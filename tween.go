package vellum

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransformTween animates up to two transform parameters of a graphic.
// Create one via the convenience constructors (TweenZoom, TweenTranslation,
// TweenRotation) and call Update(dt) each frame. Values are written through
// the transform setters, so caches invalidate as usual. If the target graphic
// is disposed, the tween stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TransformTween struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(vals [2]float64)
	target *Node
	Done   bool
}

// Update advances the tween by dt seconds and writes the values to the
// target transform. If the target has been disposed, Done is set to true and
// no writes occur.
func (tw *TransformTween) Update(dt float32) {
	if tw.Done {
		return
	}
	if tw.target.IsDisposed() {
		tw.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < tw.count; i++ {
		val, finished := tw.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	tw.apply(vals)
	tw.Done = allDone
}

// TweenZoom animates the scale of g to the given value. Setting the scale
// turns scale-to-fit off on image graphics.
func TweenZoom(g Graphic, to float64, duration float32, fn ease.TweenFunc) *TransformTween {
	n := g.Base()
	t := n.Transform()
	tw := &TransformTween{count: 1, target: n}
	tw.tweens[0] = gween.New(float32(t.Scale()), float32(to), duration, fn)
	tw.apply = func(v [2]float64) {
		if v[0] > 0 {
			t.SetScale(v[0])
		}
	}
	return tw
}

// TweenTranslation animates the translation of g to the given value.
func TweenTranslation(g Graphic, to Vec2, duration float32, fn ease.TweenFunc) *TransformTween {
	n := g.Base()
	t := n.Transform()
	from := t.Translation()
	tw := &TransformTween{count: 2, target: n}
	tw.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	tw.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	tw.apply = func(v [2]float64) { t.SetTranslation(Vec2{v[0], v[1]}) }
	return tw
}

// TweenRotation animates the rotation of g by delta degrees. The rotation is
// normalized on every write, so a delta of 360 spins a full turn.
func TweenRotation(g Graphic, delta float64, duration float32, fn ease.TweenFunc) *TransformTween {
	n := g.Base()
	t := n.Transform()
	from := t.Rotation()
	tw := &TransformTween{count: 1, target: n}
	tw.tweens[0] = gween.New(float32(from), float32(from+delta), duration, fn)
	tw.apply = func(v [2]float64) { t.SetRotation(v[0]) }
	return tw
}
