package vellum

import (
	"errors"
	"fmt"
	"math"
)

// transformHooks are the extension points a specialized transform overrides.
// A SpatialTransform dispatches through hooks, which points at itself unless
// an ImageTransform (or a further specialization) embeds it.
type transformHooks interface {
	updateScaleParameters()
	preTransform(cumulative Matrix) Matrix
	postTransform(cumulative Matrix) Matrix
	resetCore()
	onScaleSet()
	createMemento() any
	setMemento(m any) error
}

// --- Stamp counter ---

// transformStampCounter is a plain counter, not atomic: vellum is single-threaded.
var transformStampCounter uint64

func nextTransformStamp() uint64 {
	transformStampCounter++
	return transformStampCounter
}

// SpatialTransform holds the transform parameters of one graphic and caches
// the cumulative matrix mapping the graphic's source space to destination
// space.
//
// The local matrix is Rotate · Scale · Translate, with flips encoded as sign
// inversions of the opposite axis's scale. The cumulative matrix is
//
//	parent cumulative · pre-transform · local · post-transform
//
// where the default pre/post transforms translate to and from the center of
// rotation.
//
// Caching is generational: every parameter change bumps a local version, and
// every recomputation stamps the transform with a fresh value. A child
// remembers the stamp of the parent it was computed against and recomputes
// lazily when its own version or the parent's stamp has moved. A read costs
// O(depth); a write costs O(1).
type SpatialTransform struct {
	owner *Node
	hooks transformHooks

	scale            float64
	scaleX           float64
	scaleY           float64
	flipX            bool
	flipY            bool
	rotation         float64
	translation      Vec2
	centerOfRotation Vec2

	policy ValidationPolicy

	version         uint64
	computedVersion uint64
	computedParent  *SpatialTransform
	parentStamp     uint64
	stamp           uint64
	cumulativeCache Matrix

	deferredErr   error
	updatingScale bool
}

// NewSpatialTransform returns a detached transform with default parameters.
// Graphics create their transform lazily; use this for standalone math.
func NewSpatialTransform() *SpatialTransform {
	return newSpatialTransform(nil)
}

func newSpatialTransform(owner *Node) *SpatialTransform {
	t := &SpatialTransform{}
	t.init(owner, t)
	return t
}

// init wires owner and hooks and applies defaults. Specializations call it
// with themselves as hooks.
func (t *SpatialTransform) init(owner *Node, hooks transformHooks) {
	t.owner = owner
	t.hooks = hooks
	t.scale = 1
	t.scaleX = 1
	t.scaleY = 1
	t.version = 1
	t.Reset()
}

// --- Parameters ---

// Scale returns the uniform scale.
func (t *SpatialTransform) Scale() float64 {
	t.updateScale()
	return t.scale
}

// SetScale sets the uniform scale. Panics if s is zero, negative or NaN.
func (t *SpatialTransform) SetScale(s float64) {
	t.setScale(s)
	t.hooks.onScaleSet()
}

func (t *SpatialTransform) setScale(s float64) {
	if t.scale == s {
		return
	}
	if !(s > 0) || math.Abs(s) < FloatTolerance {
		panic(fmt.Sprintf("vellum: cannot set scale to %v", s))
	}
	t.scale = s
	t.invalidate()
}

// ScaleX returns the scale applied along x before flips. It usually equals
// Scale but differs for non-square pixels.
func (t *SpatialTransform) ScaleX() float64 {
	t.updateScale()
	return t.scaleX
}

// ScaleY returns the scale applied along y before flips.
func (t *SpatialTransform) ScaleY() float64 {
	t.updateScale()
	return t.scaleY
}

func (t *SpatialTransform) setScaleXY(sx, sy float64) {
	if t.scaleX == sx && t.scaleY == sy {
		return
	}
	if math.Abs(sx) < FloatTolerance || math.IsNaN(sx) {
		panic(fmt.Sprintf("vellum: cannot set scaleX to %v", sx))
	}
	if math.Abs(sy) < FloatTolerance || math.IsNaN(sy) {
		panic(fmt.Sprintf("vellum: cannot set scaleY to %v", sy))
	}
	t.scaleX = sx
	t.scaleY = sy
	t.invalidate()
}

// FlipX reports whether the graphic is mirrored across the x-axis
// (a vertical flip).
func (t *SpatialTransform) FlipX() bool { return t.flipX }

// SetFlipX sets the vertical flip.
func (t *SpatialTransform) SetFlipX(v bool) {
	if t.flipX == v {
		return
	}
	t.flipX = v
	t.invalidate()
}

// FlipY reports whether the graphic is mirrored across the y-axis
// (a horizontal flip).
func (t *SpatialTransform) FlipY() bool { return t.flipY }

// SetFlipY sets the horizontal flip.
func (t *SpatialTransform) SetFlipY(v bool) {
	if t.flipY == v {
		return
	}
	t.flipY = v
	t.invalidate()
}

// Rotation returns the rotation in degrees, in [0, 360).
func (t *SpatialTransform) Rotation() float64 { return t.rotation }

// SetRotation sets the rotation in degrees. Any value is accepted and
// normalized into [0, 360): -30 becomes 330, 400 becomes 40.
func (t *SpatialTransform) SetRotation(deg float64) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		panic(fmt.Sprintf("vellum: cannot set rotation to %v", deg))
	}
	deg = NormalizeDegrees(deg)
	if t.rotation == deg {
		return
	}
	t.rotation = deg
	t.invalidate()
}

// Translation returns the translation, in the graphic's unscaled units.
func (t *SpatialTransform) Translation() Vec2 { return t.translation }

// SetTranslation sets the translation.
func (t *SpatialTransform) SetTranslation(v Vec2) {
	if t.translation == v {
		return
	}
	t.translation = v
	t.invalidate()
}

// CenterOfRotation returns the point, in source coordinates, about which the
// graphic rotates and scales.
func (t *SpatialTransform) CenterOfRotation() Vec2 { return t.centerOfRotation }

// SetCenterOfRotation sets the center of rotation.
func (t *SpatialTransform) SetCenterOfRotation(p Vec2) {
	if t.centerOfRotation == p {
		return
	}
	t.centerOfRotation = p
	t.invalidate()
}

// ValidationPolicy returns the installed policy, or nil.
func (t *SpatialTransform) ValidationPolicy() ValidationPolicy { return t.policy }

// SetValidationPolicy installs a policy that is consulted every time the
// cumulative matrix is recomputed. Pass nil to remove it.
func (t *SpatialTransform) SetValidationPolicy(p ValidationPolicy) {
	t.policy = p
	t.invalidate()
}

// Version returns the local generation. It changes whenever a parameter of
// this transform changes.
func (t *SpatialTransform) Version() uint64 { return t.version }

// invalidate bumps the local generation so that this transform and every
// descendant recompute on their next read.
func (t *SpatialTransform) invalidate() {
	t.version++
}

// --- Matrices ---

// LocalTransform returns the matrix relative to the graphic's parent:
// Rotate · Scale(scaleX·(flipY?-1:1), scaleY·(flipX?-1:1)) · Translate.
func (t *SpatialTransform) LocalTransform() Matrix {
	sx := t.ScaleX()
	sy := t.ScaleY()
	if t.flipY {
		sx = -sx
	}
	if t.flipX {
		sy = -sy
	}
	return RotateDegrees(t.rotation).
		Multiply(Scale(sx, sy)).
		Multiply(Translate(t.translation.X, t.translation.Y))
}

// CumulativeTransform returns the matrix mapping source to destination
// coordinates, recomputing it if this transform or an ancestor has changed.
// A validation failure is returned together with the (cached) matrix; a
// failure deferred from an earlier conversion call is returned and cleared.
func (t *SpatialTransform) CumulativeTransform() (Matrix, error) {
	m, err := t.cumulative()
	if err == nil {
		err = t.deferredErr
	}
	t.deferredErr = nil
	return m, err
}

// Err returns and clears a validation failure raised during a conversion
// call since the last CumulativeTransform or Err call.
func (t *SpatialTransform) Err() error {
	err := t.deferredErr
	t.deferredErr = nil
	return err
}

// CumulativeScale returns the product of Scale along the ancestor chain.
func (t *SpatialTransform) CumulativeScale() float64 {
	s := t.Scale()
	if p := t.parentTransform(); p != nil {
		s *= p.CumulativeScale()
	}
	return s
}

// IsCurrent reports whether the cached cumulative matrix is up to date with
// this transform and every ancestor, without recomputing anything.
func (t *SpatialTransform) IsCurrent() bool {
	if t.stamp == 0 || t.computedVersion != t.version {
		return false
	}
	p := t.parentTransform()
	if p != t.computedParent {
		return false
	}
	if p == nil {
		return true
	}
	return p.IsCurrent() && p.stamp == t.parentStamp
}

func (t *SpatialTransform) parentTransform() *SpatialTransform {
	if t.owner == nil || t.owner.parent == nil {
		return nil
	}
	return t.owner.parent.Transform()
}

// cumulative ensures every ancestor is current, then recomputes this
// transform only if its version or its parent's stamp changed.
func (t *SpatialTransform) cumulative() (Matrix, error) {
	t.updateScale()

	parentM := Identity()
	var parentErr error
	parent := t.parentTransform()
	var ps uint64
	if parent != nil {
		parentM, parentErr = parent.cumulative()
		ps = parent.stamp
	}

	if t.stamp != 0 && t.computedVersion == t.version &&
		t.computedParent == parent && t.parentStamp == ps {
		return t.cumulativeCache, parentErr
	}

	m := t.hooks.preTransform(parentM)
	m = m.Multiply(t.LocalTransform())
	m = t.hooks.postTransform(m)

	t.cumulativeCache = m
	t.computedVersion = t.version
	t.computedParent = parent
	t.parentStamp = ps
	t.stamp = nextTransformStamp()

	if t.policy != nil {
		if err := t.policy.Validate(t, m); err != nil {
			err = fmt.Errorf("vellum: transform of %q rejected: %w", t.ownerName(), err)
			Logger().Debug("transform rejected", "graphic", t.ownerName(), "err", err)
			return m, errors.Join(parentErr, err)
		}
	}
	return m, parentErr
}

// current returns the cumulative matrix, stashing any validation failure for
// a later CumulativeTransform or Err call.
func (t *SpatialTransform) current() Matrix {
	m, err := t.cumulative()
	if err != nil && t.deferredErr == nil {
		t.deferredErr = err
	}
	return m
}

func (t *SpatialTransform) ownerName() string {
	if t.owner == nil {
		return ""
	}
	return t.owner.Name
}

// --- Default hooks ---

func (t *SpatialTransform) updateScale() {
	if t.updatingScale {
		return
	}
	t.updatingScale = true
	defer func() { t.updatingScale = false }()
	t.hooks.updateScaleParameters()
}

func (t *SpatialTransform) updateScaleParameters() {
	t.setScaleXY(t.scale, t.scale)
}

func (t *SpatialTransform) preTransform(m Matrix) Matrix {
	return m.Multiply(Translate(t.centerOfRotation.X, t.centerOfRotation.Y))
}

func (t *SpatialTransform) postTransform(m Matrix) Matrix {
	return m.Multiply(Translate(-t.centerOfRotation.X, -t.centerOfRotation.Y))
}

func (t *SpatialTransform) resetCore() {
	t.setScale(1)
	t.SetTranslation(Vec2{})
	t.SetRotation(0)
	t.SetFlipX(false)
	t.SetFlipY(false)
}

func (t *SpatialTransform) onScaleSet() {}

// --- Conversions ---

// ConvertToDestination maps a source point to destination coordinates.
func (t *SpatialTransform) ConvertToDestination(p Vec2) Vec2 {
	return t.current().TransformPoint(p)
}

// ConvertToSource maps a destination point to source coordinates.
func (t *SpatialTransform) ConvertToSource(p Vec2) Vec2 {
	inv, _ := t.current().Invert()
	return inv.TransformPoint(p)
}

// ConvertVectorToDestination maps a source size or direction to destination
// coordinates. Only rotation, scale and flips apply.
func (t *SpatialTransform) ConvertVectorToDestination(v Vec2) Vec2 {
	return t.current().TransformVector(v)
}

// ConvertVectorToSource maps a destination size or direction to source
// coordinates.
func (t *SpatialTransform) ConvertVectorToSource(v Vec2) Vec2 {
	inv, _ := t.current().Invert()
	return inv.TransformVector(v)
}

// ConvertRectToDestination converts both corners of r independently. The
// result is not normalized: rotation or flips may invert it.
func (t *SpatialTransform) ConvertRectToDestination(r Rect) Rect {
	return RectFromCorners(t.ConvertToDestination(r.TopLeft()), t.ConvertToDestination(r.BottomRight()))
}

// ConvertRectToSource converts both corners of r independently.
func (t *SpatialTransform) ConvertRectToSource(r Rect) Rect {
	return RectFromCorners(t.ConvertToSource(r.TopLeft()), t.ConvertToSource(r.BottomRight()))
}

// --- Operations ---

// Zoom multiplies the scale by factor. Panics if factor is not positive.
func (t *SpatialTransform) Zoom(factor float64) {
	if !(factor > 0) {
		panic(fmt.Sprintf("vellum: zoom factor must be positive, got %v", factor))
	}
	t.SetScale(t.Scale() * factor)
}

// Translate nudges the graphic by a destination-space delta, whatever the
// current zoom and rotation.
func (t *SpatialTransform) Translate(dx, dy float64) {
	d := t.ConvertVectorToSource(Vec2{dx, dy})
	t.SetTranslation(t.translation.Add(d))
}

// Rotate adds deg degrees to the rotation.
func (t *SpatialTransform) Rotate(deg float64) {
	t.SetRotation(t.rotation + deg)
}

// FlipHorizontal mirrors the graphic left to right as seen in destination
// space.
func (t *SpatialTransform) FlipHorizontal() {
	switch t.rotation {
	case 0, 180:
		t.SetFlipY(!t.flipY)
	case 90, 270:
		t.SetFlipX(!t.flipX)
	default:
		probe := Vec2{100, 0}
		hv := t.ConvertVectorToSource(probe)
		t.SetFlipY(!t.flipY)
		if !t.ConvertVectorToDestination(hv).ApproxEqual(Vec2{-probe.X, -probe.Y}) {
			t.Rotate(180)
		}
	}
}

// FlipVertical mirrors the graphic top to bottom as seen in destination
// space.
func (t *SpatialTransform) FlipVertical() {
	switch t.rotation {
	case 0, 180:
		t.SetFlipX(!t.flipX)
	case 90, 270:
		t.SetFlipY(!t.flipY)
	default:
		probe := Vec2{0, 100}
		vv := t.ConvertVectorToSource(probe)
		t.SetFlipX(!t.flipX)
		if !t.ConvertVectorToDestination(vv).ApproxEqual(Vec2{-probe.X, -probe.Y}) {
			t.Rotate(180)
		}
	}
}

// Reset restores every parameter to its default and forces a recomputation.
func (t *SpatialTransform) Reset() {
	t.hooks.resetCore()
	t.invalidate()
}

// copyParams copies the parameters of src into t. Caches are left alone so
// that t recomputes against its own ancestors.
func (t *SpatialTransform) copyParams(src *SpatialTransform) {
	t.scale = src.scale
	t.scaleX = src.scaleX
	t.scaleY = src.scaleY
	t.flipX = src.flipX
	t.flipY = src.flipY
	t.rotation = src.rotation
	t.translation = src.translation
	t.centerOfRotation = src.centerOfRotation
	t.policy = src.policy
	t.invalidate()
}
