package vellum

import (
	"errors"
	"fmt"
)

// ErrDisallowedRotation is wrapped by policy failures caused by a rotation the
// graphic does not support.
var ErrDisallowedRotation = errors.New("disallowed rotation")

// ValidationPolicy decides whether a freshly computed cumulative matrix is
// acceptable. A non-nil error rejects it; the matrix stays cached.
type ValidationPolicy interface {
	Validate(t *SpatialTransform, cumulative Matrix) error
}

// ValidationPolicyFunc adapts a function to ValidationPolicy.
type ValidationPolicyFunc func(t *SpatialTransform, cumulative Matrix) error

// Validate calls f.
func (f ValidationPolicyFunc) Validate(t *SpatialTransform, cumulative Matrix) error {
	return f(t, cumulative)
}

// RightAngleRotationPolicy accepts only cumulative matrices that keep the axes
// axis-aligned, i.e. rotations in steps of 90 degrees. Image graphics install
// it by default.
type RightAngleRotationPolicy struct{}

// Validate implements ValidationPolicy.
func (RightAngleRotationPolicy) Validate(t *SpatialTransform, cumulative Matrix) error {
	if !cumulative.IsAxisAligned() {
		return fmt.Errorf("%w: rotation %v is not a multiple of 90 degrees", ErrDisallowedRotation, t.Rotation())
	}
	return nil
}

// NoRotationPolicy rejects any non-zero local rotation.
type NoRotationPolicy struct{}

// Validate implements ValidationPolicy.
func (NoRotationPolicy) Validate(t *SpatialTransform, _ Matrix) error {
	if t.Rotation() != 0 {
		return fmt.Errorf("%w: rotation %v", ErrDisallowedRotation, t.Rotation())
	}
	return nil
}
