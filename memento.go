package vellum

import (
	"errors"
	"fmt"
)

// ErrInvalidMemento is returned when a memento of the wrong type, or with
// out-of-range values, is restored.
var ErrInvalidMemento = errors.New("vellum: invalid memento")

// TransformMemento is a snapshot of the user-adjustable parameters of a
// SpatialTransform. Mementos compare by value.
type TransformMemento struct {
	Scale       float64
	Rotation    float64
	FlipX       bool
	FlipY       bool
	Translation Vec2
}

// ImageTransformMemento adds the scale-to-fit flag of an ImageTransform.
type ImageTransformMemento struct {
	Transform  TransformMemento
	ScaleToFit bool
}

// CreateMemento returns a snapshot of the transform. The concrete type is
// TransformMemento for plain transforms and ImageTransformMemento for image
// transforms.
func (t *SpatialTransform) CreateMemento() any {
	return t.hooks.createMemento()
}

// SetMemento restores a snapshot made by CreateMemento. Mementos of the wrong
// type or with a non-positive scale return ErrInvalidMemento and leave the
// transform unchanged.
func (t *SpatialTransform) SetMemento(m any) error {
	return t.hooks.setMemento(m)
}

func (t *SpatialTransform) createMemento() any {
	return t.baseMemento()
}

func (t *SpatialTransform) baseMemento() TransformMemento {
	return TransformMemento{
		Scale:       t.Scale(),
		Rotation:    t.rotation,
		FlipX:       t.flipX,
		FlipY:       t.flipY,
		Translation: t.translation,
	}
}

func (t *SpatialTransform) setMemento(m any) error {
	switch v := m.(type) {
	case TransformMemento:
		return t.restoreBase(v)
	case *TransformMemento:
		if v == nil {
			return fmt.Errorf("%w: nil", ErrInvalidMemento)
		}
		return t.restoreBase(*v)
	}
	return fmt.Errorf("%w: unexpected type %T", ErrInvalidMemento, m)
}

func (t *SpatialTransform) restoreBase(m TransformMemento) error {
	if !(m.Scale > 0) {
		return fmt.Errorf("%w: scale %v", ErrInvalidMemento, m.Scale)
	}
	t.SetFlipX(m.FlipX)
	t.SetFlipY(m.FlipY)
	t.SetRotation(m.Rotation)
	t.SetScale(m.Scale)
	t.SetTranslation(m.Translation)
	t.invalidate()
	return nil
}
