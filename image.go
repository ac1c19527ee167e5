package vellum

// ImageGraphic is a graphic showing a pixel grid. Its source space is the
// pixel grid: (0,0) is the top-left corner of the first pixel and
// (Columns, Rows) the bottom-right corner of the last. Children are
// annotations drawn in image space and follow the image as it zooms, pans,
// rotates and flips.
//
// Image graphics only rotate in 90 degree steps: a RightAngleRotationPolicy is
// installed at construction.
type ImageGraphic struct {
	Composite
	imgTransform *ImageTransform
}

// NewImageGraphic creates an image graphic for the described pixel grid.
func NewImageGraphic(name string, info ImageInfo) *ImageGraphic {
	g := &ImageGraphic{}
	g.initComposite(g, name)
	g.imgTransform = newImageTransform(&g.Node, info)
	g.setTransform(&g.imgTransform.SpatialTransform)
	g.imgTransform.SetValidationPolicy(RightAngleRotationPolicy{})
	return g
}

// ImageTransform returns the image-specific transform. Transform returns the
// same transform as a *SpatialTransform.
func (g *ImageGraphic) ImageTransform() *ImageTransform { return g.imgTransform }

// Info returns the image description.
func (g *ImageGraphic) Info() ImageInfo { return g.imgTransform.info }

// SetClientRectangle pushes the viewport size into the transform.
func (g *ImageGraphic) SetClientRectangle(r Rect) { g.imgTransform.SetClientRectangle(r) }

// ImageRect returns the image extent in the current coordinate system. It is
// not normalized.
func (g *ImageGraphic) ImageRect() Rect {
	return g.rectToCurrent(Rect{Width: float64(g.imgTransform.info.Columns), Height: float64(g.imgTransform.info.Rows)})
}

// Contains reports whether p, in destination coordinates, lies on the image.
func (g *ImageGraphic) Contains(p Vec2) bool {
	q := g.Transform().ConvertToSource(p)
	return Rect{Width: float64(g.imgTransform.info.Columns), Height: float64(g.imgTransform.info.Rows)}.Contains(q)
}

// BoundingBox returns the union of the image extent and the children's boxes
// in the current coordinate system.
func (g *ImageGraphic) BoundingBox() Rect {
	return g.ImageRect().Normalize().Union(g.Composite.BoundingBox())
}

// HitTest reports whether any visible child is hit. The image area itself is
// tested with Contains.
func (g *ImageGraphic) HitTest(p Vec2) bool {
	return g.Composite.HitTest(p)
}

// Clone returns a deep copy, children included.
func (g *ImageGraphic) Clone() Graphic {
	var dst *ImageGraphic
	if mt := g.MammographyTransform(); mt != nil {
		dst = NewMammographyGraphic(g.Name, g.imgTransform.info, mt.orient)
	} else {
		dst = NewImageGraphic(g.Name, g.imgTransform.info)
	}
	dst.imgTransform.copyImageParams(g.imgTransform)
	g.cloneChildrenInto(&dst.Composite)
	return dst
}
