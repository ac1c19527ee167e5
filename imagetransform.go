package vellum

import "fmt"

// ImageInfo describes the pixel grid of an image graphic.
type ImageInfo struct {
	Rows    int
	Columns int
	// PixelSpacing is the physical size of one pixel: X is the spacing between
	// columns, Y the spacing between rows. Zero means unknown.
	PixelSpacing Vec2
	// PixelAspectRatio is used when PixelSpacing is unknown: X:Y is the
	// horizontal to vertical pixel size ratio. Zero means square pixels.
	PixelAspectRatio Vec2
}

// Size returns the image extent in pixels.
func (info ImageInfo) Size() Vec2 { return Vec2{float64(info.Columns), float64(info.Rows)} }

// Center returns the center of the pixel grid.
func (info ImageInfo) Center() Vec2 { return info.Size().Mul(0.5) }

// AspectRatio returns the height to width ratio of one pixel, from the pixel
// spacing if known, else from the pixel aspect ratio, else 1.
func (info ImageInfo) AspectRatio() float64 {
	if info.PixelSpacing.X > 0 && info.PixelSpacing.Y > 0 {
		return info.PixelSpacing.Y / info.PixelSpacing.X
	}
	if info.PixelAspectRatio.X > 0 && info.PixelAspectRatio.Y > 0 {
		return info.PixelAspectRatio.Y / info.PixelAspectRatio.X
	}
	return 1
}

// ImageTransform is the transform of an image graphic. It centers the image
// in the client rectangle, compensates for non-square pixels, and in
// scale-to-fit mode computes the scale that fits the whole image in the
// client rectangle.
//
// Scale always refers to the axis whose pixel dimension is the shorter one,
// so it remains a single meaningful zoom level; ScaleX and ScaleY differ by
// the aspect ratio.
type ImageTransform struct {
	SpatialTransform
	info       ImageInfo
	scaleToFit bool
	client     Rect
}

func newImageTransform(owner *Node, info ImageInfo) *ImageTransform {
	it := &ImageTransform{info: info, scaleToFit: true}
	it.initImage(owner, it)
	return it
}

// initImage initializes the embedded SpatialTransform with hooks, which is
// it or a specialization embedding it.
func (it *ImageTransform) initImage(owner *Node, hooks transformHooks) {
	it.SpatialTransform.init(owner, hooks)
	it.centerOfRotation = it.info.Center()
}

// Info returns the image description.
func (it *ImageTransform) Info() ImageInfo { return it.info }

// ScaleToFit reports whether the scale is computed to fit the client rectangle.
func (it *ImageTransform) ScaleToFit() bool { return it.scaleToFit }

// SetScaleToFit enables or disables scale-to-fit. Setting the scale
// explicitly disables it; Reset enables it.
func (it *ImageTransform) SetScaleToFit(v bool) {
	if it.scaleToFit == v {
		return
	}
	it.scaleToFit = v
	it.invalidate()
}

// ClientRectangle returns the viewport the image is centered and fitted in,
// in destination pixels.
func (it *ImageTransform) ClientRectangle() Rect { return it.client }

// SetClientRectangle sets the viewport. Containers call it whenever they are
// resized.
func (it *ImageTransform) SetClientRectangle(r Rect) {
	if it.client == r {
		return
	}
	it.client = r
	it.invalidate()
}

// FitScale returns the scale that fits the image in the client rectangle at
// the current rotation. ok is false when the client rectangle or the image is
// empty.
func (it *ImageTransform) FitScale() (scale float64, ok bool) {
	cw, ch := it.client.Width, it.client.Height
	rows, cols := float64(it.info.Rows), float64(it.info.Columns)
	if cw <= 0 || ch <= 0 || rows <= 0 || cols <= 0 {
		return 0, false
	}
	aspect := it.info.AspectRatio()
	effW, effH := cols, rows
	if aspect >= 1 {
		effH = rows * aspect
	} else {
		effW = cols / aspect
	}
	if it.rotation == 90 || it.rotation == 270 {
		effW, effH = effH, effW
	}
	sw := cw / effW
	if effH*sw <= ch {
		return sw, true
	}
	return ch / effH, true
}

// --- Hooks ---

func (it *ImageTransform) updateScaleParameters() {
	if it.scaleToFit {
		if s, ok := it.FitScale(); ok {
			it.setScale(s)
		}
	}
	s := it.scale
	aspect := it.info.AspectRatio()
	if aspect >= 1 {
		it.setScaleXY(s, s*aspect)
	} else {
		it.setScaleXY(s/aspect, s)
	}
}

// centering returns the translation that moves the image center onto the
// client center.
func (it *ImageTransform) centering() Vec2 {
	return it.client.Center().Sub(it.info.Center())
}

func (it *ImageTransform) preTransform(m Matrix) Matrix {
	c := it.centering()
	return it.SpatialTransform.preTransform(m.Multiply(Translate(c.X, c.Y)))
}

func (it *ImageTransform) resetCore() {
	it.SpatialTransform.resetCore()
	it.scaleToFit = true
}

func (it *ImageTransform) onScaleSet() {
	it.scaleToFit = false
}

func (it *ImageTransform) createMemento() any {
	return ImageTransformMemento{Transform: it.baseMemento(), ScaleToFit: it.scaleToFit}
}

func (it *ImageTransform) setMemento(m any) error {
	var im ImageTransformMemento
	switch v := m.(type) {
	case ImageTransformMemento:
		im = v
	case *ImageTransformMemento:
		if v == nil {
			return fmt.Errorf("%w: nil", ErrInvalidMemento)
		}
		im = *v
	default:
		return fmt.Errorf("%w: unexpected type %T", ErrInvalidMemento, m)
	}
	if err := it.restoreBase(im.Transform); err != nil {
		return err
	}
	it.SetScaleToFit(im.ScaleToFit)
	return nil
}

func (it *ImageTransform) copyImageParams(src *ImageTransform) {
	it.copyParams(&src.SpatialTransform)
	it.scaleToFit = src.scaleToFit
	it.client = src.client
}
