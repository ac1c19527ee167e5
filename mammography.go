package vellum

import (
	"math"
	"strings"
)

// MammographyOrientation carries the patient orientation of a mammogram as
// read from its metadata. Row and Column are patient orientation codes for
// the directions of increasing column and increasing row index (the first
// character is used: L, R, A, P, H or F). Laterality is "L" or "R".
type MammographyOrientation struct {
	Row        string
	Column     string
	Laterality string
}

// Patient axes in the LPS convention.
var (
	lpsLeft      = [3]float64{1, 0, 0}
	lpsRight     = [3]float64{-1, 0, 0}
	lpsPosterior = [3]float64{0, 1, 0}
	lpsHead      = [3]float64{0, 0, 1}
)

// lpsDirection returns the patient axis for an orientation code.
func lpsDirection(code string) ([3]float64, bool) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return [3]float64{}, false
	}
	switch code[0] {
	case 'L':
		return lpsLeft, true
	case 'R':
		return lpsRight, true
	case 'P':
		return lpsPosterior, true
	case 'A':
		return [3]float64{0, -1, 0}, true
	case 'H':
		return lpsHead, true
	case 'F':
		return [3]float64{0, 0, -1}, true
	}
	return [3]float64{}, false
}

func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// MammographyTransform is the image transform of a mammogram. On top of the
// image behavior it applies a baseline flip and rotation so that the chest
// wall and the head (or, for cranio-caudal views, the lateral side) land where
// reading conventions expect them, and it pushes the image against the client
// edge on the chest-wall side.
//
// The baseline is part of the reset state: Reset restores it rather than the
// identity. An orientation that cannot be interpreted leaves the transform
// behaving as a plain ImageTransform.
type MammographyTransform struct {
	ImageTransform
	orient MammographyOrientation

	corrected    bool
	posterior    Vec2 // chest-wall direction in image pixels
	baseFlipY    bool
	baseRotation float64
}

func newMammographyTransform(owner *Node, info ImageInfo, orient MammographyOrientation) *MammographyTransform {
	mt := &MammographyTransform{ImageTransform: ImageTransform{info: info, scaleToFit: true}, orient: orient}
	mt.computeBaseline()
	mt.initImage(owner, mt)
	return mt
}

// Orientation returns the orientation the transform was built from.
func (mt *MammographyTransform) Orientation() MammographyOrientation { return mt.orient }

// Corrected reports whether the orientation was understood and the baseline
// correction is active.
func (mt *MammographyTransform) Corrected() bool { return mt.corrected }

// BaselineFlip reports whether the baseline applies a horizontal flip.
func (mt *MammographyTransform) BaselineFlip() bool { return mt.baseFlipY }

// BaselineRotation returns the baseline rotation in degrees.
func (mt *MammographyTransform) BaselineRotation() float64 { return mt.baseRotation }

// computeBaseline derives the baseline flip and rotation from the
// orientation. The posterior direction is mapped to the left of the display
// for a left breast and to the right for a right breast; the secondary
// direction (head, or lateral when the head is out of plane) points up.
func (mt *MammographyTransform) computeBaseline() {
	mt.corrected = false
	row, ok := lpsDirection(mt.orient.Row)
	if !ok {
		return
	}
	col, ok := lpsDirection(mt.orient.Column)
	if !ok {
		return
	}

	var lateral [3]float64
	var normPosterior Vec2
	switch strings.TrimSpace(strings.ToUpper(mt.orient.Laterality)) {
	case "L":
		lateral = lpsLeft
		normPosterior = Vec2{-1, 0}
	case "R":
		lateral = lpsRight
		normPosterior = Vec2{1, 0}
	default:
		return
	}
	normSecondary := Vec2{0, -1}

	p := Vec2{dot3(row, lpsPosterior), dot3(col, lpsPosterior)}
	if p == (Vec2{}) {
		return
	}
	s := Vec2{dot3(row, lpsHead), dot3(col, lpsHead)}
	if s == (Vec2{}) {
		s = Vec2{dot3(row, lateral), dot3(col, lateral)}
	}
	if s == (Vec2{}) {
		return
	}

	flip := sign(p.Cross(s)) != sign(normPosterior.Cross(normSecondary))
	pf := p
	if flip {
		pf.X = -pf.X
	}
	rot := math.Round((vectorAngle(normPosterior)-vectorAngle(pf))/90) * 90

	mt.posterior = p
	mt.baseFlipY = flip
	mt.baseRotation = NormalizeDegrees(rot)
	mt.corrected = true
}

// --- Hooks ---

func (mt *MammographyTransform) resetCore() {
	mt.ImageTransform.resetCore()
	if mt.corrected {
		mt.SetFlipY(mt.baseFlipY)
		mt.SetRotation(mt.baseRotation)
	}
}

func (mt *MammographyTransform) preTransform(m Matrix) Matrix {
	if s := mt.chestWallShift(); s != (Vec2{}) {
		m = m.Multiply(Translate(s.X, s.Y))
	}
	return mt.ImageTransform.preTransform(m)
}

// chestWallShift returns the destination offset that moves the displayed
// image against the client edge on the chest-wall side. It is zero when the
// image overflows the client along that axis.
func (mt *MammographyTransform) chestWallShift() Vec2 {
	if !mt.corrected || mt.client.Width <= 0 || mt.client.Height <= 0 {
		return Vec2{}
	}
	local := mt.LocalTransform()
	d := local.TransformVector(mt.posterior)
	shown := boundsOf(local.TransformPoints(rectOutline(Rect{Width: float64(mt.info.Columns), Height: float64(mt.info.Rows)})[:4]))

	if math.Abs(d.X) >= math.Abs(d.Y) {
		gap := (mt.client.Width - shown.Width) / 2
		if gap <= 0 {
			return Vec2{}
		}
		return Vec2{sign(d.X) * gap, 0}
	}
	gap := (mt.client.Height - shown.Height) / 2
	if gap <= 0 {
		return Vec2{}
	}
	return Vec2{0, sign(d.Y) * gap}
}

// --- Graphic ---

// NewMammographyGraphic creates an image graphic whose transform applies the
// mammography orientation correction described by orient.
func NewMammographyGraphic(name string, info ImageInfo, orient MammographyOrientation) *ImageGraphic {
	g := &ImageGraphic{}
	g.initComposite(g, name)
	mt := newMammographyTransform(&g.Node, info, orient)
	g.imgTransform = &mt.ImageTransform
	g.setTransform(&mt.SpatialTransform)
	g.imgTransform.SetValidationPolicy(RightAngleRotationPolicy{})
	return g
}

// MammographyTransform returns the mammography transform of a graphic built
// with NewMammographyGraphic, or nil.
func (g *ImageGraphic) MammographyTransform() *MammographyTransform {
	mt, _ := g.imgTransform.hooks.(*MammographyTransform)
	return mt
}
