// Package render draws a vellum graphic tree onto an Ebitengine image.
//
// Outlines of graphics implementing vellum.Outliner are stroked as triangle
// ribbons against a white pixel. Image graphics are drawn with a GeoM built
// from their cumulative transform.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vellum"
)

// GeoM converts a vellum matrix into an ebiten.GeoM.
func GeoM(m vellum.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// --- White pixel singleton (no sync.Once: rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Renderer draws graphic trees. The zero value strokes 1px white outlines and
// draws no images.
type Renderer struct {
	// StrokeWidth is the outline width in destination pixels. Zero means 1.
	StrokeWidth float64
	// Color is the outline color. The zero value means white.
	Color Color
	// Highlighted, when non-nil, is stroked with HighlightColor.
	Highlighted    vellum.Graphic
	HighlightColor Color
	// ImageSource supplies the pixels of an image graphic. Image graphics
	// are skipped when it is nil or returns nil.
	ImageSource func(g *vellum.ImageGraphic) *ebiten.Image
}

// Draw paints g and its visible descendants onto dst in painter order. Each
// graphic is notified just before it is painted.
func (r *Renderer) Draw(dst *ebiten.Image, g vellum.Graphic) {
	for _, op := range r.plan(g) {
		if op.image != nil {
			r.drawImage(dst, op.image)
			continue
		}
		r.stroke(dst, op.outline, op.color)
	}
}

// drawOp is one paint step: an image or a stroked outline.
type drawOp struct {
	image   *vellum.ImageGraphic
	outline []vellum.Vec2
	color   Color
}

// plan walks g in painter order, fires the drawing notifications and returns
// the paint steps. Hidden subtrees are skipped.
func (r *Renderer) plan(g vellum.Graphic) []drawOp {
	var ops []drawOp
	vellum.Walk(g, func(g vellum.Graphic) bool {
		n := g.Base()
		if !n.Visible() {
			return false
		}
		n.NotifyDrawing()
		if img, ok := g.(*vellum.ImageGraphic); ok {
			ops = append(ops, drawOp{image: img})
		}
		if o, ok := g.(vellum.Outliner); ok {
			ops = append(ops, drawOp{outline: o.Outline(), color: r.colorFor(g)})
			// Composite outliners (polylines) already cover their children.
			return false
		}
		return true
	})
	return ops
}

func (r *Renderer) colorFor(g vellum.Graphic) Color {
	if r.Highlighted != nil && g == r.Highlighted {
		return r.HighlightColor
	}
	if r.Color == (Color{}) {
		return ColorWhite
	}
	return r.Color
}

func (r *Renderer) stroke(dst *ebiten.Image, pts []vellum.Vec2, c Color) {
	w := r.StrokeWidth
	if w <= 0 {
		w = 1
	}
	var op ebiten.DrawTrianglesOptions
	for _, run := range strokeRuns(pts) {
		verts, inds := StrokeVertices(run, w, c)
		if len(verts) == 0 {
			continue
		}
		dst.DrawTriangles(verts, inds, ensureWhitePixel(), &op)
	}
}

func (r *Renderer) drawImage(dst *ebiten.Image, g *vellum.ImageGraphic) {
	if r.ImageSource == nil {
		return
	}
	src := r.ImageSource(g)
	if src == nil {
		return
	}
	m, err := g.Transform().CumulativeTransform()
	if err != nil {
		vellum.Logger().Debug("drawing image with rejected transform", "graphic", g.Name, "err", err)
	}
	info := g.Info()
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	op.GeoM = imageGeoM(m, info, b.Dx(), b.Dy())
	dst.DrawImage(src, &op)
}

// imageGeoM maps the pixels of a w x h source image onto the image graphic's
// pixel grid, then through its cumulative matrix.
func imageGeoM(m vellum.Matrix, info vellum.ImageInfo, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(float64(info.Columns)/float64(w), float64(info.Rows)/float64(h))
	g.Concat(GeoM(m))
	return g
}
