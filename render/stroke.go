package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/vellum"
)

// maxStrokePoints bounds the points per DrawTriangles call so that vertex
// indices fit in uint16 (two vertices per point).
const maxStrokePoints = 1 << 14

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// StrokeVertices builds a ribbon of the given width along pts. For N points
// it returns 2N vertices and 6(N-1) indices; fewer than two points yield
// nothing. Interior joins are mitered, with the extension clamped to twice
// the half width. Source coordinates address the center of a 1x1 white image.
func StrokeVertices(pts []vellum.Vec2, width float64, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 2 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, 2*n)
	inds := make([]uint16, 6*(n-1))
	halfW := width / 2

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(pts[0], pts[1])
		case n - 1:
			nx, ny = perpendicular(pts[n-2], pts[n-1])
		default:
			nx0, ny0 := perpendicular(pts[i-1], pts[i])
			nx1, ny1 := perpendicular(pts[i], pts[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			} else {
				nx, ny = nx0, ny0
			}
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := math.Min(1/dot, 2)
				nx *= scale
				ny *= scale
			}
		}

		p := pts[i]
		verts[2*i] = vertex(p.X+nx*halfW, p.Y+ny*halfW, c)
		verts[2*i+1] = vertex(p.X-nx*halfW, p.Y-ny*halfW, c)
	}

	for i := 0; i < n-1; i++ {
		ii := i * 6
		v := uint16(i * 2)
		inds[ii+0] = v
		inds[ii+1] = v + 1
		inds[ii+2] = v + 2
		inds[ii+3] = v + 1
		inds[ii+4] = v + 3
		inds[ii+5] = v + 2
	}
	return verts, inds
}

func vertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b vellum.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// strokeRuns splits pts into runs of at most maxStrokePoints, each sharing its
// first point with the end of the previous run.
func strokeRuns(pts []vellum.Vec2) [][]vellum.Vec2 {
	if len(pts) <= maxStrokePoints {
		return [][]vellum.Vec2{pts}
	}
	var runs [][]vellum.Vec2
	for start := 0; start < len(pts)-1; start += maxStrokePoints - 1 {
		end := min(start+maxStrokePoints, len(pts))
		runs = append(runs, pts[start:end])
	}
	return runs
}
