// Package vellum is a retained-mode 2D scene graph of geometric annotations
// and images, with hierarchical affine transforms.
//
// Every element is a [Graphic]. Graphics form a tree rooted at
// [Scene.Root]; a graphic's placement is its own transform composed with
// every ancestor's. Each graphic works in two coordinate systems: [Source],
// its own untransformed space, and [Destination], the space of the display
// surface. Accessors read and write values in whichever system is current:
//
//	rect := vellum.NewRectangle("roi", vellum.Rect{X: 10, Y: 10, Width: 40, Height: 20})
//	img.Add(rect)
//
//	vellum.WithCoordinateSystem(rect, vellum.Destination, func() {
//		fmt.Println(rect.TopLeft()) // on-screen corner
//	})
//
// # Transforms
//
// A [SpatialTransform] holds scale, rotation, flips, translation and a center
// of rotation. The cumulative matrix is cached and recomputed lazily: a write
// only bumps a local generation, and a read revalidates the chain of ancestors
// in O(depth).
//
// An [ImageGraphic] uses an [ImageTransform], which centers the image in the
// client rectangle, compensates for non-square pixels, and fits the image to
// the viewport until the scale is set explicitly. [NewMammographyGraphic]
// adds the orientation correction used for mammograms.
//
// # Geometry
//
// Primitives include [Rectangle], [Ellipse], [Arc], [Line], [Point],
// [Polyline] and [Spline], plus the invariant shapes ([InvariantRectangle],
// [InvariantEllipse], [InvariantArc]) that keep a fixed on-screen size while
// following their anchor. Hit tests take destination points and use a
// [HitTestDistance] tolerance.
//
// # Rendering
//
// The core draws nothing. The render subpackage strokes outlines and draws
// images onto an [Ebitengine] image; examples/viewer is an interactive demo.
//
// vellum is single-threaded: confine a scene to one goroutine.
//
// [Ebitengine]: https://ebitengine.org
package vellum
