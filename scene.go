package vellum

// Scene is the top-level object that owns the graphic tree and the client
// rectangle it is displayed in.
type Scene struct {
	root   *Composite
	client Rect
	debug  bool
}

// NewScene creates a new scene with a pre-created root composite.
func NewScene() *Scene {
	s := &Scene{root: NewComposite("root")}
	s.root.client = &s.client
	return s
}

// Root returns the scene's root composite.
func (s *Scene) Root() *Composite {
	return s.root
}

// Add attaches g to the root. Image graphics attached anywhere in the scene,
// through Add or directly to a descendant, receive the client rectangle.
func (s *Scene) Add(g Graphic) {
	s.root.Add(g)
}

// ClientRectangle returns the viewport in destination pixels.
func (s *Scene) ClientRectangle() Rect { return s.client }

// SetClientRectangle sets the viewport and pushes it into every image graphic
// in the tree. Call it whenever the hosting surface is resized.
func (s *Scene) SetClientRectangle(r Rect) {
	s.client = r
	pushClientRectangle(s.root, r)
}

func pushClientRectangle(g Graphic, r Rect) {
	Walk(g, func(g Graphic) bool {
		if ig, ok := g.(*ImageGraphic); ok {
			ig.SetClientRectangle(r)
		}
		return true
	})
}

// HitTest returns the topmost visible graphic hit by p, in destination
// coordinates, or nil. Siblings are tested in reverse painter order and
// containers are descended, so an annotation drawn over an image wins over
// the image. An image graphic that contains p is returned when none of its
// children is hit.
func (s *Scene) HitTest(p Vec2) Graphic {
	return hitTopmost(s.root, p)
}

func hitTopmost(c *Composite, p Vec2) Graphic {
	for i := len(c.children) - 1; i >= 0; i-- {
		g := c.children[i]
		if !g.Base().Visible() {
			continue
		}
		switch v := g.(type) {
		case *ImageGraphic:
			if hit := hitTopmost(&v.Composite, p); hit != nil {
				return hit
			}
			if v.Contains(p) {
				return v
			}
		case *Polyline:
			if v.HitTest(p) {
				return v
			}
		case *Composite:
			if hit := hitTopmost(v, p); hit != nil {
				return hit
			}
		default:
			if g.HitTest(p) {
				return g
			}
		}
	}
	return nil
}

// Walk visits g and its descendants depth-first in painter order. Returning
// false from fn skips the children of the graphic just visited.
func Walk(g Graphic, fn func(Graphic) bool) {
	if !fn(g) {
		return
	}
	c := g.Base().container
	if c == nil {
		return
	}
	for _, child := range c.children {
		Walk(child, fn)
	}
}

// Walk visits every graphic in the scene, the root included.
func (s *Scene) Walk(fn func(Graphic) bool) {
	Walk(s.root, fn)
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// disposed graphic in a tree operation panics and tree depth and child count
// warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Debug reports whether debug mode is enabled.
func (s *Scene) Debug() bool { return s.debug }
