package vellum

// Graphic is implemented by every element of the scene graph. Concrete
// graphics embed a Node, which supplies identity, visibility, the transform,
// the coordinate-system stack and notifications.
//
// HitTest takes a point in destination coordinates. ClosestPoint, Move and
// BoundingBox operate in the graphic's current coordinate system.
type Graphic interface {
	Base() *Node
	BoundingBox() Rect
	HitTest(p Vec2) bool
	ClosestPoint(p Vec2) Vec2
	Move(delta Vec2)
	SetCoordinateSystem(cs CoordinateSystem)
	ResetCoordinateSystem()
	Clone() Graphic
}

// Outliner is implemented by graphics that can report their outline as a
// flattened polyline in destination coordinates. Renderers stroke it.
type Outliner interface {
	Outline() []Vec2
}

// Selectable is implemented by graphics that can be selected. Detaching a
// graphic from its parent deselects it.
type Selectable interface {
	SetSelected(selected bool)
}

// Focusable is implemented by graphics that can take focus. Detaching a
// graphic from its parent unfocuses it.
type Focusable interface {
	SetFocused(focused bool)
}

// --- ID counter ---

// nodeIDCounter is a plain counter, not atomic: vellum is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the base embedded by every graphic.
type Node struct {
	// Identity
	ID   uint32
	Name string

	visible bool

	// parent is set only by the owning container on attach and cleared on detach.
	parent *Composite
	self   Graphic
	// container is non-nil when this node is the base of a Composite.
	container *Composite

	transform *SpatialTransform
	coords    []CoordinateSystem

	handlers handlerRegistry
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node, self Graphic, name string) {
	n.ID = nextNodeID()
	n.Name = name
	n.self = self
	n.visible = true
	n.coords = []CoordinateSystem{Source}
}

// Base returns n. It lets any struct embedding Node satisfy part of Graphic.
func (n *Node) Base() *Node { return n }

// Graphic returns the graphic that embeds n.
func (n *Node) Graphic() Graphic { return n.self }

// Parent returns the containing graphic, or nil when detached.
func (n *Node) Parent() Graphic {
	if n.parent == nil {
		return nil
	}
	return n.parent.self
}

// Visible reports whether the graphic is shown and participates in hit tests.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the graphic.
func (n *Node) SetVisible(v bool) {
	if n.visible == v {
		return
	}
	n.visible = v
	n.NotifyVisualStateChanged("Visible", VisualStatePresentation)
}

// Transform returns the graphic's transform, creating it on first use.
func (n *Node) Transform() *SpatialTransform {
	if n.transform == nil {
		n.transform = newSpatialTransform(n)
	}
	return n.transform
}

// setTransform installs a specialized transform. Used by constructors.
func (n *Node) setTransform(t *SpatialTransform) {
	n.transform = t
}

// invalidateTransform forces the transform of n to recompute on next read.
func (n *Node) invalidateTransform() {
	if n.transform != nil {
		n.transform.invalidate()
	}
}

// --- Coordinate system ---

// CoordinateSystem returns the active coordinate system.
func (n *Node) CoordinateSystem() CoordinateSystem {
	return n.coords[len(n.coords)-1]
}

// CoordinateSystemDepth returns the number of entries on the coordinate
// system stack. It is never less than 1.
func (n *Node) CoordinateSystemDepth() int { return len(n.coords) }

// SetCoordinateSystem pushes cs onto the stack. Every call must be paired
// with ResetCoordinateSystem.
func (n *Node) SetCoordinateSystem(cs CoordinateSystem) {
	n.coords = append(n.coords, cs)
}

// ResetCoordinateSystem restores the coordinate system that was active before
// the last SetCoordinateSystem. It is a no-op when only one entry remains.
func (n *Node) ResetCoordinateSystem() {
	if len(n.coords) > 1 {
		n.coords = n.coords[:len(n.coords)-1]
	}
}

// WithCoordinateSystem runs fn with g switched to cs, restoring the previous
// coordinate system afterward even if fn panics.
func WithCoordinateSystem(g Graphic, cs CoordinateSystem, fn func()) {
	g.SetCoordinateSystem(cs)
	defer g.ResetCoordinateSystem()
	fn()
}

// toCurrent maps a source point into the current coordinate system.
func (n *Node) toCurrent(p Vec2) Vec2 {
	if n.CoordinateSystem() == Destination {
		return n.Transform().ConvertToDestination(p)
	}
	return p
}

// fromCurrent maps a point in the current coordinate system to source.
func (n *Node) fromCurrent(p Vec2) Vec2 {
	if n.CoordinateSystem() == Destination {
		return n.Transform().ConvertToSource(p)
	}
	return p
}

// vectorToCurrent maps a source vector into the current coordinate system.
func (n *Node) vectorToCurrent(v Vec2) Vec2 {
	if n.CoordinateSystem() == Destination {
		return n.Transform().ConvertVectorToDestination(v)
	}
	return v
}

// vectorFromCurrent maps a vector in the current coordinate system to source.
func (n *Node) vectorFromCurrent(v Vec2) Vec2 {
	if n.CoordinateSystem() == Destination {
		return n.Transform().ConvertVectorToSource(v)
	}
	return v
}

// rectToCurrent maps a source rect into the current coordinate system,
// converting both corners independently.
func (n *Node) rectToCurrent(r Rect) Rect {
	if n.CoordinateSystem() == Destination {
		return n.Transform().ConvertRectToDestination(r)
	}
	return r
}

// --- Disposal ---

// Dispose removes the graphic from its parent, marks it as disposed, and
// recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.parent != nil {
		n.parent.Remove(n.self)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	if n.container != nil {
		for _, child := range n.container.children {
			child.Base().parent = nil
			child.Base().dispose()
		}
		n.container.children = nil
	}
	n.parent = nil
	n.handlers = handlerRegistry{}
}

// IsDisposed reports whether the graphic has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Cloning ---

// cloneInto copies the cloneable state of n into dst, which must already be
// initialized with nodeDefaults. Listeners and the parent link are not copied.
func (n *Node) cloneInto(dst *Node) {
	dst.Name = n.Name
	dst.visible = n.visible
	if n.transform != nil {
		dst.Transform().copyParams(n.transform)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; {
		if p == candidate {
			return true
		}
		if p.parent == nil {
			return false
		}
		p = &p.parent.Node
	}
	return false
}

// depth returns the number of nodes from n up to the root, inclusive.
func (n *Node) depth() int {
	d := 1
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
