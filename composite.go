package vellum

import "math"

// Composite is a graphic that owns an ordered list of child graphics. Order is
// painter order: later children paint on top and earlier children win hit
// tests.
type Composite struct {
	Node
	children []Graphic
	// client is set on a scene root only; it is pushed into image graphics
	// attached anywhere below it.
	client *Rect
}

// NewComposite creates an empty composite.
func NewComposite(name string) *Composite {
	c := &Composite{}
	c.initComposite(c, name)
	return c
}

// initComposite initializes the embedded Node of a composite whose outer
// graphic is self.
func (c *Composite) initComposite(self Graphic, name string) {
	nodeDefaults(&c.Node, self, name)
	c.Node.container = c
}

// --- Tree manipulation ---

// Add appends child. Panics if child is nil, already has a parent, or is an
// ancestor of c.
func (c *Composite) Add(child Graphic) {
	c.Insert(len(c.children), child)
}

// Insert inserts child at index. Same preconditions as Add; also panics if
// index is out of range.
func (c *Composite) Insert(index int, child Graphic) {
	if child == nil {
		panic("vellum: cannot add nil child")
	}
	cn := child.Base()
	if globalDebug {
		debugCheckDisposed(&c.Node, "Insert (parent)")
		debugCheckDisposed(cn, "Insert (child)")
	}
	if cn.parent != nil {
		panic("vellum: child already has a parent")
	}
	if isAncestor(cn, &c.Node) {
		panic("vellum: adding child would create a cycle")
	}
	if index < 0 || index > len(c.children) {
		panic("vellum: child index out of range")
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child

	cn.parent = c
	child.SetCoordinateSystem(c.CoordinateSystem())
	cn.invalidateTransform()
	if r := c.sceneClient(); r != nil {
		pushClientRectangle(child, *r)
	}
	c.fireChildrenChanged(ChildrenChange{Kind: ChildAdded, Index: index, Child: child})
	if globalDebug {
		debugCheckTreeDepth(cn)
		debugCheckChildCount(c)
	}
}

// sceneClient returns the client rectangle of the scene c belongs to, or nil.
func (c *Composite) sceneClient() *Rect {
	top := c
	for top.parent != nil {
		top = top.parent
	}
	return top.client
}

// Remove detaches child. Panics if child is not a child of c.
func (c *Composite) Remove(child Graphic) {
	i := c.IndexOf(child)
	if i < 0 {
		panic("vellum: child's parent is not this composite")
	}
	c.RemoveAt(i)
}

// RemoveAt detaches and returns the child at index.
func (c *Composite) RemoveAt(index int) Graphic {
	if globalDebug {
		debugCheckDisposed(&c.Node, "RemoveAt")
	}
	if index < 0 || index >= len(c.children) {
		panic("vellum: child index out of range")
	}
	child := c.children[index]
	copy(c.children[index:], c.children[index+1:])
	c.children[len(c.children)-1] = nil
	c.children = c.children[:len(c.children)-1]
	c.detach(child)
	c.fireChildrenChanged(ChildrenChange{Kind: ChildRemoved, Index: index, Child: child})
	return child
}

// Clear detaches every child, last to first. Children are NOT disposed.
func (c *Composite) Clear() {
	for i := len(c.children) - 1; i >= 0; i-- {
		c.RemoveAt(i)
	}
}

func (c *Composite) detach(child Graphic) {
	if s, ok := child.(Selectable); ok {
		s.SetSelected(false)
	}
	if f, ok := child.(Focusable); ok {
		f.SetFocused(false)
	}
	// Pops the coordinate system pushed on attach.
	child.ResetCoordinateSystem()
	cn := child.Base()
	cn.parent = nil
	cn.invalidateTransform()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Composite) Children() []Graphic { return c.children }

// Len returns the number of children.
func (c *Composite) Len() int { return len(c.children) }

// At returns the child at index.
func (c *Composite) At(index int) Graphic { return c.children[index] }

// IndexOf returns the index of child, or -1.
func (c *Composite) IndexOf(child Graphic) int {
	for i, g := range c.children {
		if g == child {
			return i
		}
	}
	return -1
}

// OnChildrenChanged registers fn to be called after every insert or removal.
func (c *Composite) OnChildrenChanged(fn func(ChildrenChange)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.children = append(c.handlers.children, childrenHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, kind: callbackChildren}
}

func (c *Composite) fireChildrenChanged(e ChildrenChange) {
	hs := append([]childrenHandler(nil), c.handlers.children...)
	for _, h := range hs {
		h.fn(e)
	}
}

// --- Coordinate system ---

// SetCoordinateSystem pushes cs on c and on every descendant.
func (c *Composite) SetCoordinateSystem(cs CoordinateSystem) {
	c.Node.SetCoordinateSystem(cs)
	for _, g := range c.children {
		g.SetCoordinateSystem(cs)
	}
}

// ResetCoordinateSystem pops c and every descendant.
func (c *Composite) ResetCoordinateSystem() {
	c.Node.ResetCoordinateSystem()
	for _, g := range c.children {
		g.ResetCoordinateSystem()
	}
}

// --- Geometry ---

// BoundingBox returns the union of the children's bounding boxes, skipping
// empty ones. It is empty when there are no children.
func (c *Composite) BoundingBox() Rect {
	var box Rect
	for _, g := range c.children {
		box = box.Union(g.BoundingBox())
	}
	return box
}

// HitTest reports whether any visible child is hit, testing in child order.
func (c *Composite) HitTest(p Vec2) bool {
	for _, g := range c.children {
		if g.Base().Visible() && g.HitTest(p) {
			return true
		}
	}
	return false
}

// ClosestPoint returns the closest point over all children. Ties keep the
// first child. With no children p is returned.
func (c *Composite) ClosestPoint(p Vec2) Vec2 {
	best := p
	bestDist := math.Inf(1)
	for _, g := range c.children {
		q := g.ClosestPoint(p)
		if d := p.Distance(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

// Move moves every child by delta.
func (c *Composite) Move(delta Vec2) {
	for _, g := range c.children {
		g.Move(delta)
	}
}

// Clone returns a deep copy of c with every child cloned and re-parented.
func (c *Composite) Clone() Graphic {
	dst := NewComposite(c.Name)
	c.cloneChildrenInto(dst)
	return dst
}

func (c *Composite) cloneChildrenInto(dst *Composite) {
	c.Node.cloneInto(&dst.Node)
	for _, g := range c.children {
		dst.Add(g.Clone())
	}
}
