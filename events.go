package vellum

// VisualStateKind classifies a visual state change.
type VisualStateKind uint8

const (
	VisualStateUnspecified  VisualStateKind = iota // no classification given
	VisualStateGeometry                            // shape, position or extent changed
	VisualStatePresentation                        // appearance changed, geometry did not
)

// VisualStateChange describes a property change on a graphic. Graphic is the
// graphic whose property changed, not the ancestor observing it.
type VisualStateChange struct {
	Graphic  Graphic
	Property string
	Kind     VisualStateKind
}

// ChildrenChangeKind identifies an edit of a container's child list.
type ChildrenChangeKind uint8

const (
	ChildAdded   ChildrenChangeKind = iota // a child was inserted
	ChildRemoved                           // a child was detached
)

// ChildrenChange describes one edit of a container's child list.
type ChildrenChange struct {
	Kind  ChildrenChangeKind
	Index int
	Child Graphic
}

// callbackKind identifies the list a CallbackHandle belongs to.
type callbackKind uint8

const (
	callbackVisualState callbackKind = iota
	callbackDrawing
	callbackChildren
)

// --- Handler registry ---

type visualStateHandler struct {
	id uint32
	fn func(VisualStateChange)
}

type drawingHandler struct {
	id uint32
	fn func(Graphic)
}

type childrenHandler struct {
	id uint32
	fn func(ChildrenChange)
}

type handlerRegistry struct {
	visualState []visualStateHandler
	drawing     []drawingHandler
	children    []childrenHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackVisualState:
		h.reg.visualState = removeHandler(h.reg.visualState, h.id, func(e visualStateHandler) uint32 { return e.id })
	case callbackDrawing:
		h.reg.drawing = removeHandler(h.reg.drawing, h.id, func(e drawingHandler) uint32 { return e.id })
	case callbackChildren:
		h.reg.children = removeHandler(h.reg.children, h.id, func(e childrenHandler) uint32 { return e.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnVisualStateChanged registers fn to be called when this graphic or any of
// its descendants reports a visual state change.
func (n *Node) OnVisualStateChanged(fn func(VisualStateChange)) CallbackHandle {
	n.handlers.nextID++
	id := n.handlers.nextID
	n.handlers.visualState = append(n.handlers.visualState, visualStateHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &n.handlers, kind: callbackVisualState}
}

// OnDrawing registers fn to be called immediately before the graphic is
// painted.
func (n *Node) OnDrawing(fn func(Graphic)) CallbackHandle {
	n.handlers.nextID++
	id := n.handlers.nextID
	n.handlers.drawing = append(n.handlers.drawing, drawingHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &n.handlers, kind: callbackDrawing}
}

// --- Notification ---

// NotifyVisualStateChanged reports a property change. Listeners on this
// graphic fire first, then the change is forwarded unchanged to every
// ancestor in turn.
func (n *Node) NotifyVisualStateChanged(property string, kind VisualStateKind) {
	if n.disposed {
		return
	}
	e := VisualStateChange{Graphic: n.self, Property: property, Kind: kind}
	for p := n; p != nil; {
		// Handlers may remove themselves while dispatching.
		hs := append([]visualStateHandler(nil), p.handlers.visualState...)
		for _, h := range hs {
			h.fn(e)
		}
		if p.parent == nil {
			break
		}
		p = &p.parent.Node
	}
}

// NotifyDrawing fires the drawing callbacks. Renderers call it immediately
// before painting the graphic.
func (n *Node) NotifyDrawing() {
	hs := append([]drawingHandler(nil), n.handlers.drawing...)
	for _, h := range hs {
		h.fn(n.self)
	}
}
