package vellum

import "fmt"

// globalDebug mirrors the most recently set Scene debug flag so that graphic
// operations (which have no scene pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed graphic
// is used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("vellum debug: %s on disposed graphic %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth above which a warning is logged. Reads of the
// cumulative transform cost O(depth).
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	if d := n.depth(); d > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"graphic", n.Name, "depth", d, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Composite) {
	if len(c.children) > debugMaxChildCount {
		Logger().Warn("composite has too many children",
			"graphic", c.Name, "children", len(c.children), "threshold", debugMaxChildCount)
	}
}
