package quad

import (
	"errors"
	"fmt"
)

// Construction-time validation failures. Insert and Query are total
// functions over valid inputs and never fail.
var (
	ErrInvalidBoundary = errors.New("quad: boundary width and height must be positive")
	ErrInvalidCapacity = errors.New("quad: capacity must be at least 1")
)

// Entry associates caller-owned data with its bounds. ID is an opaque
// handle, typically an index into caller-owned storage; the tree never
// owns or interprets the payload it refers to.
type Entry struct {
	ID     int
	Bounds Rect
}

// Tree is a capacity-bounded 2D spatial index over axis-aligned
// rectangles. Entries are inserted incrementally and queried for
// overlap candidates; there is no removal or update, matching the
// rebuild-per-frame usage the structure is designed for. Discard the
// tree and build a new one when objects move.
//
// Tree is not safe for concurrent use. Mutation requires exclusive
// access, and queries assume a fully built, stable tree.
type Tree struct {
	root     *node
	capacity int
	maxDepth int
	size     int
	stats    Stats
}

// node covers one rectangular region of the tree. A node is either a
// leaf, or subdivided with exactly four children present together.
// Subdivision is permanent: a divided node never merges back.
type node struct {
	boundary Rect
	depth    int
	entries  []Entry
	divided  bool
	children [4]*node
}

// New creates an empty tree indexing the given world boundary. Each
// node holds up to capacity entries before it subdivides. The capacity
// is a soft bound: a node keeps entries that straddle its quadrant
// boundaries regardless of how many it already holds.
func New(boundary Rect, capacity int, opts ...Option) (*Tree, error) {
	if boundary.Empty() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBoundary, boundary)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	o := defaultTreeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree{
		root:     &node{boundary: boundary},
		capacity: capacity,
		maxDepth: o.maxDepth,
	}, nil
}

// Boundary returns the world boundary the tree was constructed with.
func (t *Tree) Boundary() Rect {
	return t.root.boundary
}

// Len returns the number of entries stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Insert adds an entry to the tree. It returns false, with no side
// effect, when the entry's bounds do not intersect the tree boundary;
// such entries are simply never indexed. Callers that need to know
// whether an object was indexed must check the result.
func (t *Tree) Insert(e Entry) bool {
	if !t.root.boundary.Intersects(e.Bounds) {
		return false
	}
	t.root.insert(e, t)
	t.size++
	return true
}

// insert places e somewhere in the subtree rooted at n. The caller has
// already established that e.Bounds intersects n.boundary.
func (n *node) insert(e Entry, t *Tree) {
	// A leaf below capacity takes the entry directly.
	if !n.divided && len(n.entries) < t.capacity {
		n.entries = append(n.entries, e)
		return
	}
	if !n.divided {
		if n.depth >= t.maxDepth {
			// Depth limit reached: store here regardless of capacity
			// rather than subdividing past float resolution.
			n.entries = append(n.entries, e)
			return
		}
		n.subdivide(t)
	}
	// Offer the entry to the children in fixed order. A child claims it
	// only when its quadrant fully contains the bounds, so every entry
	// lives at exactly one node: either a single descendant, or the
	// shallowest node whose quadrants all fail to contain it.
	for _, q := range quadrants {
		if c := n.children[q]; c.boundary.ContainsRect(e.Bounds) {
			c.insert(e, t)
			return
		}
	}
	// Straddles two or more quadrants: it stays with this node. This is
	// how a node ends up over capacity.
	n.entries = append(n.entries, e)
}

// subdivide splits n into four equal quadrants. Existing entries stay
// where they are; only entries inserted afterwards descend.
func (n *node) subdivide(t *Tree) {
	for _, q := range quadrants {
		n.children[q] = &node{
			boundary: n.boundary.Quadrant(q),
			depth:    n.depth + 1,
		}
	}
	n.divided = true
	t.stats.Subdivisions++
	Logger().Debug("node subdivided",
		"boundary", n.boundary.String(),
		"depth", n.depth)
}

// Query returns all entries whose bounds intersect the given range.
// Each matching entry appears exactly once. The result order follows
// the fixed NE, NW, SE, SW traversal and is deterministic for a given
// tree.
func (t *Tree) Query(rng Rect) []Entry {
	return t.QueryAppend(rng, nil)
}

// QueryAppend appends all entries whose bounds intersect rng to dst
// and returns the extended slice. It allows callers to reuse result
// storage across queries.
func (t *Tree) QueryAppend(rng Rect, dst []Entry) []Entry {
	return t.root.query(rng, dst, t)
}

func (n *node) query(rng Rect, dst []Entry, t *Tree) []Entry {
	t.stats.NodesVisited++
	// Prune: nothing below a node whose boundary misses the range can
	// match. This is the entire advantage over a pairwise scan.
	if !n.boundary.Intersects(rng) {
		return dst
	}
	for _, e := range n.entries {
		t.stats.EntryTests++
		if rng.Intersects(e.Bounds) {
			dst = append(dst, e)
		}
	}
	if n.divided {
		for _, q := range quadrants {
			dst = n.children[q].query(rng, dst, t)
		}
	}
	return dst
}

// Walk visits every node in preorder, children in fixed NE, NW, SE,
// SW order, reporting each node's boundary, depth, and the entries
// stored directly at it. The entries slice is the tree's own storage;
// callers must not retain or modify it.
func (t *Tree) Walk(fn func(boundary Rect, depth int, entries []Entry)) {
	t.root.walk(fn)
}

func (n *node) walk(fn func(Rect, int, []Entry)) {
	fn(n.boundary, n.depth, n.entries)
	if n.divided {
		for _, q := range quadrants {
			n.children[q].walk(fn)
		}
	}
}
