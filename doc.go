// Package quad provides a recursive, capacity-bounded 2D spatial index
// over axis-aligned rectangles.
//
// # Overview
//
// quad implements a region quadtree for broad-phase overlap queries.
// The world is divided into quadrants on demand: each node holds up to
// a fixed number of entries before splitting into four equal children,
// and a range query descends only into quadrants that overlap the
// query rectangle. This narrows collision candidates without the
// O(n^2) cost of pairwise checks.
//
// # Quick Start
//
//	import "github.com/gospatial/quad"
//
//	// Index an 800x600 world, up to 4 entries per node
//	t, err := quad.New(quad.R(0, 0, 800, 600), 4)
//	if err != nil {
//	    // non-positive boundary or capacity
//	}
//
//	// Entries carry an opaque ID into caller-owned storage
//	t.Insert(quad.Entry{ID: 1, Bounds: quad.R(10, 10, 20, 20)})
//
//	// Collect overlap candidates for a range
//	hits := t.Query(quad.R(0, 0, 100, 100))
//
// # Semantics
//
// Entries whose bounds span more than one quadrant stay at the node
// where they straddle, so node capacity is a soft bound and every
// entry lives at exactly one node. Queries therefore never return
// duplicates. Rectangles that merely touch along an edge count as
// intersecting.
//
// The tree is insert-only. Rebuild it when indexed objects move; at a
// few pointer-free allocations per node, construction is cheap enough
// to run per frame.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Mutation requires exclusive
// access and queries assume a stable, fully built tree.
//
// The procgen sub-package carries the procedural generation companions
// to the index: Sierpinski line subdivision, a tileable noise texture,
// and a Julia set renderer.
package quad

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
