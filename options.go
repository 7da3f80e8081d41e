package quad

// DefaultMaxDepth bounds subdivision when no explicit limit is given.
// Halving 2^32 world units this many times lands below float64
// resolution for any practical boundary, so the default only guards
// against degenerate input.
const DefaultMaxDepth = 32

// Option configures a Tree during creation.
//
// Example:
//
//	t, err := quad.New(quad.R(0, 0, 800, 600), 4, quad.WithMaxDepth(8))
type Option func(*treeOptions)

type treeOptions struct {
	maxDepth int
}

func defaultTreeOptions() treeOptions {
	return treeOptions{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth limits how deep the tree may subdivide. A node at the
// limit stores entries past its capacity instead of splitting. This
// guards against unbounded recursion when many tiny entries cluster
// around a quadrant boundary; without a limit, entries smaller than
// floating-point resolution could force subdivision forever.
func WithMaxDepth(depth int) Option {
	return func(o *treeOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
