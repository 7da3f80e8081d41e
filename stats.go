package quad

// Stats counts the work the tree has done since construction or the
// last ResetStats. The counters make pruning observable: a query whose
// range misses the root boundary visits one node and tests zero
// entries.
type Stats struct {
	// NodesVisited counts query calls that reached a node, including
	// nodes pruned by the boundary test.
	NodesVisited uint64
	// EntryTests counts entry-bounds intersection tests performed
	// during queries.
	EntryTests uint64
	// Subdivisions counts nodes that have split into quadrants.
	Subdivisions uint64
}

// Stats returns a snapshot of the cumulative counters.
func (t *Tree) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the counters. Tree contents are unaffected.
func (t *Tree) ResetStats() {
	t.stats = Stats{}
}
