package canvas

// Index maps node IDs to nodes. It is built once per document so edge
// endpoints resolve without rescanning the node list.
type Index struct {
	byID map[string]int
	doc  []Node
}

// NewIndex indexes nodes by ID. When IDs repeat, the first node in input
// order wins.
func NewIndex(nodes []Node) Index {
	byID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, seen := byID[n.ID]; !seen {
			byID[n.ID] = i
		}
	}
	return Index{byID: byID, doc: nodes}
}

// Lookup returns the node with the given ID.
func (ix Index) Lookup(id string) (Node, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return Node{}, false
	}
	return ix.doc[i], true
}

// Len returns the number of distinct IDs.
func (ix Index) Len() int { return len(ix.byID) }
