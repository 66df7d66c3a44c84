package domain

// NodeTree is the rooted resolution of the program graph: a node snapshot,
// the port of the edge that produced it, and its expanded children in edge
// order.
//
// A loop-reference tree marks the point where a branch reconverged onto a
// node already expanded on the same root-to-leaf path. It carries the
// revisited node's data but no children and is never expanded further.
type NodeTree struct {
	Node     Node
	Port     string
	Children []*NodeTree

	IsLoopReference bool
}

// IsLeaf reports whether the tree has no children.
func (t *NodeTree) IsLeaf() bool {
	return len(t.Children) == 0
}

// PartitionChildren splits the children into the loop-body set and the exit
// set, preserving edge order within each.
func (t *NodeTree) PartitionChildren() (body, exits []*NodeTree) {
	for _, c := range t.Children {
		if c.Port == PortLoop {
			body = append(body, c)
		} else {
			exits = append(exits, c)
		}
	}
	return body, exits
}
