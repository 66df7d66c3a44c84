package compiler

import (
	"io"
	"log/slog"

	"github.com/tortugraph/tortuga/pkg/domain"
)

// Compiler resolves a node/edge snapshot into a rooted NodeTree.
type Compiler struct {
	logger *slog.Logger
}

// New creates a compiler. A nil logger disables logging.
func New(logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Compiler{logger: logger}
}

// Compile walks outgoing edges from the start node and builds the tree.
// Revisiting a node id within the same branch yields a childless
// loop-reference leaf instead of recursing, so cyclic graphs terminate.
// Sibling branches carry independent visited sets: convergence across
// different branches is allowed and re-expanded per branch.
//
// Returns domain.ErrStartNodeNotFound when startID is absent from nodes.
func (c *Compiler) Compile(nodes []domain.Node, edges []domain.Edge, startID string) (*domain.NodeTree, error) {
	index := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}

	start, ok := index[startID]
	if !ok {
		c.logger.Warn("start node missing from snapshot", "startID", startID)
		return nil, domain.ErrStartNodeNotFound
	}

	// Outgoing adjacency in edge order. Edges pointing at unknown nodes
	// are dropped; the graph is live and user-editable.
	out := make(map[string][]domain.Edge, len(nodes))
	for _, e := range edges {
		if _, known := index[e.To]; !known {
			c.logger.Debug("dropping edge to unknown node", "from", e.From, "to", e.To)
			continue
		}
		out[e.From] = append(out[e.From], e)
	}

	root := c.expand(start, domain.PortDefault, index, out, map[string]bool{})
	return root, nil
}

// expand descends from node, carrying the set of ids already expanded on
// this branch. The set is copied per child so siblings do not interfere.
func (c *Compiler) expand(node domain.Node, port string, index map[string]domain.Node, out map[string][]domain.Edge, visited map[string]bool) *domain.NodeTree {
	tree := &domain.NodeTree{Node: node, Port: port}

	for _, e := range out[node.ID] {
		target := index[e.To]
		childPort := e.Port
		if childPort == "" {
			childPort = domain.PortDefault
		}

		if visited[e.To] || e.To == node.ID {
			tree.Children = append(tree.Children, &domain.NodeTree{
				Node:            target,
				Port:            childPort,
				IsLoopReference: true,
			})
			continue
		}

		branchVisited := make(map[string]bool, len(visited)+1)
		for id := range visited {
			branchVisited[id] = true
		}
		branchVisited[node.ID] = true

		tree.Children = append(tree.Children, c.expand(target, childPort, index, out, branchVisited))
	}

	return tree
}
