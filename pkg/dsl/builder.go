package dsl

import (
	"fmt"

	"github.com/tortugraph/tortuga/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	order []string
	nodes map[string]*NodeBuilder
	edges []domain.Edge
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    domain.Node{ID: id},
		builder: b,
	}
	b.order = append(b.order, id)
	b.nodes[id] = nb
	return nb
}

// Start is shorthand for Add(id).Start().
func (b *Builder) Start(id string) *NodeBuilder {
	return b.Add(id).Start()
}

// Build compiles the graph into a node/edge snapshot, preserving insertion
// order. It fails when an edge references an undeclared node.
func (b *Builder) Build() ([]domain.Node, []domain.Edge, error) {
	for _, e := range b.edges {
		if _, ok := b.nodes[e.To]; !ok {
			return nil, nil, fmt.Errorf("edge %s -> %s references undeclared node", e.From, e.To)
		}
	}

	nodes := make([]domain.Node, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, b.nodes[id].node)
	}
	edges := make([]domain.Edge, len(b.edges))
	copy(edges, b.edges)
	return nodes, edges, nil
}

// Source adapts the builder to ports.GraphSource.
func (b *Builder) Snapshot() ([]domain.Node, []domain.Edge, error) {
	return b.Build()
}
