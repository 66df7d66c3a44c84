package dsl

import "github.com/tortugraph/tortuga/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Start marks the node as the program entry point.
func (n *NodeBuilder) Start() *NodeBuilder {
	n.node.Kind = domain.KindStart
	return n
}

// Move makes this a movement node advancing by distance.
func (n *NodeBuilder) Move(distance float64) *NodeBuilder {
	n.node.Kind = domain.KindMove
	n.node.Distance = distance
	return n
}

// Rotate makes this a rotation node turning by angle degrees.
func (n *NodeBuilder) Rotate(angle float64) *NodeBuilder {
	n.node.Kind = domain.KindRotate
	n.node.Angle = angle
	return n
}

// Pen makes this a pen node setting pen state and stroke color.
func (n *NodeBuilder) Pen(down bool, color string) *NodeBuilder {
	n.node.Kind = domain.KindPen
	n.node.PenDown = down
	n.node.Color = color
	return n
}

// Loop makes this a loop node repeating its body count times.
func (n *NodeBuilder) Loop(count int) *NodeBuilder {
	n.node.Kind = domain.KindLoop
	n.node.LoopCount = count
	return n
}

// Muted suppresses the node's commands without pruning its subtree.
func (n *NodeBuilder) Muted() *NodeBuilder {
	n.node.Muted = true
	return n
}

// Go adds an outgoing edge through the default port.
func (n *NodeBuilder) Go(to string) *NodeBuilder {
	n.builder.edges = append(n.builder.edges, domain.Edge{
		From: n.node.ID,
		To:   to,
		Port: domain.PortDefault,
	})
	return n
}

// Body adds an outgoing edge through the loop port. Only meaningful on
// loop nodes.
func (n *NodeBuilder) Body(to string) *NodeBuilder {
	n.builder.edges = append(n.builder.edges, domain.Edge{
		From: n.node.ID,
		To:   to,
		Port: domain.PortLoop,
	})
	return n
}
