package compiler

import (
	"fmt"

	"github.com/tortugraph/tortuga/pkg/domain"
)

// Collect flattens a NodeTree into the ordered set of ExecutionPaths.
//
// The walk carries an accumulating command prefix. Branches split the walk
// (one path per root-to-leaf traversal), loop nodes splice their body
// subtree LoopCount times onto the prefix before continuing into the exit
// set, and loop-reference leaves terminate their branch contributing
// nothing. A nil tree yields no paths.
func Collect(tree *domain.NodeTree) []domain.ExecutionPath {
	if tree == nil {
		return nil
	}
	c := &collector{}
	c.walk(tree, nil)
	return c.paths
}

type collector struct {
	paths []domain.ExecutionPath
}

func (c *collector) emit(commands []domain.Command) {
	c.paths = append(c.paths, domain.ExecutionPath{
		ID:       fmt.Sprintf("path-%d", len(c.paths)+1),
		Commands: commands,
	})
}

func (c *collector) walk(t *domain.NodeTree, prefix []domain.Command) {
	if t.IsLoopReference {
		// Cycle marker: the branch ends here.
		c.emit(prefix)
		return
	}

	if t.Node.Kind == domain.KindLoop {
		c.walkLoop(t, prefix)
		return
	}

	commands := appendCloned(prefix, t.Node.Commands()...)
	if t.IsLeaf() {
		c.emit(commands)
		return
	}
	for _, child := range t.Children {
		c.walk(child, commands)
	}
}

// walkLoop unrolls a loop node. Each loop-body branch repeats its own
// subtree LoopCount times independently, then the walk continues into the
// exit set, yielding one family of paths per body branch. With no body
// branches the loop degrades to a plain pass-through.
func (c *collector) walkLoop(t *domain.NodeTree, prefix []domain.Command) {
	body, exits := t.PartitionChildren()

	if len(body) == 0 {
		if len(exits) == 0 {
			c.emit(prefix)
			return
		}
		for _, exit := range exits {
			c.walk(exit, prefix)
		}
		return
	}

	for _, branch := range body {
		unit := subtreeCommands(branch)
		commands := appendCloned(prefix)
		for i := 0; i < t.Node.LoopCount; i++ {
			commands = append(commands, unit...)
		}

		if len(exits) == 0 {
			c.emit(commands)
			continue
		}
		for _, exit := range exits {
			c.walk(exit, commands)
		}
	}
}

// subtreeCommands collects a loop body in isolation, without splitting into
// paths: the node's own commands followed by its single first child's
// subtree. Nested loops compose by recursion, repeating their own body
// LoopCount times.
func subtreeCommands(t *domain.NodeTree) []domain.Command {
	if t.IsLoopReference {
		return nil
	}

	if t.Node.Kind == domain.KindLoop {
		body, _ := t.PartitionChildren()
		var out []domain.Command
		for _, branch := range body {
			unit := subtreeCommands(branch)
			for i := 0; i < t.Node.LoopCount; i++ {
				out = append(out, unit...)
			}
		}
		return out
	}

	out := append([]domain.Command{}, t.Node.Commands()...)
	if !t.IsLeaf() {
		out = append(out, subtreeCommands(t.Children[0])...)
	}
	return out
}

// appendCloned copies the prefix before appending so sibling branches never
// share backing arrays.
func appendCloned(prefix []domain.Command, extra ...domain.Command) []domain.Command {
	out := make([]domain.Command, 0, len(prefix)+len(extra))
	out = append(out, prefix...)
	return append(out, extra...)
}
