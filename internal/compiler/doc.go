// Package compiler turns a node/edge snapshot into executable command
// sequences: Compile resolves the graph into a cycle-safe NodeTree, and
// Collect flattens the tree into ExecutionPaths by unrolling loops and
// exploding branches.
package compiler
