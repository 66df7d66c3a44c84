/*
Package dsl provides a fluent builder for programmatically constructing
Tortuga program graphs.

It lets callers define node/edge snapshots in type-safe Go instead of
external YAML files, which is particularly useful for dynamic graph
generation and unit tests.

Example usage:

	b := dsl.New()

	b.Start("start").Go("square")
	b.Add("square").Loop(4).Body("side")
	b.Add("side").Move(50).Go("turn")
	b.Add("turn").Rotate(90)

	nodes, edges, err := b.Build()
	// ... hand the snapshot to the engine's Start.

The builder also satisfies ports.GraphSource via Snapshot.
*/
package dsl
