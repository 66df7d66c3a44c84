/*
Package ports defines the driven ports (interfaces) for the Tortuga engine.

These interfaces decouple the core logic from external implementations,
allowing the runtime to draw on any surface and read graphs from any source.

# Key Interfaces

  - TrailSurface: Receives the persistent, append-only stroke segments.
  - MarkerSurface: Shows live actor markers; redrawn every frame.
  - GraphSource: Supplies a node/edge snapshot (e.g. from a YAML file).
*/
package ports
