/*
Package domain contains the core domain models for the Tortuga engine.

It defines the fundamental entities of the compile-and-animate pipeline:
graph snapshots, their resolved tree form, the flattened command sequences,
and the animated actors that replay them. This package is kept pure and free
of external dependencies like I/O or rendering, following Hexagonal
Architecture principles.

# Key Entities

  - Node / Edge: One snapshot unit of the user's program graph.
  - NodeTree: The rooted, cycle-safe resolution of the graph.
  - Command: A single drawable instruction (Move, Rotate, SetPen).
  - ExecutionPath: One loop-unrolled, branch-specific command sequence.
  - Actor: A turtle instance replaying one ExecutionPath.
  - ExecutionState: The controller's observable mode (idle/running/paused).
*/
package domain
