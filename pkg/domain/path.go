package domain

// ExecutionPath is one fully resolved, loop-unrolled command sequence
// derived from the graph. Paths are created once per compile and never
// mutated afterwards.
type ExecutionPath struct {
	ID       string    `json:"id"`
	Commands []Command `json:"commands"`
}
