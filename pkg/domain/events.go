package domain

import "time"

// RunSummary describes a finished run. It stays readable until the next
// run replaces it.
type RunSummary struct {
	Paths     int           `json:"paths"`
	Commands  int           `json:"commands"`
	Elapsed   time.Duration `json:"elapsed"`
	Completed bool          `json:"completed"` // false when stopped early
}

// LifecycleHooks defines optional callbacks for runtime observability.
// Nil hooks are skipped. Hooks run on the scheduler goroutine and must not
// call back into the controller.
type LifecycleHooks struct {
	OnRunStart  func(paths int)
	OnCommand   func(actorID string, cmd Command)
	OnActorDone func(actorID string)
	OnRunEnd    func(summary RunSummary)
}
