package domain

// ExecutionState is the externally observable mode of the controller.
type ExecutionState string

const (
	// StateIdle means no actors and no pending work.
	StateIdle ExecutionState = "idle"
	// StateRunning means the scheduler is actively ticking.
	StateRunning ExecutionState = "running"
	// StatePaused means the scheduler is suspended with queues intact.
	StatePaused ExecutionState = "paused"
)

// StateListener receives every state transition, synchronously, before the
// triggering control call returns.
type StateListener func(ExecutionState)

// RunConfig carries the playback settings supplied alongside a snapshot.
type RunConfig struct {
	// SpeedLevel 1..5. 1 is the slowest (longest inter-step delay),
	// 5 is instant (zero delay). Out-of-range values are clamped.
	SpeedLevel int `json:"speed_level" yaml:"speed_level" mapstructure:"speed_level"`

	ShowTrail  bool `json:"show_trail" yaml:"show_trail" mapstructure:"show_trail"`
	ShowActors bool `json:"show_actors" yaml:"show_actors" mapstructure:"show_actors"`

	// Origin is where every actor starts. Zero value is the canvas origin.
	Origin Point `json:"origin" yaml:"origin" mapstructure:"origin"`
}

// DefaultRunConfig returns the settings used when the caller supplies none.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		SpeedLevel: 3,
		ShowTrail:  true,
		ShowActors: true,
	}
}
