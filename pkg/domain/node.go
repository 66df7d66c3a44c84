package domain

// NodeKind constants define the closed vocabulary of program nodes.
const (
	// KindStart marks the entry point of a program. It emits no commands.
	KindStart = "start"
	// KindMove advances the actor by Distance along its current heading.
	KindMove = "move"
	// KindRotate turns the actor by Angle degrees.
	KindRotate = "rotate"
	// KindPen raises or lowers the pen and sets the stroke color.
	KindPen = "pen"
	// KindLoop repeats its body subtree LoopCount times before continuing.
	KindLoop = "loop"
)

// Node represents one unit of the program graph, snapshotted at run time.
// Only the parameter fields matching Kind are meaningful; the rest stay at
// their zero values. Kinds outside the recognized vocabulary are inert:
// they emit no commands but their children are still traversed.
type Node struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Kind string `json:"type" yaml:"type" mapstructure:"type"`

	// Muted suppresses this node's commands without pruning its subtree.
	Muted bool `json:"muted,omitempty" yaml:"muted,omitempty" mapstructure:"muted"`

	// Parameters (Kind-dependent)
	Distance  float64 `json:"distance,omitempty" yaml:"distance,omitempty" mapstructure:"distance"`
	Angle     float64 `json:"angle,omitempty" yaml:"angle,omitempty" mapstructure:"angle"`
	PenDown   bool    `json:"pen_down,omitempty" yaml:"pen_down,omitempty" mapstructure:"pen_down"`
	Color     string  `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`
	LoopCount int     `json:"loop_count,omitempty" yaml:"loop_count,omitempty" mapstructure:"loop_count"`
}

// Commands resolves the node into its drawable instructions.
// Muted nodes and structural kinds (start, loop) contribute nothing.
func (n Node) Commands() []Command {
	if n.Muted {
		return nil
	}
	switch n.Kind {
	case KindMove:
		return []Command{Move(n.Distance)}
	case KindRotate:
		return []Command{Rotate(n.Angle)}
	case KindPen:
		return []Command{SetPen(n.PenDown, n.Color)}
	case KindStart, KindLoop:
		return nil
	default:
		// Unrecognized kinds degrade to no-op nodes.
		return nil
	}
}
