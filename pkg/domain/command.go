package domain

// CommandKind tags the variant carried by a Command.
type CommandKind int

const (
	// CmdMove advances the actor by Distance along its heading.
	CmdMove CommandKind = iota
	// CmdRotate adds Angle degrees to the actor's heading.
	CmdRotate
	// CmdPen updates the actor's pen state and stroke color.
	CmdPen
)

// Command is one drawable instruction. Commands are immutable values;
// only the fields matching Kind are meaningful.
type Command struct {
	Kind     CommandKind `json:"kind"`
	Distance float64     `json:"distance,omitempty"`
	Angle    float64     `json:"angle,omitempty"`
	PenDown  bool        `json:"pen_down,omitempty"`
	Color    string      `json:"color,omitempty"`
}

// Move builds a movement command.
func Move(distance float64) Command {
	return Command{Kind: CmdMove, Distance: distance}
}

// Rotate builds a rotation command.
func Rotate(angle float64) Command {
	return Command{Kind: CmdRotate, Angle: angle}
}

// SetPen builds a pen-state command.
func SetPen(down bool, color string) Command {
	return Command{Kind: CmdPen, PenDown: down, Color: color}
}
