package domain

// Edge ports distinguish how a child hangs off its parent.
const (
	// PortDefault is the ordinary continuation port.
	PortDefault = "default"
	// PortLoop marks a loop node's body edges, as opposed to its exit edges.
	PortLoop = "loop"
)

// Edge is a directed connection between two nodes in the program graph.
type Edge struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`

	// Port is PortDefault when empty.
	Port string `json:"port,omitempty" yaml:"port,omitempty" mapstructure:"port"`
}

// IsLoopPort reports whether the edge leaves through the loop-body port.
func (e Edge) IsLoopPort() bool {
	return e.Port == PortLoop
}
