package ports

import "github.com/tortugraph/tortuga/pkg/domain"

// GraphSource supplies the node/edge snapshot handed to the controller at
// run time. Implementations decide where the graph comes from (file,
// builder, HTTP request body); the core only sees the plain snapshot.
type GraphSource interface {
	Snapshot() (nodes []domain.Node, edges []domain.Edge, err error)
}
