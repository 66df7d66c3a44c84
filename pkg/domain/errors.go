package domain

import "errors"

// ErrStartNodeNotFound is returned by the compiler when the snapshot
// contains no start node. The controller treats it as a no-op run.
var ErrStartNodeNotFound = errors.New("start node not found")

// ErrUnknownActor is returned when a command targets an actor that is not
// registered. Should be unreachable under correct lifecycle sequencing.
var ErrUnknownActor = errors.New("unknown actor")
