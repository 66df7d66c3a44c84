package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// Runtime owns the actors and their FIFO command queues, and executes
// commands against the trail surface. It is not safe for concurrent use;
// the Controller serializes access.
type Runtime struct {
	logger *slog.Logger
	trail  ports.TrailSurface

	// order preserves registration order so every tick iterates actors
	// deterministically.
	order  []string
	actors map[string]*actorState

	// stepDelay is the pause applied after a Move before that actor's next
	// command may be dequeued. Other actors are unaffected.
	stepDelay time.Duration
}

type actorState struct {
	actor domain.Actor
	queue []domain.Command

	// readyAt gates dequeuing: the actor's next command may not run before
	// this instant. Zero means ready.
	readyAt time.Time
}

// NewRuntime creates an empty runtime drawing on the given trail surface.
func NewRuntime(trail ports.TrailSurface, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runtime{
		logger: logger,
		trail:  trail,
		actors: make(map[string]*actorState),
	}
}

// SetStepDelay configures the inter-command delay applied after Move.
func (r *Runtime) SetStepDelay(d time.Duration) {
	r.stepDelay = d
}

// CreateActor registers a new actor with an empty queue. Recreating an
// existing id resets that actor.
func (r *Runtime) CreateActor(id string, position domain.Point, heading float64, color string) {
	if _, exists := r.actors[id]; !exists {
		r.order = append(r.order, id)
	}
	r.actors[id] = &actorState{
		actor: domain.Actor{
			ID:          id,
			Position:    position,
			Heading:     heading,
			PenDown:     true,
			StrokeColor: color,
			LineWidth:   domain.DefaultLineWidth,
		},
	}
}

// Enqueue appends commands to the actor's queue. Unknown ids are a no-op.
func (r *Runtime) Enqueue(id string, commands []domain.Command) {
	st, ok := r.actors[id]
	if !ok {
		r.logger.Warn("enqueue for unknown actor", "actorID", id)
		return
	}
	st.queue = append(st.queue, commands...)
}

// ExecuteOne dequeues and applies the actor's head command, honoring the
// actor's readiness gate. It reports whether a command ran. Executing for
// an unknown actor is a defensive no-op.
func (r *Runtime) ExecuteOne(id string, now time.Time) bool {
	st, ok := r.actors[id]
	if !ok {
		r.logger.Warn("execute for unknown actor", "actorID", id)
		return false
	}
	if len(st.queue) == 0 || now.Before(st.readyAt) {
		return false
	}

	cmd := st.queue[0]
	st.queue = st.queue[1:]
	r.apply(st, cmd, now)
	return true
}

// Tick advances every actor by at most one command, in registration order.
// It returns the commands executed this tick.
func (r *Runtime) Tick(now time.Time) []Executed {
	var ran []Executed
	for _, id := range r.order {
		st := r.actors[id]
		if len(st.queue) == 0 || now.Before(st.readyAt) {
			continue
		}
		cmd := st.queue[0]
		st.queue = st.queue[1:]
		r.apply(st, cmd, now)
		ran = append(ran, Executed{ActorID: id, Command: cmd, Drained: len(st.queue) == 0})
	}
	return ran
}

// Executed records one command applied during a tick.
type Executed struct {
	ActorID string
	Command domain.Command
	Drained bool
}

func (r *Runtime) apply(st *actorState, cmd domain.Command, now time.Time) {
	switch cmd.Kind {
	case domain.CmdMove:
		from := st.actor.Position
		to := st.actor.Advance(cmd.Distance)
		if st.actor.PenDown {
			r.trail.DrawSegment(from, to, st.actor.StrokeColor, st.actor.LineWidth)
		}
		st.actor.Position = to
		if r.stepDelay > 0 {
			st.readyAt = now.Add(r.stepDelay)
		}
	case domain.CmdRotate:
		st.actor.Heading += cmd.Angle
	case domain.CmdPen:
		st.actor.PenDown = cmd.PenDown
		if cmd.Color != "" {
			st.actor.StrokeColor = cmd.Color
		}
	}
}

// IsAnyActorExecuting reports whether any queue still holds commands.
func (r *Runtime) IsAnyActorExecuting() bool {
	for _, st := range r.actors {
		if len(st.queue) > 0 {
			return true
		}
	}
	return false
}

// Actors returns the live actors in registration order, for marker drawing.
func (r *Runtime) Actors() []domain.Actor {
	out := make([]domain.Actor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.actors[id].actor)
	}
	return out
}

// ActorCount returns the number of registered actors.
func (r *Runtime) ActorCount() int {
	return len(r.actors)
}

// ClearActors drops all actors and queues, leaving the trail untouched.
func (r *Runtime) ClearActors() {
	r.order = nil
	r.actors = make(map[string]*actorState)
}

// Reset drops all actors and queues and clears the trail surface.
func (r *Runtime) Reset() {
	r.ClearActors()
	r.trail.Clear()
}
