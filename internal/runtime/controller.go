package runtime

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/tortugraph/tortuga/internal/compiler"
	"github.com/tortugraph/tortuga/internal/render"
	"github.com/tortugraph/tortuga/pkg/domain"
)

// Speed levels map to the inter-step delay applied after each Move.
// Level 5 is instant.
var stepDelays = map[int]time.Duration{
	1: 600 * time.Millisecond,
	2: 300 * time.Millisecond,
	3: 150 * time.Millisecond,
	4: 50 * time.Millisecond,
	5: 0,
}

// DefaultTickInterval approximates a display refresh clock.
const DefaultTickInterval = 16 * time.Millisecond

// Controller orchestrates compile → collect → execute and owns the public
// state machine (idle → running ⇄ paused → idle). All control operations
// are safe for concurrent use; invalid transitions are no-ops.
type Controller struct {
	mu       sync.Mutex
	logger   *slog.Logger
	compiler *compiler.Compiler
	pipeline *render.Pipeline
	runtime  *Runtime

	hooks     domain.LifecycleHooks
	listeners []domain.StateListener

	state      domain.ExecutionState
	tickEvery  time.Duration
	manualTick bool

	driverQuit chan struct{}

	startedAt  time.Time
	pathCount  int
	executed   int
	summary    domain.RunSummary
	hasSummary bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets a structured logger. Default is a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) { c.hooks = hooks }
}

// WithTickInterval overrides the built-in scheduler clock.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tickEvery = d
		}
	}
}

// WithManualTick disables the built-in clock entirely. The host loop must
// call Tick itself.
func WithManualTick() Option {
	return func(c *Controller) { c.manualTick = true }
}

// NewController creates an idle controller drawing through the given
// pipeline.
func NewController(pipeline *render.Pipeline, opts ...Option) *Controller {
	c := &Controller{
		pipeline:  pipeline,
		state:     domain.StateIdle,
		tickEvery: DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.compiler = compiler.New(c.logger)
	c.runtime = NewRuntime(pipeline, c.logger)
	return c
}

// Subscribe registers a listener for state transitions. Every transition is
// published synchronously before the triggering control call returns.
func (c *Controller) Subscribe(fn domain.StateListener) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// State returns the current execution state.
func (c *Controller) State() domain.ExecutionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Summary returns the last run's summary, if any run has finished or been
// stopped since construction.
func (c *Controller) Summary() (domain.RunSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary, c.hasSummary
}

// Actors returns a snapshot of the live actors.
func (c *Controller) Actors() []domain.Actor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runtime.Actors()
}

// Start compiles the snapshot and begins executing it. Valid from idle
// only; otherwise a no-op. A snapshot without a start node compiles to
// nothing and the controller stays idle.
func (c *Controller) Start(nodes []domain.Node, edges []domain.Edge, cfg domain.RunConfig) {
	c.mu.Lock()
	if c.state != domain.StateIdle {
		c.mu.Unlock()
		c.logger.Debug("start ignored", "state", c.state)
		return
	}

	startID, ok := findStartNode(nodes)
	if !ok {
		c.mu.Unlock()
		c.logger.Warn("snapshot has no start node, nothing to run")
		return
	}

	tree, err := c.compiler.Compile(nodes, edges, startID)
	if err != nil {
		c.mu.Unlock()
		c.logger.Warn("compilation yielded no tree", "err", err)
		return
	}
	paths := compiler.Collect(tree)
	if len(paths) == 0 {
		c.mu.Unlock()
		return
	}

	if cfg.SpeedLevel == 0 {
		cfg = domain.DefaultRunConfig()
	}
	c.pipeline.SetVisibility(cfg.ShowTrail, cfg.ShowActors)
	c.runtime.SetStepDelay(stepDelayFor(cfg.SpeedLevel))
	for _, p := range paths {
		c.runtime.CreateActor(p.ID, cfg.Origin, domain.DefaultHeading, domain.DefaultColor)
		c.runtime.Enqueue(p.ID, p.Commands)
	}

	c.pathCount = len(paths)
	c.executed = 0
	c.startedAt = time.Now()
	c.state = domain.StateRunning
	if !c.manualTick {
		c.startDriverLocked()
	}
	hooks := c.hooks
	c.mu.Unlock()

	c.logger.Info("run started", "paths", len(paths))
	if hooks.OnRunStart != nil {
		hooks.OnRunStart(len(paths))
	}
	c.notify(domain.StateRunning)
}

// Pause suspends the scheduler without touching actor state or queues.
// Valid from running only.
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != domain.StateRunning {
		c.mu.Unlock()
		c.logger.Debug("pause ignored", "state", c.state)
		return
	}
	c.stopDriverLocked()
	c.state = domain.StatePaused
	c.mu.Unlock()

	c.notify(domain.StatePaused)
}

// Resume restarts the scheduler exactly where it left off. Valid from
// paused only.
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.state != domain.StatePaused {
		c.mu.Unlock()
		c.logger.Debug("resume ignored", "state", c.state)
		return
	}
	c.state = domain.StateRunning
	if !c.manualTick {
		c.startDriverLocked()
	}
	c.mu.Unlock()

	c.notify(domain.StateRunning)
}

// Reset halts the scheduler, drops all actors and queues, clears both
// render surfaces, and returns to idle. Valid from any state.
func (c *Controller) Reset() {
	c.mu.Lock()
	wasActive := c.state != domain.StateIdle
	c.stopDriverLocked()
	c.runtime.Reset()
	c.pipeline.ClearMarkers()
	if wasActive {
		c.summary = domain.RunSummary{
			Paths:    c.pathCount,
			Commands: c.executed,
			Elapsed:  time.Since(c.startedAt),
		}
		c.hasSummary = true
	}
	c.state = domain.StateIdle
	c.mu.Unlock()

	if wasActive {
		c.notify(domain.StateIdle)
	}
}

// Stop is an alias for Reset.
func (c *Controller) Stop() { c.Reset() }

// Tick advances the scheduler by one step: every live actor may execute at
// most one command, then the marker layer is redrawn. Callable by any host
// loop; the built-in clock calls it once per interval. No-op unless
// running.
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()
	if c.state != domain.StateRunning {
		c.mu.Unlock()
		return
	}

	ran := c.runtime.Tick(now)
	c.executed += len(ran)

	c.pipeline.ClearMarkers()
	for _, a := range c.runtime.Actors() {
		c.pipeline.DrawMarker(a)
	}

	var finished bool
	if !c.runtime.IsAnyActorExecuting() {
		finished = true
		c.stopDriverLocked()
		// Keep the trail: only actors and markers go away on natural
		// completion.
		c.runtime.ClearActors()
		c.pipeline.ClearMarkers()
		c.summary = domain.RunSummary{
			Paths:     c.pathCount,
			Commands:  c.executed,
			Elapsed:   time.Since(c.startedAt),
			Completed: true,
		}
		c.hasSummary = true
		c.state = domain.StateIdle
	}
	hooks := c.hooks
	summary := c.summary
	c.mu.Unlock()

	for _, ex := range ran {
		if hooks.OnCommand != nil {
			hooks.OnCommand(ex.ActorID, ex.Command)
		}
		if ex.Drained && hooks.OnActorDone != nil {
			hooks.OnActorDone(ex.ActorID)
		}
	}
	if finished {
		c.logger.Info("run completed", "commands", summary.Commands, "elapsed", summary.Elapsed)
		if hooks.OnRunEnd != nil {
			hooks.OnRunEnd(summary)
		}
		c.notify(domain.StateIdle)
	}
}

// startDriverLocked launches the built-in clock goroutine. Caller holds mu.
func (c *Controller) startDriverLocked() {
	quit := make(chan struct{})
	c.driverQuit = quit
	interval := c.tickEvery

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case now := <-ticker.C:
				c.Tick(now)
			}
		}
	}()
}

// stopDriverLocked signals the clock goroutine to exit. A tick already in
// flight still runs, but finds the state no longer running and does
// nothing. Caller holds mu.
func (c *Controller) stopDriverLocked() {
	if c.driverQuit != nil {
		close(c.driverQuit)
		c.driverQuit = nil
	}
}

func (c *Controller) notify(state domain.ExecutionState) {
	c.mu.Lock()
	listeners := make([]domain.StateListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func findStartNode(nodes []domain.Node) (string, bool) {
	for _, n := range nodes {
		if n.Kind == domain.KindStart {
			return n.ID, true
		}
	}
	return "", false
}

func stepDelayFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return stepDelays[level]
}
