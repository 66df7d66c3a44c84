package tortuga

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/tortugraph/tortuga/internal/render"
	"github.com/tortugraph/tortuga/internal/runtime"
	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// Version is the release version, overridable at build time via ldflags.
var Version = "dev"

// ErrCustomSurfaces is returned by the built-in views when the default
// trail surface was replaced through WithSurfaces.
var ErrCustomSurfaces = errors.New("built-in views unavailable with custom surfaces")

// Engine is the high-level entry point for the Tortuga library.
// It wraps the internal controller and provides a simplified API for
// consumers: hand it a node/edge snapshot, control playback, and read the
// trail back as SVG or terminal output.
type Engine struct {
	ctrl    *runtime.Controller
	trail   *render.Trail
	markers *render.MarkerLayer
	logger  *slog.Logger

	mu      sync.Mutex
	runDone chan struct{}
}

type engineConfig struct {
	logger       *slog.Logger
	hooks        domain.LifecycleHooks
	tickInterval time.Duration
	manualTick   bool
	trail        ports.TrailSurface
	markers      ports.MarkerSurface
}

// Option defines a functional option for configuring the Engine.
type Option func(*engineConfig)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *engineConfig) { c.hooks = hooks }
}

// WithTickInterval overrides the built-in scheduler clock interval.
func WithTickInterval(d time.Duration) Option {
	return func(c *engineConfig) { c.tickInterval = d }
}

// WithManualTick disables the built-in clock. The host loop drives the
// scheduler by calling Tick.
func WithManualTick() Option {
	return func(c *engineConfig) { c.manualTick = true }
}

// WithSurfaces injects custom drawing surfaces, bypassing the default
// in-memory trail and marker layer. The built-in SVG and terminal views
// only work with the defaults.
func WithSurfaces(trail ports.TrailSurface, markers ports.MarkerSurface) Option {
	return func(c *engineConfig) {
		c.trail = trail
		c.markers = markers
	}
}

// New initializes a new Tortuga Engine.
func New(opts ...Option) *Engine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng := &Engine{logger: cfg.logger}

	trailSurface := cfg.trail
	markerSurface := cfg.markers
	if trailSurface == nil {
		eng.trail = render.NewTrail()
		trailSurface = eng.trail
	}
	if markerSurface == nil {
		eng.markers = render.NewMarkerLayer()
		markerSurface = eng.markers
	}

	ctrlOpts := []runtime.Option{
		runtime.WithLogger(cfg.logger),
		runtime.WithLifecycleHooks(cfg.hooks),
	}
	if cfg.tickInterval > 0 {
		ctrlOpts = append(ctrlOpts, runtime.WithTickInterval(cfg.tickInterval))
	}
	if cfg.manualTick {
		ctrlOpts = append(ctrlOpts, runtime.WithManualTick())
	}

	eng.ctrl = runtime.NewController(render.NewPipeline(trailSurface, markerSurface), ctrlOpts...)
	eng.ctrl.Subscribe(eng.trackRun)
	return eng
}

// Start compiles the snapshot and begins executing it. A no-op unless the
// engine is idle; a snapshot without a start node leaves it idle.
func (e *Engine) Start(nodes []domain.Node, edges []domain.Edge, cfg domain.RunConfig) {
	e.ctrl.Start(nodes, edges, cfg)
}

// StartFrom reads a snapshot from src and starts it.
func (e *Engine) StartFrom(src ports.GraphSource, cfg domain.RunConfig) error {
	nodes, edges, err := src.Snapshot()
	if err != nil {
		return err
	}
	e.Start(nodes, edges, cfg)
	return nil
}

// Pause suspends playback. Valid while running.
func (e *Engine) Pause() { e.ctrl.Pause() }

// Resume continues playback where it left off. Valid while paused.
func (e *Engine) Resume() { e.ctrl.Resume() }

// Stop halts playback, clears all actors and both surfaces, and returns to
// idle. Valid from any state.
func (e *Engine) Stop() { e.ctrl.Stop() }

// Reset is an alias for Stop.
func (e *Engine) Reset() { e.ctrl.Reset() }

// State returns the current execution state.
func (e *Engine) State() domain.ExecutionState { return e.ctrl.State() }

// Subscribe registers a listener for state transitions. Transitions are
// published synchronously before the triggering control call returns.
func (e *Engine) Subscribe(fn domain.StateListener) { e.ctrl.Subscribe(fn) }

// Tick advances the scheduler by one step. Only useful with WithManualTick;
// with the built-in clock it is called automatically.
func (e *Engine) Tick(now time.Time) { e.ctrl.Tick(now) }

// Summary returns the last finished run's summary, if any.
func (e *Engine) Summary() (domain.RunSummary, bool) { return e.ctrl.Summary() }

// Actors returns a snapshot of the live actors.
func (e *Engine) Actors() []domain.Actor { return e.ctrl.Actors() }

// Wait blocks until the current run finishes or ctx is done. It returns
// immediately when the engine is idle.
func (e *Engine) Wait(ctx context.Context) error {
	e.mu.Lock()
	done := e.runDone
	e.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// WriteSVG renders the trail as an SVG document.
func (e *Engine) WriteSVG(w io.Writer) error {
	if e.trail == nil {
		return ErrCustomSurfaces
	}
	return render.WriteSVG(w, e.trail)
}

// RenderTerminal prints the trail as colored cells sized to the terminal.
func (e *Engine) RenderTerminal(w io.Writer) error {
	if e.trail == nil {
		return ErrCustomSurfaces
	}
	return render.NewTermView().Render(w, e.trail)
}

// TrailSize returns the number of strokes on the default trail surface.
func (e *Engine) TrailSize() int {
	if e.trail == nil {
		return 0
	}
	return e.trail.Len()
}

// trackRun keeps the Wait channel in sync with the state machine.
func (e *Engine) trackRun(state domain.ExecutionState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch state {
	case domain.StateRunning:
		if e.runDone == nil {
			e.runDone = make(chan struct{})
		}
	case domain.StateIdle:
		if e.runDone != nil {
			close(e.runDone)
			e.runDone = nil
		}
	}
}
