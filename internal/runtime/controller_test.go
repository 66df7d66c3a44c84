package runtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tortugraph/tortuga/internal/render"
	"github.com/tortugraph/tortuga/internal/runtime"
	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/dsl"
)

// harness wires a manually ticked controller to inspectable surfaces.
type harness struct {
	ctrl    *runtime.Controller
	trail   *render.Trail
	markers *render.MarkerLayer
	states  []domain.ExecutionState
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		trail:   render.NewTrail(),
		markers: render.NewMarkerLayer(),
	}
	h.ctrl = runtime.NewController(
		render.NewPipeline(h.trail, h.markers),
		runtime.WithManualTick(),
	)
	h.ctrl.Subscribe(func(s domain.ExecutionState) {
		h.states = append(h.states, s)
	})
	return h
}

// runAll ticks until the controller leaves the running state.
func (h *harness) runAll(t *testing.T) {
	t.Helper()
	for i := 0; h.ctrl.State() == domain.StateRunning; i++ {
		require.Less(t, i, 10000, "run did not terminate")
		h.ctrl.Tick(time.Now())
	}
}

func squareGraph(t *testing.T) ([]domain.Node, []domain.Edge) {
	t.Helper()
	b := dsl.New()
	b.Start("start").Go("square")
	b.Add("square").Loop(4).Body("side")
	b.Add("side").Move(50).Go("turn")
	b.Add("turn").Rotate(90)
	nodes, edges, err := b.Build()
	require.NoError(t, err)
	return nodes, edges
}

func instant() domain.RunConfig {
	return domain.RunConfig{SpeedLevel: 5, ShowTrail: true, ShowActors: true}
}

func TestController_RunToCompletion(t *testing.T) {
	h := newHarness(t)
	nodes, edges := squareGraph(t)

	h.ctrl.Start(nodes, edges, instant())
	assert.Equal(t, domain.StateRunning, h.ctrl.State())
	assert.Equal(t, []domain.ExecutionState{domain.StateRunning}, h.states,
		"transition published synchronously before Start returns")

	h.runAll(t)

	assert.Equal(t, domain.StateIdle, h.ctrl.State())
	assert.Equal(t, []domain.ExecutionState{domain.StateRunning, domain.StateIdle}, h.states)
	assert.Equal(t, 4, h.trail.Len(), "four sides drawn")
	assert.Empty(t, h.ctrl.Actors(), "actors cleared on natural completion")
	assert.Empty(t, h.markers.Markers(), "marker layer cleared on completion")

	summary, ok := h.ctrl.Summary()
	require.True(t, ok)
	assert.True(t, summary.Completed)
	assert.Equal(t, 1, summary.Paths)
	assert.Equal(t, 8, summary.Commands)
}

func TestController_NoStartNodeIsNoOp(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Start([]domain.Node{{ID: "m", Kind: domain.KindMove, Distance: 1}}, nil, instant())

	assert.Equal(t, domain.StateIdle, h.ctrl.State())
	assert.Empty(t, h.states, "no transition happened")
}

func TestController_InvalidTransitionsAreNoOps(t *testing.T) {
	h := newHarness(t)
	nodes, edges := squareGraph(t)

	h.ctrl.Pause()
	h.ctrl.Resume()
	assert.Equal(t, domain.StateIdle, h.ctrl.State())

	h.ctrl.Start(nodes, edges, instant())
	h.ctrl.Resume()
	assert.Equal(t, domain.StateRunning, h.ctrl.State())

	h.ctrl.Start(nodes, edges, instant()) // double-click
	assert.Equal(t, domain.StateRunning, h.ctrl.State())

	assert.Equal(t, []domain.ExecutionState{domain.StateRunning}, h.states,
		"ignored calls publish nothing")
}

func TestController_PauseResumeIsLossless(t *testing.T) {
	nodes, edges := squareGraph(t)

	// Reference run, uninterrupted.
	ref := newHarness(t)
	ref.ctrl.Start(nodes, edges, instant())
	ref.runAll(t)

	// Interrupted run: pause after every tick, resume, continue.
	sub := newHarness(t)
	sub.ctrl.Start(nodes, edges, instant())
	for i := 0; sub.ctrl.State() == domain.StateRunning; i++ {
		require.Less(t, i, 10000)
		sub.ctrl.Tick(time.Now())
		if sub.ctrl.State() == domain.StateRunning {
			sub.ctrl.Pause()
			sub.ctrl.Tick(time.Now()) // ticks while paused must do nothing
			sub.ctrl.Resume()
		}
	}

	assert.Equal(t, ref.trail.Segments(), sub.trail.Segments(),
		"pause/resume must not change the drawn trail")
}

func TestController_PauseKeepsQueuesIntact(t *testing.T) {
	h := newHarness(t)
	nodes, edges := squareGraph(t)

	h.ctrl.Start(nodes, edges, instant())
	h.ctrl.Tick(time.Now())
	drawn := h.trail.Len()

	h.ctrl.Pause()
	assert.Equal(t, domain.StatePaused, h.ctrl.State())
	h.ctrl.Tick(time.Now())
	assert.Equal(t, drawn, h.trail.Len(), "no progress while paused")

	h.ctrl.Resume()
	h.runAll(t)
	assert.Equal(t, 4, h.trail.Len())
}

func TestController_Reset(t *testing.T) {
	h := newHarness(t)
	nodes, edges := squareGraph(t)

	h.ctrl.Start(nodes, edges, instant())
	h.ctrl.Tick(time.Now())
	require.NotZero(t, h.trail.Len())

	h.ctrl.Reset()

	assert.Equal(t, domain.StateIdle, h.ctrl.State())
	assert.Empty(t, h.ctrl.Actors())
	assert.Zero(t, h.trail.Len(), "reset clears the trail")
	assert.Empty(t, h.markers.Markers())

	summary, ok := h.ctrl.Summary()
	require.True(t, ok)
	assert.False(t, summary.Completed, "stopped runs are not completed")

	// Ticks after reset must not touch the torn-down state.
	h.ctrl.Tick(time.Now())
	assert.Zero(t, h.trail.Len())
}

func TestController_BranchesGetOneActorEach(t *testing.T) {
	h := newHarness(t)

	b := dsl.New()
	b.Start("start").Go("fork")
	b.Add("fork").Move(5).Go("left").Go("right")
	b.Add("left").Rotate(90).Go("lm")
	b.Add("lm").Move(10)
	b.Add("right").Rotate(-90).Go("rm")
	b.Add("rm").Move(10)
	nodes, edges, err := b.Build()
	require.NoError(t, err)

	h.ctrl.Start(nodes, edges, instant())
	assert.Len(t, h.ctrl.Actors(), 2, "one actor per execution path")

	h.runAll(t)
	assert.Equal(t, 4, h.trail.Len(), "both actors draw their shared prefix and their own branch")
}

func TestController_StepDelayHonoredAcrossTicks(t *testing.T) {
	h := newHarness(t)

	b := dsl.New()
	b.Start("start").Go("m1")
	b.Add("m1").Move(1).Go("m2")
	b.Add("m2").Move(1)
	nodes, edges, err := b.Build()
	require.NoError(t, err)

	h.ctrl.Start(nodes, edges, domain.RunConfig{SpeedLevel: 1, ShowTrail: true, ShowActors: true})

	t0 := time.Now()
	h.ctrl.Tick(t0)
	assert.Equal(t, 1, h.trail.Len())

	h.ctrl.Tick(t0.Add(10 * time.Millisecond))
	assert.Equal(t, 1, h.trail.Len(), "second move waits out the inter-step delay")

	h.ctrl.Tick(t0.Add(time.Hour))
	assert.Equal(t, 2, h.trail.Len())
}

func TestController_HiddenTrailDrawsNothing(t *testing.T) {
	h := newHarness(t)
	nodes, edges := squareGraph(t)

	h.ctrl.Start(nodes, edges, domain.RunConfig{SpeedLevel: 5, ShowTrail: false, ShowActors: false})
	h.runAll(t)

	assert.Zero(t, h.trail.Len())
	assert.Empty(t, h.markers.Markers())
}

func TestController_LifecycleHooks(t *testing.T) {
	trail := render.NewTrail()
	markers := render.NewMarkerLayer()

	var started, commands, actorsDone int
	var ended *domain.RunSummary
	ctrl := runtime.NewController(
		render.NewPipeline(trail, markers),
		runtime.WithManualTick(),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnRunStart:  func(paths int) { started = paths },
			OnCommand:   func(actorID string, cmd domain.Command) { commands++ },
			OnActorDone: func(actorID string) { actorsDone++ },
			OnRunEnd:    func(s domain.RunSummary) { ended = &s },
		}),
	)

	b := dsl.New()
	b.Start("start").Go("m1")
	b.Add("m1").Move(10)
	nodes, edges, err := b.Build()
	require.NoError(t, err)

	ctrl.Start(nodes, edges, instant())
	for ctrl.State() == domain.StateRunning {
		ctrl.Tick(time.Now())
	}

	assert.Equal(t, 1, started)
	assert.Equal(t, 1, commands)
	assert.Equal(t, 1, actorsDone)
	require.NotNil(t, ended)
	assert.True(t, ended.Completed)
}
