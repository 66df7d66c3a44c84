// Package metrics exposes prometheus collectors for the engine, wired in
// through lifecycle hooks so the core stays free of metric concerns.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tortugraph/tortuga/pkg/domain"
)

// Recorder bundles the engine's prometheus collectors.
type Recorder struct {
	RunsStarted      prometheus.Counter
	RunsCompleted    prometheus.Counter
	CommandsExecuted *prometheus.CounterVec
	ActorsLive       prometheus.Gauge
	RunDuration      prometheus.Histogram
}

// NewRecorder creates and registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tortuga_runs_started_total",
			Help: "Total number of runs started",
		}),
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tortuga_runs_completed_total",
			Help: "Total number of runs that reached natural completion",
		}),
		CommandsExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tortuga_commands_executed_total",
			Help: "Total number of commands executed, by kind",
		}, []string{"kind"}),
		ActorsLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tortuga_actors_live",
			Help: "Number of actors currently executing",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tortuga_run_duration_seconds",
			Help:    "Wall time of completed runs",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}
	reg.MustRegister(r.RunsStarted, r.RunsCompleted, r.CommandsExecuted, r.ActorsLive, r.RunDuration)
	return r
}

// Hooks returns lifecycle hooks that feed the collectors.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(paths int) {
			r.RunsStarted.Inc()
			r.ActorsLive.Set(float64(paths))
		},
		OnCommand: func(actorID string, cmd domain.Command) {
			r.CommandsExecuted.WithLabelValues(kindLabel(cmd.Kind)).Inc()
		},
		OnActorDone: func(actorID string) {
			r.ActorsLive.Dec()
		},
		OnRunEnd: func(summary domain.RunSummary) {
			if summary.Completed {
				r.RunsCompleted.Inc()
			}
			r.ActorsLive.Set(0)
			r.RunDuration.Observe(summary.Elapsed.Seconds())
		},
	}
}

func kindLabel(k domain.CommandKind) string {
	switch k {
	case domain.CmdMove:
		return "move"
	case domain.CmdRotate:
		return "rotate"
	case domain.CmdPen:
		return "pen"
	default:
		return "unknown"
	}
}
