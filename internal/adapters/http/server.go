// Package http exposes the engine's control operations over a REST
// surface, with an SSE stream of state transitions and the trail as SVG.
package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/tortugraph/tortuga/pkg/domain"
)

// Engine defines the interface for the Tortuga execution core.
type Engine interface {
	Start(nodes []domain.Node, edges []domain.Edge, cfg domain.RunConfig)
	Pause()
	Resume()
	Stop()
	State() domain.ExecutionState
	Summary() (domain.RunSummary, bool)
	Actors() []domain.Actor
	Subscribe(fn domain.StateListener)
	WriteSVG(w io.Writer) error
}

// Server bridges HTTP requests to the engine.
type Server struct {
	engine Engine

	mu      sync.Mutex
	clients map[chan domain.ExecutionState]struct{}
}

// NewHandler creates the HTTP handler for the engine. metricsHandler, when
// non-nil, is mounted at /metrics.
func NewHandler(engine Engine, metricsHandler http.Handler) http.Handler {
	s := &Server{
		engine:  engine,
		clients: make(map[chan domain.ExecutionState]struct{}),
	}
	engine.Subscribe(s.broadcast)

	r := chi.NewRouter()
	r.Post("/runs", s.StartRun)
	r.Post("/pause", s.Pause)
	r.Post("/resume", s.Resume)
	r.Post("/stop", s.Stop)
	r.Get("/state", s.GetState)
	r.Get("/trail.svg", s.GetTrailSVG)
	r.Get("/events", s.SubscribeEvents)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	return r
}

// RunRequest is the POST /runs body.
type RunRequest struct {
	Nodes  []domain.Node    `json:"nodes"`
	Edges  []domain.Edge    `json:"edges"`
	Config domain.RunConfig `json:"config"`
}

// StateResponse is returned by the control endpoints.
type StateResponse struct {
	State   domain.ExecutionState `json:"state"`
	Summary *domain.RunSummary    `json:"summary,omitempty"`
	Actors  []domain.Actor        `json:"actors,omitempty"`
}

// StartRun handles POST /runs.
func (s *Server) StartRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.engine.Start(body.Nodes, body.Edges, body.Config)
	s.writeState(w, http.StatusAccepted)
}

// Pause handles POST /pause.
func (s *Server) Pause(w http.ResponseWriter, r *http.Request) {
	s.engine.Pause()
	s.writeState(w, http.StatusOK)
}

// Resume handles POST /resume.
func (s *Server) Resume(w http.ResponseWriter, r *http.Request) {
	s.engine.Resume()
	s.writeState(w, http.StatusOK)
}

// Stop handles POST /stop.
func (s *Server) Stop(w http.ResponseWriter, r *http.Request) {
	s.engine.Stop()
	s.writeState(w, http.StatusOK)
}

// GetState handles GET /state.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, http.StatusOK)
}

// GetTrailSVG handles GET /trail.svg.
func (s *Server) GetTrailSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := s.engine.WriteSVG(w); err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
	}
}

// SubscribeEvents handles GET /events (SSE). Each state transition is sent
// as one event.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan domain.ExecutionState, 8)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, ch)
		s.mu.Unlock()
	}()

	fmt.Fprintf(w, "data: %s\n\n", s.engine.State())
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case state := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", state)
			flusher.Flush()
		}
	}
}

// broadcast fans a state transition out to all SSE clients. Sends are
// non-blocking: a stalled client drops events rather than stalling the
// engine's synchronous notification.
func (s *Server) broadcast(state domain.ExecutionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- state:
		default:
		}
	}
}

func (s *Server) writeState(w http.ResponseWriter, code int) {
	resp := StateResponse{State: s.engine.State(), Actors: s.engine.Actors()}
	if summary, ok := s.engine.Summary(); ok {
		resp.Summary = &summary
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Client went away; nothing useful to do.
		return
	}
}
