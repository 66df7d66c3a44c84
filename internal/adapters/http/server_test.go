package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/tortugraph/tortuga/internal/adapters/http"
	"github.com/tortugraph/tortuga/pkg/domain"
)

// fakeEngine records control calls and replays canned state.
type fakeEngine struct {
	state    domain.ExecutionState
	summary  *domain.RunSummary
	actors   []domain.Actor
	calls    []string
	listener domain.StateListener
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{state: domain.StateIdle}
}

func (f *fakeEngine) Start(nodes []domain.Node, edges []domain.Edge, cfg domain.RunConfig) {
	f.calls = append(f.calls, "start")
	f.state = domain.StateRunning
}
func (f *fakeEngine) Pause()  { f.calls = append(f.calls, "pause") }
func (f *fakeEngine) Resume() { f.calls = append(f.calls, "resume") }
func (f *fakeEngine) Stop()   { f.calls = append(f.calls, "stop") }

func (f *fakeEngine) State() domain.ExecutionState { return f.state }

func (f *fakeEngine) Summary() (domain.RunSummary, bool) {
	if f.summary == nil {
		return domain.RunSummary{}, false
	}
	return *f.summary, true
}

func (f *fakeEngine) Actors() []domain.Actor { return f.actors }

func (f *fakeEngine) Subscribe(fn domain.StateListener) { f.listener = fn }

func (f *fakeEngine) WriteSVG(w io.Writer) error {
	_, err := io.WriteString(w, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	return err
}

func decodeState(t *testing.T, body io.Reader) httpadapter.StateResponse {
	t.Helper()
	var resp httpadapter.StateResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestStartRun(t *testing.T) {
	engine := newFakeEngine()
	handler := httpadapter.NewHandler(engine, nil)

	body, err := json.Marshal(httpadapter.RunRequest{
		Nodes:  []domain.Node{{ID: "start", Kind: domain.KindStart}},
		Config: domain.DefaultRunConfig(),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/runs", bytes.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"start"}, engine.calls)
	assert.Equal(t, domain.StateRunning, decodeState(t, rec.Body).State)
}

func TestStartRun_InvalidBody(t *testing.T) {
	engine := newFakeEngine()
	handler := httpadapter.NewHandler(engine, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/runs", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, engine.calls)
}

func TestControlEndpoints(t *testing.T) {
	engine := newFakeEngine()
	handler := httpadapter.NewHandler(engine, nil)

	for _, path := range []string{"/pause", "/resume", "/stop"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	assert.Equal(t, []string{"pause", "resume", "stop"}, engine.calls)
}

func TestGetState(t *testing.T) {
	engine := newFakeEngine()
	engine.state = domain.StatePaused
	engine.summary = &domain.RunSummary{Paths: 2, Commands: 16}
	engine.actors = []domain.Actor{{ID: "path-1"}}
	handler := httpadapter.NewHandler(engine, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeState(t, rec.Body)
	assert.Equal(t, domain.StatePaused, resp.State)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 2, resp.Summary.Paths)
	require.Len(t, resp.Actors, 1)
	assert.Equal(t, "path-1", resp.Actors[0].ID)
}

func TestGetTrailSVG(t *testing.T) {
	handler := httpadapter.NewHandler(newFakeEngine(), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trail.svg", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestSubscribeEvents(t *testing.T) {
	engine := newFakeEngine()
	handler := httpadapter.NewHandler(engine, nil)
	require.NotNil(t, engine.listener, "handler subscribes to state transitions")

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: idle\n", line)
	_, err = reader.ReadString('\n')
	require.NoError(t, err)

	engine.listener(domain.StateRunning)
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "data: running\n", line)
}

func TestMetricsMount(t *testing.T) {
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "tortuga_runs_started_total 0")
	})
	handler := httpadapter.NewHandler(newFakeEngine(), metricsHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "tortuga_runs_started_total")
}
