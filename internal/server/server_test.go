package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/policy"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/strength"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/table"
)

const aceKingFacingRaise = `{
  "game_id": "g1",
  "small_blind": 10,
  "current_buy_in": 100,
  "minimum_raise": 20,
  "dealer": 0,
  "in_action": 1,
  "players": [
    {"id": 0, "name": "Albert", "status": "active", "stack": 1000, "bet": 100},
    {"id": 1, "name": "donkeykilla", "status": "active", "stack": 1000, "bet": 20,
     "hole_cards": [{"rank": "A", "suit": "hearts"}, {"rank": "K", "suit": "spades"}]},
    {"id": 2, "name": "Chuck", "status": "active", "stack": 1000, "bet": 0}
  ],
  "community_cards": []
}`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := quietLogger()
	p := policy.New(policy.DefaultStrategy(), policy.DefaultCharts(), strength.Heuristic{}, logger)
	ts := httptest.NewServer(New("127.0.0.1:0", p, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, req *http.Request) (int, string) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return doRequest(t, req)
}

func post(t *testing.T, url, contentType, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	return doRequest(t, req)
}

func TestHealthAndVersion(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	status, body = get(t, ts.URL+"/version")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, Version, body)
}

func TestNewWithoutLogger(t *testing.T) {
	t.Parallel()
	p := policy.New(policy.DefaultStrategy(), policy.DefaultCharts(), strength.Heuristic{}, quietLogger())
	var s *Server
	require.NotPanics(t, func() { s = New("127.0.0.1:0", p, nil) })

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)
}

func TestBet(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	status, body := post(t, ts.URL+"/bet", "application/json", aceKingFacingRaise)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "80", body)
}

func TestBetRejectsMalformedState(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	for _, doc := range []string{`{"players":`, `{"community_cards":[{"rank":"Z","suit":"hearts"}]}`} {
		status, body := post(t, ts.URL+"/bet", "application/json", doc)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "0", body)
	}
}

func TestBetWithoutActingPlayerFolds(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	status, body := post(t, ts.URL+"/bet", "application/json", `{"in_action": 3, "players": []}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0", body)
}

func TestShowdownIgnoresBody(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	for _, doc := range []string{"", "{}", "not json"} {
		status, body := post(t, ts.URL+"/showdown", "application/json", doc)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "OK", body)
	}
}

func TestLegacyActions(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	tests := []struct {
		name   string
		form   url.Values
		status int
		want   string
	}{
		{"bet request", url.Values{"action": {"bet_request"}, "game_state": {aceKingFacingRaise}}, http.StatusOK, "80"},
		{"missing game state", url.Values{"action": {"bet_request"}}, http.StatusOK, "Missing game_state!"},
		{"bad game state", url.Values{"action": {"bet_request"}, "game_state": {"{"}}, http.StatusBadRequest, "0"},
		{"showdown", url.Values{"action": {"showdown"}}, http.StatusOK, "OK"},
		{"version", url.Values{"action": {"version"}}, http.StatusOK, Version},
		{"unknown", url.Values{"action": {"check"}}, http.StatusOK, "Unknown action 'check'!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, body := post(t, ts.URL+"/", "application/x-www-form-urlencoded", tt.form.Encode())
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, body)
		})
	}
}

type panicky struct{}

func (panicky) Decide(context.Context, table.GameState) int { panic("boom") }

func TestRecovererTurnsPanicsInto500(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(New("127.0.0.1:0", panicky{}, quietLogger()).Handler())
	t.Cleanup(ts.Close)

	status, _ := post(t, ts.URL+"/bet", "application/json", aceKingFacingRaise)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := quietLogger()
	p := policy.New(policy.DefaultStrategy(), nil, nil, logger)
	s := New(ln.Addr().String(), p, logger, WithShutdownTimeout(time.Second), WithVersion("test"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "test"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
