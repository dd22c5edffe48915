package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfield/memorymatch/internal/api"
	"github.com/mfield/memorymatch/internal/api/response"
	"github.com/mfield/memorymatch/internal/factory"
	"github.com/mfield/memorymatch/internal/testutil"
)

// testServer wires the router over a fresh in-memory app
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		RankController: app.RankController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) submit(t *testing.T, name string, score, finishedTime int) response.Entry {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/leaderboard", map[string]any{
		"name":         name,
		"score":        score,
		"finishedTime": finishedTime,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var entry response.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	return entry
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var health response.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestDBStatus(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/db-status", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var status response.DBStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, 1, status.ReadyState)
}

func TestSubmitEntry(t *testing.T) {
	ts := newTestServer(t)

	entry := ts.submit(t, "Ada", 1000, 30)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Ada", entry.Name)
	assert.Equal(t, 1000, entry.Score)
	assert.Equal(t, 30, entry.FinishedTime)
	assert.Equal(t, 30, entry.Time)
	assert.Equal(t, 1, entry.Rank)
}

func TestSubmitAcceptsLegacyTimeField(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/leaderboard", map[string]any{
		"name":  "Ada",
		"score": 500,
		"time":  42,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var entry response.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
	assert.Equal(t, 42, entry.FinishedTime)
}

func TestSubmitReordersLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	ada := ts.submit(t, "Ada", 1000, 30)
	assert.Equal(t, 1, ada.Rank)

	bo := ts.submit(t, "Bo", 1200, 20)
	assert.Equal(t, 1, bo.Rank)

	rr := ts.request(http.MethodGet, "/api/leaderboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []response.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Bo", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Ada", entries[1].Name)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestSubmitValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			name:    "missing name",
			body:    map[string]any{"score": 100, "finishedTime": 10},
			message: "name is required and must be 1-40 chars.",
		},
		{
			name:    "blank name",
			body:    map[string]any{"name": "   ", "score": 100, "finishedTime": 10},
			message: "name is required and must be 1-40 chars.",
		},
		{
			name:    "negative score",
			body:    map[string]any{"name": "Ada", "score": -1, "finishedTime": 10},
			message: "score must be a non-negative integer.",
		},
		{
			name:    "missing score",
			body:    map[string]any{"name": "Ada", "finishedTime": 10},
			message: "score must be a non-negative integer.",
		},
		{
			name:    "non-numeric score",
			body:    map[string]any{"name": "Ada", "score": "high", "finishedTime": 10},
			message: "score must be a non-negative integer.",
		},
		{
			name:    "negative time",
			body:    map[string]any{"name": "Ada", "score": 100, "finishedTime": -5},
			message: "finishedTime (or time) must be a non-negative integer.",
		},
		{
			name:    "missing time",
			body:    map[string]any{"name": "Ada", "score": 100},
			message: "finishedTime (or time) must be a non-negative integer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/leaderboard", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.message, errorBody(t, rr)["error"])
		})
	}
}

func TestListLimitAndOffset(t *testing.T) {
	ts := newTestServer(t)

	for i, score := range []int{500, 400, 300, 200, 100} {
		ts.submit(t, "Player", score, 10+i)
	}

	rr := ts.request(http.MethodGet, "/api/leaderboard?limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []response.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)

	// limit=0 clamps to one entry, not the default page size
	rr = ts.request(http.MethodGet, "/api/leaderboard?limit=0", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	rr = ts.request(http.MethodGet, "/api/leaderboard?limit=2&offset=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 4, entries[0].Rank)
	assert.Equal(t, 5, entries[1].Rank)
}

func TestListMalformedLimitFallsBack(t *testing.T) {
	ts := newTestServer(t)
	ts.submit(t, "Ada", 100, 10)

	rr := ts.request(http.MethodGet, "/api/leaderboard?limit=lots", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []response.Entry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestStanding(t *testing.T) {
	ts := newTestServer(t)

	ts.submit(t, "Ada", 500, 40)
	ts.submit(t, "Ada", 900, 25)
	ts.submit(t, "Bo", 700, 30)

	rr := ts.request(http.MethodGet, "/api/leaderboard/standing/ada", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var standing response.Standing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &standing))
	assert.Equal(t, "Ada", standing.Name)
	assert.Equal(t, 1, standing.Rank)
	assert.Equal(t, 900, standing.Score)
	assert.Equal(t, 2, standing.TotalPlayers)
}

func TestStandingUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)

	ts.submit(t, "Ada", 500, 40)
	ts.submit(t, "Bo", 700, 30)

	rr := ts.request(http.MethodGet, "/api/leaderboard/standing/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := errorBody(t, rr)
	assert.Equal(t, "No scores found for this player.", body["error"])
	assert.Equal(t, float64(2), body["totalPlayers"])
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)

	ts.submit(t, "Ada", 500, 40)
	ts.submit(t, "ada", 600, 35)
	ts.submit(t, "Bo", 700, 30)

	rr := ts.request(http.MethodGet, "/api/leaderboard/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats response.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.TotalPlayers)
}

func TestCORSHeadersPresent(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	req.Header.Set("Origin", "http://example.com")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
