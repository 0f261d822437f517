package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/draftboard/internal/api"
	"github.com/courtside/draftboard/internal/api/response"
	"github.com/courtside/draftboard/internal/factory"
	"github.com/courtside/draftboard/internal/services/roster"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		SessionService:   app.SessionService,
		RosterController: app.RosterController,
		DraftController:  app.DraftController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createSession creates a session and returns its token
func (ts *testServer) createSession(t *testing.T) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(resp.CreatedAt))
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodDelete, "/api/v1/sessions/current", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// The token no longer authenticates
	rr = ts.request(http.MethodGet, "/api/v1/players", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListPlayersRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Players
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.Season)
	assert.Equal(t, "live", resp.Source)
	assert.Greater(t, resp.Count, 0)
	require.NotEmpty(t, resp.Players)

	// Rows are ranked by score
	for i := 1; i < len(resp.Players); i++ {
		assert.GreaterOrEqual(t, resp.Players[i-1].FPPG, resp.Players[i].FPPG)
	}
}

func TestListPlayersWithFilters(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/players?position=C", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Players
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Players)
	for _, p := range resp.Players {
		assert.Equal(t, "C", p.Position)
	}

	rr = ts.request(http.MethodGet, "/api/v1/players?q="+url.QueryEscape("jok"), nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Players, 1)
	assert.Equal(t, "Nikola Jokic", resp.Players[0].Name)
}

func TestListPlayersRejectsUnknownPosition(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/players?position=QB", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestRefresh(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodPost, "/api/v1/refresh", map[string]int{"season": 2023}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Refresh
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2023, resp.Season)
	assert.Equal(t, "live", resp.Source)
	assert.Greater(t, resp.PlayerCount, 0)
}

func TestRefreshWithEmptyBodyUsesCurrentSeason(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodPost, "/api/v1/refresh", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Refresh
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.Season)
}

func TestDraftLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	// Load the dataset
	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	// Initially empty
	rr = ts.request(http.MethodGet, "/api/v1/draft", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var draft response.Draft
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, 0, draft.Count)

	// Mark
	rr = ts.request(http.MethodPut, "/api/v1/draft/"+url.PathEscape("Nikola Jokic"), nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, []string{"Nikola Jokic"}, draft.Players)

	// Drafted player is excluded from the listing
	var players response.Players
	rr = ts.request(http.MethodGet, "/api/v1/players", nil, token)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	for _, p := range players.Players {
		assert.NotEqual(t, "Nikola Jokic", p.Name)
	}
	assert.Equal(t, 1, players.DraftedCount)

	// Unmark
	rr = ts.request(http.MethodDelete, "/api/v1/draft/"+url.PathEscape("Nikola Jokic"), nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, 0, draft.Count)
}

func TestDraftUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	// Load the dataset
	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPut, "/api/v1/draft/"+url.PathEscape("Michael Jordan"), nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestClearDraft(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	ts.request(http.MethodPut, "/api/v1/draft/"+url.PathEscape("Nikola Jokic"), nil, token)
	ts.request(http.MethodPut, "/api/v1/draft/"+url.PathEscape("Luka Doncic"), nil, token)

	rr = ts.request(http.MethodDelete, "/api/v1/draft", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	var draft response.Draft
	rr = ts.request(http.MethodGet, "/api/v1/draft", nil, token)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, 0, draft.Count)
}

func TestDraftIsSessionScoped(t *testing.T) {
	ts := newTestServer(t)
	first := ts.createSession(t)
	second := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, first)
	require.Equal(t, http.StatusOK, rr.Code)

	ts.request(http.MethodPut, "/api/v1/draft/"+url.PathEscape("Nikola Jokic"), nil, first)

	var draft response.Draft
	rr = ts.request(http.MethodGet, "/api/v1/draft", nil, second)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, 0, draft.Count)
}

func TestSummary(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/summary", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var summary roster.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Greater(t, summary.PlayerCount, 0)
	assert.Greater(t, summary.MeanScore, 0.0)
	assert.NotEmpty(t, summary.TopPlayer)
	assert.NotEmpty(t, summary.ByPosition)
}

func TestExportCSV(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/export?format=csv", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Player,Team,Position,GP")
}

func TestExportUnknownFormat(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	rr := ts.request(http.MethodGet, "/api/v1/export?format=xml", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_FORMAT")
}

func TestProviderFailureFallsBackToSample(t *testing.T) {
	ts := newTestServer(t)
	token := ts.createSession(t)

	ts.app.MockProvider.Source = "sample"

	rr := ts.request(http.MethodPost, "/api/v1/refresh", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Refresh
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "sample", resp.Source)
}
