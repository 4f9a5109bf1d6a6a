package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchthefall/wtf-worldcup/internal/config"
	"github.com/watchthefall/wtf-worldcup/internal/services"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/source"
)

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	data := filepath.Join(dir, "worldcup.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"region": "ScotlandWTF", "points": 10}]`), 0o644))

	lb := services.NewLeaderboardService(&source.FileSource{Path: data}, nil)
	require.NoError(t, lb.Reload(context.Background()))
	console, err := services.NewConsoleService(lb, services.DirectoryFeeds(dir, 0, nil), nil)
	require.NoError(t, err)

	cfg := config.FromEnv()
	cfg.AdminToken = "s3cret"
	if mutate != nil {
		mutate(cfg)
	}
	return SetupRouter(cfg, Dependencies{Leaderboard: lb, Console: console})
}

func request(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{
		"/liveness",
		"/readiness",
		"/health",
		"/api/v1/leaderboard",
		"/api/v1/metrics",
		"/api/v1/tiers/2",
		"/api/v1/regions/scotland/tier",
		"/api/v1/console?region=scotland",
	} {
		w := request(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	assert.Equal(t, http.StatusServiceUnavailable, request(r, http.MethodGet, "/api/v1/hubs/search?q=x", nil).Code)
}

func TestAdminRoutes(t *testing.T) {
	r := newTestRouter(t, nil)
	auth := map[string]string{"Authorization": "Bearer s3cret"}

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/api/v1/admin/reload", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodPost, "/api/v1/admin/reload", auth).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, http.MethodPost, "/api/v1/admin/reload", auth).Code)
	assert.Equal(t, http.StatusServiceUnavailable, request(r, http.MethodPost, "/api/v1/admin/publish", auth).Code)

	disabled := newTestRouter(t, func(c *config.Config) { c.AdminToken = "" })
	assert.Equal(t, http.StatusForbidden, request(disabled, http.MethodPost, "/api/v1/admin/reload", auth).Code)
}

func TestCORS(t *testing.T) {
	t.Run("Wildcard", func(t *testing.T) {
		r := newTestRouter(t, nil)
		w := request(r, http.MethodOptions, "/api/v1/leaderboard", map[string]string{"Origin": "https://example.com"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Lista de origens", func(t *testing.T) {
		r := newTestRouter(t, func(c *config.Config) { c.CORSOrigins = "https://watchthefall.com, https://www.watchthefall.com" })

		w := request(r, http.MethodGet, "/liveness", map[string]string{"Origin": "https://www.watchthefall.com"})
		assert.Equal(t, "https://www.watchthefall.com", w.Header().Get("Access-Control-Allow-Origin"))

		w = request(r, http.MethodGet, "/liveness", map[string]string{"Origin": "https://evil.example"})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
