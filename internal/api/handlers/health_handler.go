package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/watchthefall/wtf-worldcup/internal/services"
)

// HealthCheck verifica uma dependência externa
type HealthCheck func(ctx context.Context) error

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	leaderboard *services.LeaderboardService
	checks      map[string]HealthCheck
}

// NewHealthHandler cria um novo handler de health check.
// checks contém apenas as dependências configuradas (typesense, redis).
func NewHealthHandler(leaderboard *services.LeaderboardService, checks map[string]HealthCheck) *HealthHandler {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &HealthHandler{
		leaderboard: leaderboard,
		checks:      checks,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string                      `json:"status"`
	Checks    map[string]string           `json:"checks,omitempty"`
	Snapshot  *services.LeaderboardStatus `json:"snapshot,omitempty"`
	Error     string                      `json:"error,omitempty"`
	Timestamp int64                       `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Pronta quando o primeiro carregamento do snapshot terminou, mesmo que vazio
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := h.leaderboard.Status()
	response := HealthResponse{
		Status:    "ready",
		Checks:    map[string]string{"snapshot": "ok"},
		Timestamp: time.Now().Unix(),
	}

	if status.LoadedAt.IsZero() {
		response.Status = "not_ready"
		response.Checks["snapshot"] = "loading"
		response.Error = "Snapshot ainda não carregado"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica o snapshot e as dependências configuradas (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := h.leaderboard.Status()
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Snapshot:  &status,
		Timestamp: time.Now().Unix(),
	}

	if status.LastError != "" {
		response.Checks["snapshot"] = "failed"
		response.Status = "unhealthy"
		response.Error = "Último carregamento do dataset falhou"
	} else {
		response.Checks["snapshot"] = "ok"
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			response.Checks[name] = "failed"
			response.Status = "unhealthy"
			if response.Error == "" {
				response.Error = name + " connectivity check failed"
			}
			continue
		}
		response.Checks[name] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
