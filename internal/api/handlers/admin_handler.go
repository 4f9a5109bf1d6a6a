package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/services"
)

// AdminHandler gerencia as operações administrativas do snapshot
type AdminHandler struct {
	leaderboard *services.LeaderboardService
	publisher   services.Publisher
}

// NewAdminHandler cria o handler; publisher nil desabilita a republicação
func NewAdminHandler(leaderboard *services.LeaderboardService, publisher services.Publisher) *AdminHandler {
	return &AdminHandler{leaderboard: leaderboard, publisher: publisher}
}

// Reload godoc
// @Summary Recarrega o snapshot do leaderboard
// @Description Busca o worldcup.json na origem, ignorando o cache de documentos. Falha no fetch deixa o snapshot vazio.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.LeaderboardStatus
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string "Recarga recente"
// @Failure 502 {object} map[string]interface{} "Fonte indisponível"
// @Router /api/v1/admin/reload [post]
func (h *AdminHandler) Reload(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := h.leaderboard.ForceReload(ctx); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Erro ao carregar dataset: " + err.Error(),
			"status": h.leaderboard.Status(),
		})
		return
	}

	logger.FromContext(c.Request.Context()).Info("Snapshot recarregado manualmente")
	c.JSON(http.StatusOK, h.leaderboard.Status())
}

// Publish godoc
// @Summary Republica os hubs no índice
// @Description Envia o ranking por points do snapshot atual para o Typesense.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string "Índice desabilitado"
// @Router /api/v1/admin/publish [post]
func (h *AdminHandler) Publish(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Diretório de hubs indisponível"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	entries := h.leaderboard.Ranked(models.MetricPoints)
	if err := h.publisher.Publish(ctx, entries); err != nil {
		logger.FromContext(c.Request.Context()).Error("Erro ao republicar hubs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao publicar hubs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": len(entries)})
}
