package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/typesense"
)

// HubSearcher busca no diretório de hubs
type HubSearcher interface {
	Search(ctx context.Context, query string, limit int) (*typesense.SearchResult, error)
}

// HubHandler gerencia a busca no diretório de hubs
type HubHandler struct {
	index HubSearcher
}

// NewHubHandler cria o handler; index nil responde 503
func NewHubHandler(index HubSearcher) *HubHandler {
	return &HubHandler{index: index}
}

// SearchHubs godoc
// @Summary Busca no diretório de hubs
// @Description Busca textual por nome ou tagline no índice Typesense. Sem q, lista os hubs pelo rank.
// @Tags hubs
// @Produce json
// @Param q query string false "Texto da busca"
// @Param limit query int false "Resultados por página (máximo: 250)" minimum(1) maximum(250) default(20)
// @Success 200 {object} typesense.SearchResult
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string "Índice desabilitado"
// @Router /api/v1/hubs/search [get]
func (h *HubHandler) SearchHubs(c *gin.Context) {
	if h.index == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Diretório de hubs indisponível"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.index.Search(ctx, c.Query("q"), parseIntQuery(c, "limit", 20))
	if errors.Is(err, typesense.ErrIndexDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Diretório de hubs indisponível"})
		return
	}
	if err != nil {
		logger.FromContext(c.Request.Context()).Error("Erro na busca de hubs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar hubs"})
		return
	}

	c.JSON(http.StatusOK, result)
}
