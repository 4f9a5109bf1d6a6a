package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/services"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/tier"
)

// LeaderboardHandler gerencia os endpoints do leaderboard e das faixas
type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

// NewLeaderboardHandler cria um novo handler do leaderboard
func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// MetricOption descreve uma opção do seletor de métricas
type MetricOption struct {
	Metric models.Metric `json:"metric"`
	Label  string        `json:"label"`
}

// GetLeaderboard godoc
// @Summary Leaderboard dos hubs regionais
// @Description Ranqueia o snapshot atual pela métrica escolhida. Métricas desconhecidas usam points.
// @Description Cada linha traz valor e variação formatados, tendência, medalha e faixa.
// @Tags leaderboard
// @Produce json
// @Param metric query string false "Métrica de ordenação" Enums(points, followers, tiktok, instagram, youtube, x) default(points)
// @Param limit query int false "Quantidade máxima de linhas (0 = todas)" minimum(0) default(0)
// @Success 200 {object} models.LeaderboardResponse
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	metric := models.ParseMetric(c.DefaultQuery("metric", string(models.MetricPoints)))
	resp := h.leaderboard.Leaderboard(metric, parseIntQuery(c, "limit", 0))
	c.JSON(http.StatusOK, resp)
}

// ListMetrics godoc
// @Summary Lista as métricas do seletor
// @Tags leaderboard
// @Produce json
// @Success 200 {array} MetricOption
// @Router /api/v1/metrics [get]
func (h *LeaderboardHandler) ListMetrics(c *gin.Context) {
	options := make([]MetricOption, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		options = append(options, MetricOption{Metric: m, Label: m.Label()})
	}
	c.JSON(http.StatusOK, options)
}

// GetTier godoc
// @Summary Política de conteúdo de um rank
// @Description Retorna a faixa (S 1-3, A 4-8, B 9-16, C 17+) e os slots por plataforma.
// @Description Rank não numérico ou menor que 1 retorna a faixa C.
// @Tags tiers
// @Produce json
// @Param rank path string true "Posição no ranking"
// @Success 200 {object} models.TierPolicy
// @Router /api/v1/tiers/{rank} [get]
func (h *LeaderboardHandler) GetTier(c *gin.Context) {
	rank, err := strconv.Atoi(c.Param("rank"))
	if err != nil {
		rank = 0
	}
	c.JSON(http.StatusOK, tier.For(rank))
}

// GetRegionTier godoc
// @Summary Faixa de uma região
// @Description Aceita chave de região (scotland), nome do hub (ScotlandWTF) ou página (scotland.html).
// @Description Regiões sem hub ranqueado recebem a faixa C.
// @Tags tiers
// @Produce json
// @Param region path string true "Região, hub ou página"
// @Success 200 {object} models.RegionTier
// @Router /api/v1/regions/{region}/tier [get]
func (h *LeaderboardHandler) GetRegionTier(c *gin.Context) {
	c.JSON(http.StatusOK, h.leaderboard.TierForRegion(c.Param("region")))
}
