package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/watchthefall/wtf-worldcup/internal/services"
)

// ConsoleHandler gerencia o endpoint do console de conteúdo
type ConsoleHandler struct {
	console *services.ConsoleService
}

// NewConsoleHandler cria um novo handler do console
func NewConsoleHandler(console *services.ConsoleService) *ConsoleHandler {
	return &ConsoleHandler{console: console}
}

// GetConsole godoc
// @Summary Layout do console de conteúdo regional
// @Description Resolve a região pela página (path) ou chave (region), aplica a faixa do hub e
// @Description distribui os itens dos feeds em slots de conteúdo, anúncio e placeholder.
// @Tags console
// @Produce json
// @Param path query string false "Caminho da página (ex: /regional/pages/scotland.html)"
// @Param region query string false "Chave da região (ex: scotland)"
// @Success 200 {object} models.ConsoleResponse
// @Failure 400 {object} map[string]string "path e region ausentes"
// @Router /api/v1/console [get]
func (h *ConsoleHandler) GetConsole(c *gin.Context) {
	target := c.Query("path")
	if target == "" {
		target = c.Query("region")
	}
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetro ausente",
			"details": "Informe path ou region",
		})
		return
	}

	c.JSON(http.StatusOK, h.console.Console(c.Request.Context(), target))
}
