package middlewares

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// ReloadGuard limita recargas manuais do snapshot a uma por janela de cooldown
type ReloadGuard struct {
	mu       sync.Mutex
	last     time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewReloadGuard cria o guard; cooldown <= 0 não limita
func NewReloadGuard(cooldown time.Duration) *ReloadGuard {
	return &ReloadGuard{cooldown: cooldown, now: time.Now}
}

// Limit retorna um handler Gin que responde 429 dentro do cooldown.
// Recargas que terminam em 5xx devolvem a janela, liberando nova tentativa.
func (g *ReloadGuard) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		slot, wait, ok := g.acquire()
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Recarga recente",
				"message": "O snapshot foi recarregado há pouco tempo. Tente novamente em alguns segundos.",
				"code":    "RELOAD_COOLDOWN",
			})
			c.Abort()
			return
		}
		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			g.release(slot)
		}
	}
}

// reservation guarda o instante reservado e o anterior, para desfazer a reserva
type reservation struct {
	at, previous time.Time
}

func (g *ReloadGuard) acquire() (reservation, time.Duration, bool) {
	if g.cooldown <= 0 {
		return reservation{}, 0, true
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if !g.last.IsZero() {
		if elapsed := now.Sub(g.last); elapsed < g.cooldown {
			return reservation{}, g.cooldown - elapsed, false
		}
	}
	slot := reservation{at: now, previous: g.last}
	g.last = now
	return slot, 0, true
}

func (g *ReloadGuard) release(slot reservation) {
	if slot.at.IsZero() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.last.Equal(slot.at) {
		g.last = slot.previous
	}
}
