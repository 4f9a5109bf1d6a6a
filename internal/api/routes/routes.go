package routes

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/api/handlers"
	"github.com/watchthefall/wtf-worldcup/internal/config"
	middlewares "github.com/watchthefall/wtf-worldcup/internal/middleware"
	"github.com/watchthefall/wtf-worldcup/internal/services"
)

// Dependencies são os serviços montados em cmd/api
type Dependencies struct {
	Logger      *zap.Logger
	Leaderboard *services.LeaderboardService
	Console     *services.ConsoleService
	// Hubs e Publisher ficam nil quando o Typesense está desabilitado
	Hubs      handlers.HubSearcher
	Publisher services.Publisher
	Checks    map[string]handlers.HealthCheck
}

func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestContext(deps.Logger))
	r.Use(middlewares.RequestTracing())
	r.Use(middlewares.RequestLogger())

	healthHandler := handlers.NewHealthHandler(deps.Leaderboard, deps.Checks)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	leaderboardHandler := handlers.NewLeaderboardHandler(deps.Leaderboard)
	consoleHandler := handlers.NewConsoleHandler(deps.Console)
	hubHandler := handlers.NewHubHandler(deps.Hubs)
	adminHandler := handlers.NewAdminHandler(deps.Leaderboard, deps.Publisher)
	reloadGuard := middlewares.NewReloadGuard(cfg.AdminReloadCooldown())

	api := r.Group("/api/v1")
	{
		api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
		api.GET("/metrics", leaderboardHandler.ListMetrics)
		api.GET("/tiers/:rank", leaderboardHandler.GetTier)
		api.GET("/regions/:region/tier", leaderboardHandler.GetRegionTier)
		api.GET("/console", consoleHandler.GetConsole)
		api.GET("/hubs/search", hubHandler.SearchHubs)

		admin := api.Group("/admin")
		admin.Use(middlewares.AdminAuth(cfg.AdminToken))
		{
			admin.POST("/reload", reloadGuard.Limit(), adminHandler.Reload)
			admin.POST("/publish", adminHandler.Publish)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware(origins string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}
	wildcard := len(allowed) == 0 || allowed["*"]

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
