package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/watchthefall/wtf-worldcup/docs"
	"github.com/watchthefall/wtf-worldcup/internal/api/handlers"
	"github.com/watchthefall/wtf-worldcup/internal/api/routes"
	"github.com/watchthefall/wtf-worldcup/internal/config"
	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/observability"
	"github.com/watchthefall/wtf-worldcup/internal/services"
	"github.com/watchthefall/wtf-worldcup/internal/typesense"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/source"
)

// @title           WTF World Cup API
// @version         4.3
// @description     Leaderboard dos hubs regionais da WTF Network, faixas de conteúdo e console regional
// @termsOfService  http://swagger.io/terms/

// @contact.name   WatchTheFall
// @contact.url    https://watchthefall.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	observability.InitTracer(cfg, zlog)
	defer observability.ShutdownTracer(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.HealthCheck{}
	cache := newSnapshotCache(ctx, cfg, zlog, checks)
	withCache := func(src source.Source) source.Source {
		return source.WithCache(src, cache, cfg.SourceCacheTTL())
	}

	dataSource, err := source.New(cfg.DataSource, cfg.FetchTimeout())
	if err != nil {
		zlog.Fatal("Fonte do dataset inválida", zap.Error(err))
	}

	opts := []services.LeaderboardOption{
		services.WithReloadInterval(cfg.ReloadInterval()),
		services.WithSiteBaseURL(cfg.SiteBaseURL),
	}
	deps := routes.Dependencies{Logger: zlog, Checks: checks}

	if index := typesense.NewClient(cfg, zlog); index != nil {
		if err := index.EnsureCollection(ctx); err != nil {
			zlog.Warn("Erro ao preparar collection de hubs", zap.Error(err))
		}
		opts = append(opts, services.WithPublisher(index))
		deps.Hubs = index
		deps.Publisher = index
		checks["typesense"] = index.Healthy
	}

	leaderboard := services.NewLeaderboardService(withCache(dataSource), zlog, opts...)
	console, err := services.NewConsoleService(leaderboard,
		services.DirectoryFeeds(cfg.ContentDataDir, cfg.FetchTimeout(), withCache), zlog)
	if err != nil {
		zlog.Fatal("Erro ao preparar feeds de conteúdo", zap.Error(err))
	}
	leaderboard.Start(ctx)

	deps.Leaderboard = leaderboard
	deps.Console = console

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           routes.SetupRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("Servidor iniciado", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Erro ao encerrar servidor", zap.Error(err))
	}
}

// newSnapshotCache usa Redis quando REDIS_ADDR está configurado e responde; senão memória
func newSnapshotCache(ctx context.Context, cfg *config.Config, zlog *zap.Logger, checks map[string]handlers.HealthCheck) source.SnapshotCache {
	client := source.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if client == nil {
		return source.NewMemoryCache(64)
	}

	cache := source.NewRedisCache(client, zlog)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		zlog.Warn("Redis indisponível, usando cache em memória", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return source.NewMemoryCache(64)
	}

	zlog.Info("Cache de documentos no Redis", zap.String("addr", cfg.RedisAddr))
	checks["redis"] = cache.Ping
	return cache
}
