package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/observability"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/region"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/source"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/tier"
)

// Arquivos de feed lidos do diretório de conteúdo
const (
	FeedContent = "content_feeds.json"
	FeedYouTube = "youtube.json"
	FeedX       = "x.json"
	FeedThreads = "threads.json"
)

var tiktokVideoID = regexp.MustCompile(`video/(\d+)`)

// FeedOpener abre a fonte de um arquivo de feed
type FeedOpener func(name string) (source.Source, error)

// DirectoryFeeds abre os feeds dentro de um diretório local ou URL base
func DirectoryFeeds(base string, timeout time.Duration, wrap func(source.Source) source.Source) FeedOpener {
	return func(name string) (source.Source, error) {
		src, err := source.New(source.Join(base, name), timeout)
		if err != nil {
			return nil, err
		}
		if wrap != nil {
			src = wrap(src)
		}
		return src, nil
	}
}

// ConsoleService monta o console de conteúdo regional de acordo com a faixa do hub
type ConsoleService struct {
	leaderboard *LeaderboardService
	feeds       map[string]source.Source
	log         *zap.Logger
}

// NewConsoleService prepara as fontes dos quatro feeds
func NewConsoleService(leaderboard *LeaderboardService, open FeedOpener, log *zap.Logger) (*ConsoleService, error) {
	s := &ConsoleService{
		leaderboard: leaderboard,
		feeds:       make(map[string]source.Source, 4),
		log:         logger.OrNop(log),
	}
	for _, name := range []string{FeedContent, FeedYouTube, FeedX, FeedThreads} {
		src, err := open(name)
		if err != nil {
			return nil, err
		}
		s.feeds[name] = src
	}
	return s, nil
}

// regionFeeds são os itens brutos de uma região por plataforma
type regionFeeds map[models.Platform][]models.ContentItem

// Console retorna o layout do console para uma página ou chave de região
func (s *ConsoleService) Console(ctx context.Context, pageOrRegion string) *models.ConsoleResponse {
	ctx, span := observability.Tracer("services").Start(ctx, "console.build")
	defer span.End()

	key := region.Resolve(pageOrRegion)
	if key == "" {
		key = region.Global
	}
	span.SetAttributes(attribute.String("region", key))

	regionTier := s.leaderboard.TierForRegion(key)
	feeds := s.load(ctx, key)

	resp := &models.ConsoleResponse{
		Region:    key,
		Tier:      regionTier,
		Platforms: []models.PlatformConsole{},
	}
	for _, p := range models.ContentPlatforms {
		items := feeds[p]
		if len(items) == 0 {
			continue
		}
		slots, ok := regionTier.Policy.Platforms[p]
		if !ok {
			continue
		}
		layout := tier.Allocate(items, slots)
		resp.Platforms = append(resp.Platforms, models.PlatformConsole{
			Platform:  p,
			Name:      p.Name(),
			ItemCount: min(len(items), slots.ContentCount),
			Slots:     layout,
		})
	}

	resp.Empty = len(resp.Platforms) == 0
	if !resp.Empty {
		resp.DefaultPlatform = resp.Platforms[0].Platform
	}

	s.log.Debug("Console de conteúdo montado",
		zap.String("region", key),
		zap.String("tier", string(regionTier.Policy.Tier)),
		zap.Int("platforms", len(resp.Platforms)))
	return resp
}

// load busca os quatro feeds em paralelo; feeds ausentes ou inválidos viram listas vazias
func (s *ConsoleService) load(ctx context.Context, key string) regionFeeds {
	var content, youtube, x, threads []byte

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(name string, dst *[]byte) {
		g.Go(func() error {
			data, err := s.feeds[name].Fetch(gctx)
			if err != nil {
				s.log.Warn("Feed de conteúdo indisponível", zap.String("feed", name), zap.Error(err))
				return nil
			}
			*dst = data
			return nil
		})
	}
	fetch(FeedContent, &content)
	fetch(FeedYouTube, &youtube)
	fetch(FeedX, &x)
	fetch(FeedThreads, &threads)
	_ = g.Wait()

	return regionFeeds{
		models.PlatformTikTok:    regionalItems(content, "tiktok", key),
		models.PlatformInstagram: regionalItems(content, "instagram", key),
		models.PlatformYouTube:   regionItems(youtube, key),
		models.PlatformX:         regionItems(x, key),
		models.PlatformThreads:   regionItems(threads, key),
	}
}

// regionalItems lê content_feeds.json: {"tiktok": {"regional": {"scotland": [...]}}}
func regionalItems(data []byte, platform, key string) []models.ContentItem {
	var doc map[string]struct {
		Regional map[string]json.RawMessage `json:"regional"`
	}
	if len(data) == 0 || json.Unmarshal(data, &doc) != nil {
		return nil
	}
	return decodeItems(doc[platform].Regional[key], models.Platform(platform))
}

// regionItems lê youtube.json, x.json e threads.json: {"scotland": [...]}
func regionItems(data []byte, key string) []models.ContentItem {
	var doc map[string]json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &doc) != nil {
		return nil
	}
	return decodeItems(doc[key], "")
}

// decodeItems ignora entradas que não são objetos ou não têm url
func decodeItems(raw json.RawMessage, platform models.Platform) []models.ContentItem {
	var entries []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	items := make([]models.ContentItem, 0, len(entries))
	for _, e := range entries {
		var item models.ContentItem
		if json.Unmarshal(e, &item) != nil {
			continue
		}
		item.URL = strings.TrimSpace(item.URL)
		if item.URL == "" {
			continue
		}
		if platform == models.PlatformTikTok {
			if m := tiktokVideoID.FindStringSubmatch(item.URL); m != nil {
				item.VideoID = m[1]
			}
		}
		items = append(items, item)
	}
	return items
}
