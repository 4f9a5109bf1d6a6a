package services

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/constants"
	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/observability"
	"github.com/watchthefall/wtf-worldcup/internal/utils"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/ranking"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/region"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/source"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/tier"
)

// Publisher recebe o ranking por points a cada recarga bem-sucedida
type Publisher interface {
	Publish(ctx context.Context, entries []models.RankedEntry) error
}

// LeaderboardStatus resume o estado do último carregamento
type LeaderboardStatus struct {
	Source      string    `json:"source"`
	Records     int       `json:"records"`
	LastUpdated string    `json:"last_updated,omitempty"`
	LoadedAt    time.Time `json:"loaded_at"`
	LastError   string    `json:"last_error,omitempty"`
}

// LeaderboardService mantém o snapshot mais recente do dataset e ranqueia sob demanda
type LeaderboardService struct {
	source      source.Source
	log         *zap.Logger
	siteBaseURL string
	interval    time.Duration
	publisher   Publisher

	mutex    sync.RWMutex
	snapshot models.Dataset
	loadedAt time.Time
	lastErr  error
}

// LeaderboardOption configura o serviço
type LeaderboardOption func(*LeaderboardService)

// WithReloadInterval ativa a recarga periódica em Start
func WithReloadInterval(d time.Duration) LeaderboardOption {
	return func(s *LeaderboardService) { s.interval = d }
}

// WithSiteBaseURL torna absolutos os links e logos das linhas
func WithSiteBaseURL(base string) LeaderboardOption {
	return func(s *LeaderboardService) { s.siteBaseURL = base }
}

// WithPublisher envia o ranking para um índice externo após cada recarga
func WithPublisher(p Publisher) LeaderboardOption {
	return func(s *LeaderboardService) { s.publisher = p }
}

// NewLeaderboardService cria o serviço com snapshot vazio; chame Reload ou Start para carregar
func NewLeaderboardService(src source.Source, log *zap.Logger, opts ...LeaderboardOption) *LeaderboardService {
	s := &LeaderboardService{
		source:   src,
		log:      logger.OrNop(log),
		snapshot: models.Dataset{Records: []models.RegionRecord{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reload busca e decodifica o dataset. Em falha o snapshot fica vazio e o erro é registrado.
func (s *LeaderboardService) Reload(ctx context.Context) error {
	return s.load(ctx, false)
}

// ForceReload é o Reload sem cache de documentos: sempre busca na origem
func (s *LeaderboardService) ForceReload(ctx context.Context) error {
	return s.load(ctx, true)
}

func (s *LeaderboardService) load(ctx context.Context, fresh bool) error {
	ctx, span := observability.Tracer("services").Start(ctx, "leaderboard.reload")
	defer span.End()
	span.SetAttributes(
		attribute.String("source", s.source.Location()),
		attribute.Bool("fresh", fresh),
	)

	var (
		data []byte
		err  error
	)
	if fresh {
		data, err = source.FetchFresh(ctx, s.source)
	} else {
		data, err = s.source.Fetch(ctx)
	}
	dataset := models.Dataset{Records: []models.RegionRecord{}}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Error("Erro ao carregar dataset do leaderboard",
			zap.String("source", s.source.Location()), zap.Error(err))
	} else {
		dataset = ranking.Decode(data)
	}

	s.mutex.Lock()
	s.snapshot = dataset
	s.loadedAt = time.Now()
	s.lastErr = err
	s.mutex.Unlock()

	span.SetAttributes(attribute.Int("records", len(dataset.Records)))
	if err != nil {
		return err
	}

	s.log.Info("Dataset do leaderboard carregado",
		zap.String("source", s.source.Location()),
		zap.Int("records", len(dataset.Records)),
		zap.String("last_updated", dataset.LastUpdated))

	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, ranking.Rank(dataset.Records, models.MetricPoints)); perr != nil {
			s.log.Warn("Erro ao publicar hubs no índice", zap.Error(perr))
		}
	}
	return nil
}

// Start faz a carga inicial e, com intervalo configurado, recarrega até o contexto acabar
func (s *LeaderboardService) Start(ctx context.Context) {
	_ = s.Reload(ctx)
	if s.interval <= 0 {
		return
	}
	go s.iniciarAtualizacaoAutomatica(ctx)
}

func (s *LeaderboardService) iniciarAtualizacaoAutomatica(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Reload(ctx)
		}
	}
}

// Snapshot retorna o dataset retido
func (s *LeaderboardService) Snapshot() models.Dataset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshot
}

// Status retorna o resumo do último carregamento
func (s *LeaderboardService) Status() LeaderboardStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	st := LeaderboardStatus{
		Source:      s.source.Location(),
		Records:     len(s.snapshot.Records),
		LastUpdated: s.snapshot.LastUpdated,
		LoadedAt:    s.loadedAt,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

// Ranked ranqueia o snapshot retido pela métrica; cada chamada é um ranking completo
func (s *LeaderboardService) Ranked(metric models.Metric) []models.RankedEntry {
	return ranking.Rank(s.Snapshot().Records, metric)
}

// Leaderboard monta as linhas de exibição para a métrica; limit <= 0 retorna todas.
// Total conta o ranking completo, não só as linhas retornadas.
func (s *LeaderboardService) Leaderboard(metric models.Metric, limit int) *models.LeaderboardResponse {
	if !metric.IsValid() {
		metric = models.MetricPoints
	}
	dataset := s.Snapshot()
	entries := ranking.Rank(dataset.Records, metric)

	return &models.LeaderboardResponse{
		Metric:           metric,
		MetricLabel:      metric.Label(),
		LastUpdated:      dataset.LastUpdated,
		FollowersAllZero: ranking.FollowersAllZero(dataset.Records),
		Total:            len(entries),
		Rows:             BuildRows(ranking.Top(entries, limit), s.siteBaseURL),
	}
}

// TierForRegion resolve a faixa de uma página ou chave de região pelo ranking de points.
// Regiões sem hub correspondente ficam na faixa C.
func (s *LeaderboardService) TierForRegion(name string) models.RegionTier {
	key := region.Key(region.Resolve(name))
	result := models.RegionTier{Key: key, Policy: tier.Fallback()}

	entry, ok := region.Match(s.Ranked(models.MetricPoints), key)
	if !ok {
		return result
	}
	result.Region = entry.Record.Region
	result.Matched = true
	result.Rank = entry.Rank
	result.Policy = tier.For(entry.Rank)
	return result
}

// BuildRows converte o ranking em linhas prontas para o renderer
func BuildRows(entries []models.RankedEntry, siteBaseURL string) []models.LeaderboardRow {
	rows := make([]models.LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		link, clickable := constants.LinkFor(e.Record.Region)
		if clickable {
			link = utils.ResolveSiteURL(link, siteBaseURL)
		}
		rows = append(rows, models.LeaderboardRow{
			Rank:         e.Rank,
			Badge:        utils.RankBadge(e.Rank),
			Region:       e.Record.Region,
			Slug:         utils.GenerateSlug(e.Record.Region),
			Tagline:      utils.PlainTagline(e.Record.Tagline),
			Logo:         utils.ResolveSiteURL(constants.LogoFor(e.Record.Region, e.Record.Logo), siteBaseURL),
			Link:         link,
			Clickable:    clickable,
			Value:        e.Value,
			Delta:        e.Delta,
			DisplayValue: utils.FormatNumber(e.Value),
			DisplayDelta: displayDelta(e.Delta),
			Trend:        utils.Trend(e.Delta),
			Tier:         tier.NameFor(e.Rank),
		})
	}
	return rows
}

// displayDelta formata a coluna Change: "▲ 1.2K", "▼ 300", "—"
func displayDelta(delta float64) string {
	symbol := utils.TrendSymbol(delta)
	if utils.Trend(delta) == "flat" {
		return symbol
	}
	if delta < 0 {
		delta = -delta
	}
	return symbol + " " + utils.FormatNumber(delta)
}
