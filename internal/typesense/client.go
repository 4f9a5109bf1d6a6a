// Package typesense publica os hubs ranqueados em uma coleção do Typesense,
// usada pelo diretório de hubs do site.
package typesense

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/config"
	"github.com/watchthefall/wtf-worldcup/internal/constants"
	"github.com/watchthefall/wtf-worldcup/internal/logger"
	"github.com/watchthefall/wtf-worldcup/internal/models"
	"github.com/watchthefall/wtf-worldcup/internal/utils"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/region"
	"github.com/watchthefall/wtf-worldcup/internal/worldcup/tier"
)

// ErrIndexDisabled indica que TYPESENSE_HOST não foi configurado
var ErrIndexDisabled = errors.New("índice de hubs desabilitado")

const defaultSearchLimit = 20

// HubDocument é o documento indexado por hub
type HubDocument struct {
	ID        string  `json:"id"`
	Region    string  `json:"region"`
	NameKey   string  `json:"name_key"`
	Slug      string  `json:"slug"`
	Tagline   string  `json:"tagline"`
	Logo      string  `json:"logo"`
	Link      string  `json:"link,omitempty"`
	Rank      int     `json:"rank"`
	Tier      string  `json:"tier"`
	Points    float64 `json:"points"`
	Followers float64 `json:"followers"`
	UpdatedAt int64   `json:"updated_at"`
}

// SearchResult é a página de hubs encontrada
type SearchResult struct {
	Found int           `json:"found"`
	Hubs  []HubDocument `json:"hubs"`
}

// HubIndex encapsula o cliente Typesense da coleção de hubs
type HubIndex struct {
	client     *typesense.Client
	collection string
	log        *zap.Logger
	now        func() time.Time
}

// NewClient cria o índice a partir da configuração; retorna nil quando desabilitado
func NewClient(cfg *config.Config, log *zap.Logger) *HubIndex {
	if !cfg.TypesenseEnabled() {
		return nil
	}
	client := typesense.NewClient(
		typesense.WithServer(cfg.TypesenseServerURL()),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
	)
	return newHubIndex(client, cfg.TypesenseCollection, log)
}

func newHubIndex(client *typesense.Client, collection string, log *zap.Logger) *HubIndex {
	return &HubIndex{
		client:     client,
		collection: collection,
		log:        logger.OrNop(log),
		now:        time.Now,
	}
}

// Healthy consulta o endpoint /health do Typesense
func (h *HubIndex) Healthy(ctx context.Context) error {
	if h == nil {
		return ErrIndexDisabled
	}
	ok, err := h.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("typesense não saudável")
	}
	return nil
}

// EnsureCollection cria a coleção de hubs se ela não existir
func (h *HubIndex) EnsureCollection(ctx context.Context) error {
	if h == nil {
		return ErrIndexDisabled
	}
	_, err := h.client.Collection(h.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("erro ao consultar collection %s: %w", h.collection, err)
	}

	h.log.Info("Collection de hubs não existe, criando", zap.String("collection", h.collection))
	if _, err := h.client.Collections().Create(ctx, hubSchema(h.collection)); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", h.collection, err)
	}
	return nil
}

func hubSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "region", Type: "string"},
			{Name: "name_key", Type: "string"},
			{Name: "slug", Type: "string"},
			{Name: "tagline", Type: "string", Optional: pointer.True()},
			{Name: "logo", Type: "string", Optional: pointer.True()},
			{Name: "link", Type: "string", Optional: pointer.True()},
			{Name: "rank", Type: "int32", Sort: pointer.True()},
			{Name: "tier", Type: "string", Facet: pointer.True()},
			{Name: "points", Type: "float"},
			{Name: "followers", Type: "float", Sort: pointer.True()},
			{Name: "updated_at", Type: "int64", Sort: pointer.True()},
		},
		DefaultSortingField: pointer.String("points"),
	}
}

// Publish faz upsert de um documento por hub a partir do ranking por points.
// Com todos os upserts aceitos, documentos de hubs ausentes do ranking são removidos.
func (h *HubIndex) Publish(ctx context.Context, entries []models.RankedEntry) error {
	if h == nil {
		return ErrIndexDisabled
	}
	if err := h.EnsureCollection(ctx); err != nil {
		return err
	}

	updatedAt := h.now().Unix()
	var failed int
	for _, e := range entries {
		doc := NewHubDocument(e, updatedAt)
		if _, err := h.client.Collection(h.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
			failed++
			h.log.Warn("Erro ao indexar hub", zap.String("region", doc.Region), zap.Error(err))
		}
	}

	if failed > 0 {
		h.log.Warn("Hubs publicados parcialmente, mantendo documentos antigos",
			zap.String("collection", h.collection),
			zap.Int("total", len(entries)),
			zap.Int("failed", failed))
		return fmt.Errorf("%d de %d hubs não foram indexados", failed, len(entries))
	}

	removed, err := h.pruneStale(ctx, updatedAt)
	if err != nil {
		return err
	}

	h.log.Info("Hubs publicados no índice",
		zap.String("collection", h.collection),
		zap.Int("total", len(entries)),
		zap.Int("removed", removed))
	return nil
}

// pruneStale remove hubs que saíram do dataset: todo documento não tocado nesta publicação
func (h *HubIndex) pruneStale(ctx context.Context, updatedAt int64) (int, error) {
	removed, err := h.client.Collection(h.collection).Documents().Delete(ctx, &api.DeleteDocumentsParams{
		FilterBy: pointer.String(fmt.Sprintf("updated_at:<%d", updatedAt)),
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao remover hubs antigos: %w", err)
	}
	return removed, nil
}

// NewHubDocument converte uma linha do ranking por points em documento
func NewHubDocument(e models.RankedEntry, updatedAt int64) HubDocument {
	link, _ := constants.LinkFor(e.Record.Region)
	slug := utils.GenerateSlug(e.Record.Region)
	return HubDocument{
		ID:        slug,
		Region:    e.Record.Region,
		NameKey:   region.Key(e.Record.Region),
		Slug:      slug,
		Tagline:   utils.PlainTagline(e.Record.Tagline),
		Logo:      constants.LogoFor(e.Record.Region, e.Record.Logo),
		Link:      link,
		Rank:      e.Rank,
		Tier:      string(tier.NameFor(e.Rank)),
		Points:    e.Value,
		Followers: e.Record.Followers.Total(),
		UpdatedAt: updatedAt,
	}
}

// Search busca hubs por nome ou tagline; consulta vazia lista pelo rank
func (h *HubIndex) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if h == nil {
		return nil, ErrIndexDisabled
	}
	if limit <= 0 || limit > 250 {
		limit = defaultSearchLimit
	}

	q := strings.TrimSpace(query)
	sortBy := "_text_match:desc,rank:asc"
	if q == "" {
		q = "*"
		sortBy = "rank:asc"
	}

	params := &api.SearchCollectionParams{
		Q:       pointer.String(q),
		QueryBy: pointer.String("region,name_key,tagline"),
		SortBy:  pointer.String(sortBy),
		PerPage: pointer.Int(limit),
	}

	res, err := h.client.Collection(h.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar hubs: %w", err)
	}
	return decodeSearchResult(res)
}

// decodeSearchResult converte o resultado do cliente passando por JSON
func decodeSearchResult(res any) (*SearchResult, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resultado: %w", err)
	}

	var parsed struct {
		Found int `json:"found"`
		Hits  []struct {
			Document HubDocument `json:"document"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("erro ao deserializar resultado: %w", err)
	}

	out := &SearchResult{Found: parsed.Found, Hubs: make([]HubDocument, 0, len(parsed.Hits))}
	for _, hit := range parsed.Hits {
		out.Hubs = append(out.Hubs, hit.Document)
	}
	return out, nil
}

func isNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "Not found") || strings.Contains(msg, "Not Found")
}
