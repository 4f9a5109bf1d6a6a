package source

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/watchthefall/wtf-worldcup/internal/logger"
)

// SnapshotCache armazena documentos brutos buscados por localização
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

// MemoryCache é um cache TTL em memória com tamanho máximo
type MemoryCache struct {
	data    map[string]*cachedDocument
	mu      sync.RWMutex
	maxSize int
	now     func() time.Time
}

type cachedDocument struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache cria um cache em memória
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &MemoryCache{
		data:    make(map[string]*cachedDocument),
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok && c.now().Before(cached.expiresAt) {
		return cached.data, true
	}
	return nil, false
}

func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = &cachedDocument{
		data:      data,
		expiresAt: c.now().Add(ttl),
	}
}

// Size retorna a quantidade de entradas (incluindo expiradas ainda não removidas)
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// cleanup remove expirados e, se ainda cheio, a entrada que expira primeiro
func (c *MemoryCache) cleanup() {
	now := c.now()
	for key, cached := range c.data {
		if !now.Before(cached.expiresAt) {
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxSize {
		oldestKey := ""
		var oldest time.Time
		for key, cached := range c.data {
			if oldestKey == "" || cached.expiresAt.Before(oldest) {
				oldest = cached.expiresAt
				oldestKey = key
			}
		}
		delete(c.data, oldestKey)
	}
}

// RedisCache compartilha os documentos entre réplicas do serviço
type RedisCache struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

// NewRedisCache cria o cache sobre um cliente já aberto
func NewRedisCache(client *redis.Client, log *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: "wtf:worldcup:source:",
		log:    logger.OrNop(log),
	}
}

// OpenRedis abre um cliente Redis; endereço vazio retorna nil
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("falha ao ler cache redis", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		c.log.Warn("falha ao gravar cache redis", zap.String("key", key), zap.Error(err))
	}
}

// Ping verifica a conectividade com o Redis
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CachedSource serve a fonte a partir do cache enquanto o TTL não expira
type CachedSource struct {
	Source Source
	Cache  SnapshotCache
	TTL    time.Duration
}

// WithCache envolve a fonte; TTL zero ou cache nil retornam a fonte original
func WithCache(src Source, cache SnapshotCache, ttl time.Duration) Source {
	if cache == nil || ttl <= 0 {
		return src
	}
	return &CachedSource{Source: src, Cache: cache, TTL: ttl}
}

func (s *CachedSource) Location() string { return s.Source.Location() }

func (s *CachedSource) Fetch(ctx context.Context) ([]byte, error) {
	if data, ok := s.Cache.Get(ctx, s.Source.Location()); ok {
		return data, nil
	}
	return s.Refresh(ctx)
}

// Refresh ignora o cache, busca na fonte e regrava a entrada.
// Em falha a entrada antiga continua valendo para Fetch.
func (s *CachedSource) Refresh(ctx context.Context) ([]byte, error) {
	data, err := s.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, s.Source.Location(), data, s.TTL)
	return data, nil
}

// Refresher é uma fonte capaz de buscar ignorando o próprio cache
type Refresher interface {
	Refresh(ctx context.Context) ([]byte, error)
}

// FetchFresh usa Refresh quando a fonte tem cache; senão um Fetch comum
func FetchFresh(ctx context.Context, src Source) ([]byte, error) {
	if r, ok := src.(Refresher); ok {
		return r.Refresh(ctx)
	}
	return src.Fetch(ctx)
}
