// Package source implementa a capacidade de leitura injetada no leaderboard:
// arquivos locais, URLs http(s) e um cache de documentos na frente de ambos.
// Cada Fetch faz uma única tentativa; política de retry é do chamador.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/watchthefall/wtf-worldcup/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// maxDocumentSize limita o tamanho dos documentos JSON lidos
const maxDocumentSize = 8 << 20

// Source retorna o documento bruto de uma fonte
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Location() string
}

// New escolhe a implementação pela forma da localização
func New(location string, timeout time.Duration) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptySource
	}
	if IsURL(location) {
		return NewHTTPSource(location, timeout), nil
	}
	return &FileSource{Path: location}, nil
}

// IsURL indica se a localização é http(s)
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Join monta a localização de um arquivo dentro de um diretório ou URL base
func Join(base, name string) string {
	if IsURL(base) {
		u, err := url.Parse(base)
		if err != nil {
			return strings.TrimRight(base, "/") + "/" + name
		}
		u.Path = path.Join(u.Path, name)
		return u.String()
	}
	return filepath.Join(base, name)
}

// FileSource lê o documento do disco
type FileSource struct {
	Path string
}

func (s *FileSource) Location() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	_, span := observability.Tracer("source").Start(ctx, "source.file.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("source.path", s.Path))

	f, err := os.Open(s.Path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.Path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDocumentSize))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.Path, err)
	}
	return data, nil
}

// HTTPSource busca o documento por GET, sem cache do lado HTTP
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource cria uma fonte HTTP com timeout por requisição
func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		URL:    rawURL,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Location() string { return s.URL }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	ctx, span := observability.Tracer("source").Start(ctx, "source.http.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", s.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.URL, err)
	}
	// equivalente ao cache: 'no-store' do fetch no browser
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.URL, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("%w: %s: %d", ErrBadStatus, s.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, s.URL, err)
	}
	return data, nil
}
