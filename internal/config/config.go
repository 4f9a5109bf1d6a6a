// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: debug/release/test (default: release)
//   - LOG_LEVEL: debug/info/warn/error (default: info)
//   - SITE_BASE_URL: Base para links absolutos de logos e páginas (default: vazio, links relativos)
//   - CORS_ALLOWED_ORIGINS: Origens separadas por vírgula (default: *)
//
// ## Admin
//   - ADMIN_TOKEN: Bearer token de /api/v1/admin; vazio desabilita as rotas
//   - ADMIN_RELOAD_COOLDOWN_SECONDS: Intervalo mínimo entre recargas manuais (default: 30)
//
// ## Dados
//   - WORLDCUP_DATA_SOURCE: Caminho local ou URL http(s) do worldcup.json (default: data/worldcup.json)
//   - CONTENT_DATA_DIR: Diretório ou URL base dos feeds do console (default: data)
//   - RELOAD_INTERVAL_MINUTES: Intervalo de recarga do snapshot, 0 desabilita (default: 10)
//   - FETCH_TIMEOUT_SECONDS: Timeout de cada fetch HTTP (default: 10)
//   - SOURCE_CACHE_TTL_SECONDS: TTL do cache de documentos buscados, 0 desabilita (default: 60)
//
// ## Redis (opcional, cache compartilhado entre réplicas)
//   - REDIS_ADDR: host:porta; vazio usa cache em memória
//   - REDIS_PASSWORD
//   - REDIS_DB (default: 0)
//
// ## Typesense (opcional, diretório de hubs)
//   - TYPESENSE_HOST: vazio desabilita o índice
//   - TYPESENSE_PORT (default: 8108)
//   - TYPESENSE_API_KEY
//   - TYPESENSE_PROTOCOL (default: http)
//   - TYPESENSE_HUBS_COLLECTION (default: worldcup_hubs)
//
// ## Tracing
//   - TRACING_ENABLED (default: false)
//   - TRACING_ENDPOINT (default: localhost:4317)
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `validate:"required,numeric"`
	GinMode     string `validate:"oneof=debug release test"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	SiteBaseURL string `validate:"omitempty,url"`
	CORSOrigins string

	AdminToken                 string
	AdminReloadCooldownSeconds int `validate:"gte=0"`

	DataSource            string `validate:"required"`
	ContentDataDir        string `validate:"required"`
	ReloadIntervalMinutes int    `validate:"gte=0"`
	FetchTimeoutSeconds   int    `validate:"gt=0"`
	SourceCacheTTLSeconds int    `validate:"gte=0"`

	RedisAddr     string `validate:"omitempty,hostname_port"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	TypesenseHost       string
	TypesensePort       string `validate:"required_with=TypesenseHost"`
	TypesenseAPIKey     string `validate:"required_with=TypesenseHost"`
	TypesenseProtocol   string `validate:"oneof=http https"`
	TypesenseCollection string `validate:"required"`

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string `validate:"required_if=TracingEnabled true"`
}

// LoadConfig lê o .env (quando existe) e as variáveis de ambiente.
// Configuração inválida encerra o processo.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}
	return cfg
}

// FromEnv monta a configuração a partir do ambiente, sem validar
func FromEnv() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SiteBaseURL: getEnv("SITE_BASE_URL", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		AdminToken:                 getEnv("ADMIN_TOKEN", ""),
		AdminReloadCooldownSeconds: getEnvInt("ADMIN_RELOAD_COOLDOWN_SECONDS", 30),

		DataSource:            getEnv("WORLDCUP_DATA_SOURCE", "data/worldcup.json"),
		ContentDataDir:        getEnv("CONTENT_DATA_DIR", "data"),
		ReloadIntervalMinutes: getEnvInt("RELOAD_INTERVAL_MINUTES", 10),
		FetchTimeoutSeconds:   getEnvInt("FETCH_TIMEOUT_SECONDS", 10),
		SourceCacheTTLSeconds: getEnvInt("SOURCE_CACHE_TTL_SECONDS", 60),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		TypesenseHost:       getEnv("TYPESENSE_HOST", ""),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection: getEnv("TYPESENSE_HUBS_COLLECTION", "worldcup_hubs"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

// Validate aplica as regras declaradas nas tags da struct
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TypesenseEnabled indica se o índice de hubs está configurado
func (c *Config) TypesenseEnabled() bool {
	return c.TypesenseHost != ""
}

// TypesenseServerURL monta a URL do servidor Typesense
func (c *Config) TypesenseServerURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func (c *Config) ReloadInterval() time.Duration {
	return time.Duration(c.ReloadIntervalMinutes) * time.Minute
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) AdminReloadCooldown() time.Duration {
	return time.Duration(c.AdminReloadCooldownSeconds) * time.Second
}

func (c *Config) SourceCacheTTL() time.Duration {
	return time.Duration(c.SourceCacheTTLSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
