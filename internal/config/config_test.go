package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DataSource != "data/worldcup.json" {
		t.Errorf("DataSource = %q", cfg.DataSource)
	}
	if cfg.ReloadInterval() != 10*time.Minute {
		t.Errorf("ReloadInterval = %v", cfg.ReloadInterval())
	}
	if cfg.AdminReloadCooldown() != 30*time.Second || cfg.AdminToken != "" {
		t.Errorf("admin defaults = %v/%q", cfg.AdminReloadCooldown(), cfg.AdminToken)
	}
	if cfg.TypesenseEnabled() {
		t.Error("Typesense deveria estar desabilitado por padrão")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults deveriam ser válidos: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WORLDCUP_DATA_SOURCE", "https://watchthefall.com/data/worldcup.json")
	t.Setenv("RELOAD_INTERVAL_MINUTES", "0")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("TYPESENSE_HOST", "typesense.local")
	t.Setenv("TYPESENSE_API_KEY", "xyz")

	cfg := FromEnv()
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.ReloadInterval() != 0 {
		t.Errorf("ReloadInterval = %v, want 0", cfg.ReloadInterval())
	}
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("valor inválido deveria manter o default, got %v", cfg.FetchTimeout())
	}
	if got := cfg.TypesenseServerURL(); got != "http://typesense.local:8108" {
		t.Errorf("TypesenseServerURL = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config deveria ser válida: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"porta não numérica", func(c *Config) { c.ServerPort = "http" }},
		{"gin mode desconhecido", func(c *Config) { c.GinMode = "verbose" }},
		{"log level desconhecido", func(c *Config) { c.LogLevel = "trace" }},
		{"fonte vazia", func(c *Config) { c.DataSource = "" }},
		{"timeout zero", func(c *Config) { c.FetchTimeoutSeconds = 0 }},
		{"intervalo negativo", func(c *Config) { c.ReloadIntervalMinutes = -1 }},
		{"redis sem porta", func(c *Config) { c.RedisAddr = "localhost" }},
		{"typesense sem api key", func(c *Config) { c.TypesenseHost = "localhost" }},
		{"base url inválida", func(c *Config) { c.SiteBaseURL = "not a url" }},
		{"cooldown negativo", func(c *Config) { c.AdminReloadCooldownSeconds = -5 }},
		{"tracing sem endpoint", func(c *Config) { c.TracingEnabled = true; c.TracingEndpoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("esperado erro de validação")
			}
		})
	}
}
