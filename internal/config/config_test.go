package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Errorf("unexpected default model id: %s", cfg.GeminiModelID)
	}
	if cfg.AssistantTimeout != 30*time.Second {
		t.Errorf("unexpected default assistant timeout: %s", cfg.AssistantTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("ASSISTANT_MAX_TOKENS", "512")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected redis addr set, got %s", cfg.RedisAddr)
	}
	if !cfg.RedisTLS {
		t.Error("expected redis TLS enabled")
	}
	if cfg.AssistantMaxTokens != 512 {
		t.Errorf("expected 512 max tokens, got %d", cfg.AssistantMaxTokens)
	}
	if cfg.AssistantTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.AssistantTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("REDIS_TLS", "not-a-bool")
	t.Setenv("ASSISTANT_MAX_TOKENS", "many")
	t.Setenv("ASSISTANT_TIMEOUT", "soon")

	cfg := Load()

	if cfg.RedisTLS {
		t.Error("invalid bool should fall back to false")
	}
	if cfg.AssistantMaxTokens != 1024 {
		t.Errorf("invalid int should fall back, got %d", cfg.AssistantMaxTokens)
	}
	if cfg.AssistantTimeout != 30*time.Second {
		t.Errorf("invalid duration should fall back, got %s", cfg.AssistantTimeout)
	}
}
