package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ALLOW_ORIGINS", "GEMINI_API_KEY", "GEMINI_MODEL",
		"FACET_TIMEOUT_SECONDS", "FACET_PARALLELISM", "ENV",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("default port: %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("default model: %q", cfg.GeminiModel)
	}
	if cfg.FacetTimeout != 60*time.Second {
		t.Fatalf("default facet timeout: %v", cfg.FacetTimeout)
	}
	if cfg.FacetParallelism != 4 {
		t.Fatalf("default parallelism: %d", cfg.FacetParallelism)
	}
	if cfg.Env != "dev" {
		t.Fatalf("default env: %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5173" {
		t.Fatalf("default cors origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("FACET_TIMEOUT_SECONDS", "15")
	t.Setenv("FACET_PARALLELISM", "2")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("port override: %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("model override: %q", cfg.GeminiModel)
	}
	if cfg.FacetTimeout != 15*time.Second {
		t.Fatalf("timeout override: %v", cfg.FacetTimeout)
	}
	if cfg.FacetParallelism != 2 {
		t.Fatalf("parallelism override: %d", cfg.FacetParallelism)
	}
	if cfg.Env != "production" {
		t.Fatalf("env normalization: %q", cfg.Env)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("cors override: %v", cfg.CORSAllowOrigin)
	}
}

func TestInvalidNumericFallsBack(t *testing.T) {
	t.Setenv("FACET_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("FACET_PARALLELISM", "-3")

	cfg := Load()
	if cfg.FacetTimeout != 60*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.FacetTimeout)
	}
	if cfg.FacetParallelism != 4 {
		t.Fatalf("expected default parallelism, got %d", cfg.FacetParallelism)
	}
}
