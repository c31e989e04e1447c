package portal_test

import (
	"errors"
	"testing"

	portal "github.com/goliatone/go-portal"
)

func TestConfigValidateRejectsUnknownSource(t *testing.T) {
	cfg := portal.DefaultConfig()
	cfg.Source.Provider = "ftp"

	if err := cfg.Validate(); !errors.Is(err, portal.ErrSourceProviderUnknown) {
		t.Fatalf("expected ErrSourceProviderUnknown, got %v", err)
	}
}

func TestConfigValidateHTTPSourceRequiresBaseURL(t *testing.T) {
	cfg := portal.DefaultConfig()
	cfg.Source.Provider = portal.SourceHTTP

	if err := cfg.Validate(); !errors.Is(err, portal.ErrUpstreamBaseURLRequired) {
		t.Fatalf("expected ErrUpstreamBaseURLRequired, got %v", err)
	}
}

func TestConfigValidateBunSourceRequiresDSN(t *testing.T) {
	cfg := portal.DefaultConfig()
	cfg.Source.Provider = portal.SourceBun

	if err := cfg.Validate(); !errors.Is(err, portal.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORTAL_DEFAULT_LOCALE", "en")
	t.Setenv("PORTAL_SERVER_ADDR", ":9090")

	cfg, err := portal.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.DefaultLocale != "en" || cfg.Server.Addr != ":9090" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Pagination.DefaultPageSize != 10 {
		t.Fatalf("expected defaults to survive, got %d", cfg.Pagination.DefaultPageSize)
	}
}
