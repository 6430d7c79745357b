package internal

import (
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.App.HTTP.Address() != ":8080" {
		t.Errorf("address = %q", cfg.App.HTTP.Address())
	}
	if cfg.Session.FallbackSecret == "" {
		t.Error("default config has no fallback secret")
	}
}

func TestHTTPConfigPortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	ok := HTTPConfig{Port: 8080}
	if err := ok.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
}

func TestJournalConfigRequiresPath(t *testing.T) {
	cfg := JournalConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty journal path should fail validation")
	}
}

func TestSQLiteConfigRequiresPath(t *testing.T) {
	cfg := SQLiteConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty sqlite path should fail validation")
	}
}

func TestConfigValidatePropagates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Journal.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("invalid journal section should fail the whole config")
	}
}
