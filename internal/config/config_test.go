package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "5175" {
		t.Errorf("expected default port 5175 got %s", c.Port)
	}
	if c.Dictionary.Backend != "memory" || c.Dictionary.Lang != "en" {
		t.Errorf("unexpected dictionary defaults %+v", c.Dictionary)
	}
	if c.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl got %v", c.TokenTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DICTIONARY_BACKEND", "bolt")
	t.Setenv("DICTIONARY_CACHE_SIZE", "0")
	t.Setenv("WORDS_START_FILE", "/tmp/roots.txt")

	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != "9000" {
		t.Errorf("expected 9000 got %s", c.Port)
	}
	if c.Dictionary.Backend != "bolt" || c.Dictionary.CacheSize != 0 {
		t.Errorf("unexpected dictionary config %+v", c.Dictionary)
	}
	if c.Words.StartFile != "/tmp/roots.txt" {
		t.Errorf("unexpected start file %q", c.Words.StartFile)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("ROUND_TOKEN_TTL", "forever")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
