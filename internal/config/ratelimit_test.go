package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	for _, k := range []string{"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS", "RATE_LIMIT_KEY_STRATEGY"} {
		t.Setenv(k, "")
	}
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("rate limiting should default to enabled")
	}
	if cfg.Capacity != 60 || cfg.RefillTokens != 1 {
		t.Errorf("unexpected defaults: capacity=%d refill=%d", cfg.Capacity, cfg.RefillTokens)
	}
	if cfg.KeyStrategy != "ip_user_route" {
		t.Errorf("key strategy = %q", cfg.KeyStrategy)
	}
}

func TestLoadRateLimitConfigClamping(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity < 1 {
		t.Errorf("capacity not clamped: %d", cfg.Capacity)
	}
	if cfg.RefillTokens < 1 {
		t.Errorf("refill tokens not clamped: %d", cfg.RefillTokens)
	}
	// TTL must outlive a few refill intervals or buckets expire mid-window.
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("ttl %v below 5x interval %v", cfg.TTL, cfg.RefillInterval)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"true", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"banana", true, true},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL_KEY", tt.val)
		if got := envBool("TEST_BOOL_KEY", tt.def); got != tt.want {
			t.Errorf("envBool(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "45s")

	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Errorf("methods not upper-cased/split: %v", cfg.Methods)
	}
	if cfg.TTL != 45*time.Second {
		t.Errorf("ttl = %v", cfg.TTL)
	}
}

func TestParseDurFallback(t *testing.T) {
	if d := parseDur("not-a-duration"); d != time.Second {
		t.Errorf("malformed duration should fall back to 1s, got %v", d)
	}
}
