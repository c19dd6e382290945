package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"CONTENT_API_URL", "CONTENT_API_KEY", "CONTENT_SECTION", "CONTENT_FROM_DATE",
		"CONTENT_SHOW_TAGS", "CONTENT_QUERY", "REDIS_ADDR", "REDIS_DB", "PREFERENCES_KEY", "HISTORY_KEY", "HISTORY_TTL_SECONDS", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API != DefaultAPIConfig() {
		t.Fatalf("API = %+v; want %+v", cfg.API, DefaultAPIConfig())
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q; want %q", cfg.Port, DefaultPort)
	}
	if cfg.Redis.Addr != DefaultRedisAddr || cfg.Redis.Key != DefaultPreferencesKey || cfg.Redis.DB != 0 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Redis.HistoryKey != DefaultHistoryKey || cfg.Redis.HistoryTTL != DefaultHistoryTTL {
		t.Errorf("unexpected history config: %+v", cfg.Redis)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "http://localhost:9000/search")
	t.Setenv("CONTENT_API_KEY", "secret")
	t.Setenv("CONTENT_SECTION", "sport")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9000/search" || cfg.API.APIKey != "secret" || cfg.API.Section != "sport" {
		t.Fatalf("overrides not applied: %+v", cfg.API)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d; want 3", cfg.Redis.DB)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name      string
		key       string
		value     string
		wantField string
	}{
		{"bad scheme", "CONTENT_API_URL", "ftp://example.com/search", "CONTENT_API_URL"},
		{"relative url", "CONTENT_API_URL", "/search", "CONTENT_API_URL"},
		{"bad from date", "CONTENT_FROM_DATE", "20/06/2018", "CONTENT_FROM_DATE"},
		{"bad redis db", "REDIS_DB", "zero", "REDIS_DB"},
		{"bad history ttl", "HISTORY_TTL_SECONDS", "soon", "HISTORY_TTL_SECONDS"},
		{"zero history ttl", "HISTORY_TTL_SECONDS", "0", "HISTORY_TTL_SECONDS"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			_, err := Load()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %v; want *ConfigError", err)
			}
			if cfgErr.Field != c.wantField {
				t.Fatalf("Field = %q; want %q", cfgErr.Field, c.wantField)
			}
		})
	}
}

func TestHost(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://content.guardianapis.com/search", "content.guardianapis.com:443"},
		{"http://localhost/search", "localhost:80"},
		{"http://127.0.0.1:9000/search", "127.0.0.1:9000"},
		{"::not a url", ""},
	}
	for _, c := range cases {
		cfg := APIConfig{BaseURL: c.base}
		if got := cfg.Host(); got != c.want {
			t.Errorf("Host(%q) = %q; want %q", c.base, got, c.want)
		}
	}
}
