package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Lists.Dir)
	assert.Empty(t, cfg.Lists.Extra)
	assert.Equal(t, 256, cfg.Cache.Size)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, domain.DefaultTunables(), cfg.Tunables())
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("URLRISK_ENV", "dev")
	t.Setenv("URLRISK_LOG_LEVEL", "debug")
	t.Setenv("URLRISK_LISTS_DIR", "/tmp/lists")
	t.Setenv("URLRISK_LISTS_EXTRA_TLDS", ".zip, .mov")
	t.Setenv("URLRISK_RULES_MAX_DOMAIN_DOTS", "3")
	t.Setenv("URLRISK_RULES_MAX_DOMAIN_HYPHENS", "2")
	t.Setenv("URLRISK_RULES_MAX_URL_LENGTH", "120")
	t.Setenv("URLRISK_RULES_ENTROPY_THRESHOLD", "4.5")
	t.Setenv("URLRISK_RULES_SIMILARITY_THRESHOLD", "0.9")
	t.Setenv("URLRISK_RULES_CASE_INSENSITIVE_HTTPS", "true")
	t.Setenv("URLRISK_CACHE_SIZE", "0")
	t.Setenv("URLRISK_SERVER_PORT", "9090")
	t.Setenv("URLRISK_UNKNOWN", "ignored")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/lists", cfg.Lists.Dir)
	assert.Equal(t, []string{".zip", ".mov"}, cfg.Lists.Extra)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, domain.Tunables{
		MaxDomainDots:        3,
		MaxDomainHyphens:     2,
		MaxURLLength:         120,
		EntropyThreshold:     4.5,
		SimilarityThreshold:  0.9,
		CaseInsensitiveHTTPS: true,
	}, cfg.Tunables())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"env", "URLRISK_ENV", "staging"},
		{"log level", "URLRISK_LOG_LEVEL", "trace"},
		{"port range", "URLRISK_SERVER_PORT", "99999"},
		{"port NaN", "URLRISK_SERVER_PORT", "http"},
		{"negative cache", "URLRISK_CACHE_SIZE", "-1"},
		{"similarity above 1", "URLRISK_RULES_SIMILARITY_THRESHOLD", "1.5"},
		{"zero url length", "URLRISK_RULES_MAX_URL_LENGTH", "0"},
		{"tld without dot", "URLRISK_LISTS_EXTRA_TLDS", "zip"},
		{"tld double dot", "URLRISK_LISTS_EXTRA_TLDS", "..zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_WhenKoanfDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { defaultLoader = orig }()

	_, err := Load()
	assert.ErrorContains(t, err, "mocked error")
}

func TestLoad_WhenKoanfEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { envLoader = orig }()

	_, err := Load()
	assert.ErrorContains(t, err, "mocked error")
}

func TestLoad_RegisterValidationFails(t *testing.T) {
	orig := registerValidation
	registerValidation = func(v *validator.Validate) error { return errors.New("mocked validation error") }
	defer func() { registerValidation = orig }()

	_, err := Load()
	assert.ErrorContains(t, err, "mocked validation error")
}

func TestValidTLD(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("tld", validTLD))

	for _, ok := range []string{".tk", ".co.uk", ".xn--p1ai"} {
		assert.NoError(t, v.Var(ok, "tld"), ok)
	}
	for _, bad := range []string{"", ".", "tk", "..tk", ".t k", ".tk/"} {
		assert.Error(t, v.Var(bad, "tld"), bad)
	}
}
