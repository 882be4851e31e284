// Package config loads the application configuration from struct defaults
// and URLRISK_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/haukened/urlrisk/internal/urlrisk/domain"
)

// EnvPrefix is the prefix shared by every configuration variable.
const EnvPrefix = "URLRISK_"

// AppConfig is the full application configuration.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	Log    LoggingConfig `koanf:"log"`
	Lists  ListsConfig   `koanf:"lists"`
	Rules  RulesConfig   `koanf:"rules"`
	Cache  CacheConfig   `koanf:"cache"`
	Server ServerConfig  `koanf:"server"`
}

// LoggingConfig controls log verbosity: "debug", "info", "warn", or "error".
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// ListsConfig points at an optional directory of reference list overrides.
// Extra holds additional suspicious TLDs appended to the effective list.
type ListsConfig struct {
	Dir   string   `koanf:"dir"`
	Extra []string `koanf:"extra_tlds" validate:"dive,tld"`
}

// RulesConfig carries the heuristic thresholds.
type RulesConfig struct {
	MaxDomainDots        int     `koanf:"max_domain_dots" validate:"gte=0,lte=64"`
	MaxDomainHyphens     int     `koanf:"max_domain_hyphens" validate:"gte=0,lte=64"`
	MaxURLLength         int     `koanf:"max_url_length" validate:"gte=1,lte=65536"`
	EntropyThreshold     float64 `koanf:"entropy_threshold" validate:"gte=0,lte=32"`
	SimilarityThreshold  float64 `koanf:"similarity_threshold" validate:"gte=0,lte=1"`
	CaseInsensitiveHTTPS bool    `koanf:"case_insensitive_https"`
}

// CacheConfig sizes the verdict cache; 0 disables it.
type CacheConfig struct {
	Size int `koanf:"size" validate:"gte=0"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Port int `koanf:"port" validate:"required,gte=1,lte=65535"`
}

// DEFAULT_APP_CONFIG holds the defaults loaded before the environment.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:    "prod",
	Log:    LoggingConfig{Level: "info"},
	Lists:  ListsConfig{},
	Rules:  rulesFromTunables(domain.DefaultTunables()),
	Cache:  CacheConfig{Size: 256},
	Server: ServerConfig{Port: 8080},
}

// Tunables converts the rule section into domain.Tunables.
func (c AppConfig) Tunables() domain.Tunables {
	return domain.Tunables{
		MaxDomainDots:        c.Rules.MaxDomainDots,
		MaxDomainHyphens:     c.Rules.MaxDomainHyphens,
		MaxURLLength:         c.Rules.MaxURLLength,
		EntropyThreshold:     c.Rules.EntropyThreshold,
		SimilarityThreshold:  c.Rules.SimilarityThreshold,
		CaseInsensitiveHTTPS: c.Rules.CaseInsensitiveHTTPS,
	}
}

func rulesFromTunables(t domain.Tunables) RulesConfig {
	return RulesConfig{
		MaxDomainDots:        t.MaxDomainDots,
		MaxDomainHyphens:     t.MaxDomainHyphens,
		MaxURLLength:         t.MaxURLLength,
		EntropyThreshold:     t.EntropyThreshold,
		SimilarityThreshold:  t.SimilarityThreshold,
		CaseInsensitiveHTTPS: t.CaseInsensitiveHTTPS,
	}
}

// envKeys maps an environment variable (without prefix) to its koanf path.
// Section names and field names both contain underscores, so the mapping is
// explicit rather than derived.
var envKeys = map[string]string{
	"ENV":                          "env",
	"LOG_LEVEL":                    "log.level",
	"LISTS_DIR":                    "lists.dir",
	"LISTS_EXTRA_TLDS":             "lists.extra_tlds",
	"RULES_MAX_DOMAIN_DOTS":        "rules.max_domain_dots",
	"RULES_MAX_DOMAIN_HYPHENS":     "rules.max_domain_hyphens",
	"RULES_MAX_URL_LENGTH":         "rules.max_url_length",
	"RULES_ENTROPY_THRESHOLD":      "rules.entropy_threshold",
	"RULES_SIMILARITY_THRESHOLD":   "rules.similarity_threshold",
	"RULES_CASE_INSENSITIVE_HTTPS": "rules.case_insensitive_https",
	"CACHE_SIZE":                   "cache.size",
	"SERVER_PORT":                  "server.port",
}

// listKeys are split on spaces and commas.
var listKeys = map[string]bool{
	"lists.extra_tlds": true,
}

// envLoader loads URLRISK_ variables; unknown names are ignored.
// It can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[strings.ToUpper(strings.TrimPrefix(key, EnvPrefix))]
			if !ok {
				return "", nil
			}
			value = strings.TrimSpace(value)
			if listKeys[path] {
				return path, strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
			}
			return path, value
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG through the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// validTLD accepts a suffix such as ".tk": a leading dot followed by at
// least one character and no further leading dot.
func validTLD(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) >= 2 && s[0] == '.' && s[1] != '.' && !strings.ContainsAny(s, " /?#@:")
}

// registerValidation registers the "tld" tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("tld", validTLD)
}

// Load returns the validated configuration.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}
