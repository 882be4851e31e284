package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/config"
	"github.com/haukened/urlrisk/internal/urlrisk/domain"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/reflists"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/resultcache"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex"
	"github.com/haukened/urlrisk/internal/urlrisk/repos/tldindex/bloom"
	"github.com/haukened/urlrisk/internal/urlrisk/services/evaluator"
)

// tldFalsePositiveRate sizes the suspicious TLD bloom filter.
const tldFalsePositiveRate = 0.01

// Application holds the wired components shared by the subcommands.
type Application struct {
	config    *config.AppConfig
	lists     domain.ReferenceLists
	tlds      *tldindex.Index
	cache     evaluator.ResultCache
	evaluator evaluator.URLEvaluator
}

// loadApplication reads configuration, configures logging and builds the
// application. The verbose flag forces debug logging.
func loadApplication(cmd *cobra.Command) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	if err := log.Configure(cfg.Env, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("logging configuration error: %w", err)
	}
	return buildApplication(cfg, log.GetLogger())
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig, logger log.Logger) (*Application, error) {
	lists, err := buildReferenceLists(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference lists: %w", err)
	}

	idx := tldindex.New(lists, bloom.NewFactory(), tldFalsePositiveRate)
	tunables := cfg.Tunables()
	base := evaluator.New(evaluator.Options{
		Lists:    &lists,
		Tunables: &tunables,
		TLDs:     idx,
		Logger:   logger,
	})

	cache, err := resultcache.New(cfg.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	logger.Debug(map[string]any{
		"env":        cfg.Env,
		"keywords":   len(lists.PhishingKeywords()),
		"tlds":       len(lists.SuspiciousTLDs()),
		"domains":    len(lists.PopularDomains()),
		"cache_size": cfg.Cache.Size,
		"rules":      base.RuleIDs(),
	}, "Evaluator configured")

	return &Application{
		config:    cfg,
		lists:     lists,
		tlds:      idx,
		cache:     cache,
		evaluator: evaluator.NewCached(base, cache),
	}, nil
}

// buildReferenceLists loads list overrides and appends any extra TLDs from
// configuration.
func buildReferenceLists(cfg *config.AppConfig, logger log.Logger) (domain.ReferenceLists, error) {
	lists, err := reflists.LoadDirectory(cfg.Lists.Dir, logger)
	if err != nil {
		return domain.ReferenceLists{}, err
	}
	if len(cfg.Lists.Extra) == 0 {
		return lists, nil
	}
	return lists.WithSuspiciousTLDs(append(lists.SuspiciousTLDs(), cfg.Lists.Extra...))
}
