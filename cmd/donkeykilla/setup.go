package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/config"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/policy"
	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/strength"
)

// newLogger creates a stderr logger at the given level, defaulting to info.
func newLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// load reads, environment-patches and validates the configuration and
// returns it with a logger at the effective level.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.LoadEnv(".env"); err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Server.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Server.LogLevel)
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}
	return cfg, logger, nil
}

func newPolicy(cfg *config.Config, logger *log.Logger) (*policy.Policy, error) {
	strategy, err := cfg.PolicyStrategy()
	if err != nil {
		return nil, err
	}
	charts, err := cfg.Charts()
	if err != nil {
		return nil, err
	}

	var scorer strength.Scorer = strength.Heuristic{}
	if cfg.Scorer.Kind == config.ScorerRemote {
		scorer = strength.NewRemote(cfg.Scorer.URL,
			strength.WithTimeout(cfg.ScorerTimeout()),
			strength.WithLogger(logger))
		logger.Info("Using remote scorer", "url", cfg.Scorer.URL, "timeout", cfg.ScorerTimeout())
	}

	return policy.New(strategy, charts, scorer, logger), nil
}
