package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/trmorph/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("%w: log: %w", domain.ErrInvalidConfig, err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("%w: cache: %w", domain.ErrInvalidConfig, err)
	}
	if err := c.Batch.validate(); err != nil {
		return fmt.Errorf("%w: batch: %w", domain.ErrInvalidConfig, err)
	}
	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("%w: lexicon: %w", domain.ErrInvalidConfig, err)
	}
	if c.Lexicon.Source == LexiconSourcePostgres {
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("%w: database: %w", domain.ErrInvalidConfig, err)
		}
	}
	if c.StaticCache.Enabled && (c.StaticCache.CoverageRatio <= 0 || c.StaticCache.CoverageRatio > 1) {
		return fmt.Errorf("%w: static_cache: coverage_ratio must be in (0, 1] (got %v)", domain.ErrInvalidConfig, c.StaticCache.CoverageRatio)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	if !strings.EqualFold(l.Format, "json") && !strings.EqualFold(l.Format, "text") {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (c CacheConfig) validate() error {
	if c.L1InitialCapacity <= 0 {
		return fmt.Errorf("l1_initial_capacity must be > 0 (got %d)", c.L1InitialCapacity)
	}
	if c.L1MaxCapacity < c.L1InitialCapacity {
		return fmt.Errorf("l1_max_capacity must be >= l1_initial_capacity (got %d < %d)", c.L1MaxCapacity, c.L1InitialCapacity)
	}
	if c.L2FlushThreshold <= 0 {
		return fmt.Errorf("l2_flush_threshold must be > 0 (got %d)", c.L2FlushThreshold)
	}
	return nil
}

func (b BatchConfig) validate() error {
	if b.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", b.Workers)
	}
	if b.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", b.BatchSize)
	}
	if b.Mode != "bulk" && b.Mode != "single" {
		return fmt.Errorf("mode must be bulk or single (got %q)", b.Mode)
	}
	if b.LoaderWait < 0 {
		return fmt.Errorf("loader_wait must be >= 0 (got %s)", b.LoaderWait)
	}
	return nil
}

func (l LexiconConfig) validate() error {
	switch l.Source {
	case LexiconSourceFile:
		if l.Path == "" {
			return fmt.Errorf("path is required for source %q", l.Source)
		}
	case LexiconSourcePostgres:
	default:
		return fmt.Errorf("source must be %s or %s (got %q)", LexiconSourceFile, LexiconSourcePostgres, l.Source)
	}
	return nil
}

func (d DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", d.MinConns)
	}
	return nil
}
