package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	postgres "github.com/heartmarshall/trmorph/internal/adapter/postgres"
	"github.com/heartmarshall/trmorph/internal/adapter/postgres/lexeme"
	"github.com/heartmarshall/trmorph/internal/batch"
	"github.com/heartmarshall/trmorph/internal/cache"
	"github.com/heartmarshall/trmorph/internal/config"
	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morphotactics"
	"github.com/heartmarshall/trmorph/internal/parser"
	"github.com/heartmarshall/trmorph/internal/rootfinder"
)

// Engine holds the shared parser state and one caching parser per worker.
type Engine struct {
	log     *slog.Logger
	mode    batch.Mode
	parser  *parser.Parser
	shared  *cache.LRU
	static  *cache.Static
	buffers []*cache.TwoLevel
	workers []*cache.CachingParser
	driver  *batch.Driver
}

// NewEngine compiles the default grammar over lex and builds the cache
// tiers described by cfg. corpus is only used to compute the static
// frequent-word tier and may be nil when that tier is disabled.
func NewEngine(logger *slog.Logger, cfg config.Config, lex *lexicon.Lexicon, corpus []string) (*Engine, error) {
	if cfg.Batch.Workers <= 0 {
		return nil, fmt.Errorf("%w: engine needs at least one worker, got %d", domain.ErrInvalidConfig, cfg.Batch.Workers)
	}

	g, err := morphotactics.Build(morphotactics.DefaultLayers()...)
	if err != nil {
		return nil, fmt.Errorf("build morphotactics: %w", err)
	}
	compiled, err := morphotactics.Compile(g)
	if err != nil {
		return nil, fmt.Errorf("compile morphotactics: %w", err)
	}
	paths, err := parser.NewPredefinedPaths(logger, lex, g, parser.DefaultPredefinedPaths())
	if err != nil {
		return nil, fmt.Errorf("predefined paths: %w", err)
	}

	applier := parser.NewApplier(parser.NewExceptionTable(parser.DefaultExceptions()...))
	p, err := parser.New(logger, compiled, rootfinder.DefaultChain(lex), paths, applier)
	if err != nil {
		return nil, err
	}

	shared, err := cache.NewLRU(cfg.Cache.L1InitialCapacity, cfg.Cache.L1MaxCapacity)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		log:    logger.With("component", "engine"),
		mode:   batch.Mode(cfg.Batch.Mode),
		parser: p,
		shared: shared,
	}

	var l1 cache.Cache = shared
	if cfg.StaticCache.Enabled {
		e.static, err = cache.NewStatic(logger, corpus, cfg.StaticCache.CoverageRatio, shared)
		if err != nil {
			return nil, err
		}
		l1 = e.static
	}

	parsers := make([]batch.Parser, cfg.Batch.Workers)
	for i := range cfg.Batch.Workers {
		buf, err := cache.NewTwoLevel(cfg.Cache.L2FlushThreshold, l1)
		if err != nil {
			return nil, err
		}
		cp, err := cache.NewCachingParser(buf, p, true)
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", i, err)
		}
		e.buffers = append(e.buffers, buf)
		e.workers = append(e.workers, cp)
		parsers[i] = cp
	}

	e.driver, err = batch.NewDriver(logger, parsers, batch.Config{
		BatchSize:  cfg.Batch.BatchSize,
		LoaderWait: cfg.Batch.LoaderWait,
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("engine ready",
		slog.Int("lexemes", lex.Len()),
		slog.Int("predefined_roots", paths.Len()),
		slog.Int("workers", len(e.workers)),
		slog.Bool("static_cache", e.static != nil),
	)
	return e, nil
}

// Run parses tokens in the configured mode and flushes the worker buffers
// into the shared tier afterwards.
func (e *Engine) Run(ctx context.Context, tokens []string) (batch.Report, error) {
	var (
		report batch.Report
		err    error
	)
	if e.mode == batch.ModeSingle {
		report, err = e.driver.RunSingle(ctx, tokens)
	} else {
		report, err = e.driver.Run(ctx, tokens)
	}
	e.Flush()
	return report, err
}

// Flush moves every worker's pending entries into the shared tier.
func (e *Engine) Flush() {
	for _, b := range e.buffers {
		b.Flush()
	}
}

// Parser returns the uncached parser shared by all workers.
func (e *Engine) Parser() *parser.Parser { return e.parser }

// Worker returns the caching parser of worker i.
func (e *Engine) Worker(i int) *cache.CachingParser { return e.workers[i] }

// Workers returns the number of workers.
func (e *Engine) Workers() int { return len(e.workers) }

// Cached returns the number of entries in the shared tier.
func (e *Engine) Cached() int { return e.shared.Len() }

// StaticWords returns the size of the static tier, or 0 when it is disabled.
func (e *Engine) StaticWords() int {
	if e.static == nil {
		return 0
	}
	return e.static.Len()
}

// LoadLexicon reads lexicon records from the configured source and builds
// the lexicon.
func LoadLexicon(ctx context.Context, cfg config.Config, logger *slog.Logger) (*lexicon.Lexicon, error) {
	var (
		records []lexicon.Record
		err     error
	)

	switch cfg.Lexicon.Source {
	case config.LexiconSourcePostgres:
		records, err = loadFromPostgres(ctx, cfg.Database)
	default:
		records, err = loadFromFile(cfg.Lexicon.Path)
	}
	if err != nil {
		return nil, err
	}

	lex, err := lexicon.New(records)
	if err != nil {
		return nil, err
	}

	logger.Info("lexicon loaded",
		slog.String("source", cfg.Lexicon.Source),
		slog.Int("records", len(records)),
	)
	return lex, nil
}

func loadFromFile(path string) ([]lexicon.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	return lexicon.ReadRecords(f)
}

func loadFromPostgres(ctx context.Context, cfg config.DatabaseConfig) ([]lexicon.Record, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return lexeme.New(pool).ListRecords(ctx, lexeme.Filter{})
}
