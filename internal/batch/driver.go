// Package batch feeds pre-tokenized words to a pool of parsers and reports
// which of them could not be parsed.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/pkg/ctxutil"
)

// Parser is the per-worker parser the driver calls.
type Parser interface {
	Parse(input string) []*morpheme.Container
	ParseAll(inputs []string) [][]*morpheme.Container
}

// Mode selects how workers hand tokens to their parser.
type Mode string

const (
	// ModeBulk passes each batch to ParseAll.
	ModeBulk Mode = "bulk"
	// ModeSingle submits tokens one by one through a coalescing loader.
	ModeSingle Mode = "single"
)

func (m Mode) IsValid() bool {
	return m == ModeBulk || m == ModeSingle
}

// Config sizes the run.
type Config struct {
	BatchSize  int
	LoaderWait time.Duration
}

// Result pairs a token with its parses.
type Result struct {
	Token  string
	Parses []*morpheme.Container
}

// Report summarizes a run. Results are in token order.
type Report struct {
	RunID      uuid.UUID
	Mode       Mode
	Tokens     int
	Batches    int
	Parses     int
	Unparsable []string
	Duration   time.Duration
	Results    []Result
}

// Driver splits token streams into fixed-size batches and distributes them
// round-robin over one worker per parser.
type Driver struct {
	log     *slog.Logger
	parsers []Parser
	cfg     Config
}

// NewDriver creates a driver with one worker per parser.
func NewDriver(logger *slog.Logger, parsers []Parser, cfg Config) (*Driver, error) {
	if len(parsers) == 0 {
		return nil, fmt.Errorf("%w: batch driver needs at least one parser", domain.ErrInvalidConfig)
	}
	for i, p := range parsers {
		if p == nil {
			return nil, fmt.Errorf("%w: batch driver parser %d is nil", domain.ErrInvalidConfig, i)
		}
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", domain.ErrInvalidConfig, cfg.BatchSize)
	}
	if cfg.LoaderWait < 0 {
		return nil, fmt.Errorf("%w: loader wait must not be negative, got %s", domain.ErrInvalidConfig, cfg.LoaderWait)
	}

	return &Driver{
		log:     logger.With("component", "batch_driver"),
		parsers: parsers,
		cfg:     cfg,
	}, nil
}

// Workers returns the size of the worker pool.
func (d *Driver) Workers() int { return len(d.parsers) }

// Run parses tokens in bulk: every batch is one ParseAll call.
func (d *Driver) Run(ctx context.Context, tokens []string) (Report, error) {
	return d.run(ctx, ModeBulk, tokens, func(_ context.Context, w int, batch []string) ([][]*morpheme.Container, error) {
		return d.parsers[w].ParseAll(batch), nil
	})
}

// RunSingle submits every token separately. Each worker owns a loader
// whose batch function coalesces pending submissions into one ParseAll.
func (d *Driver) RunSingle(ctx context.Context, tokens []string) (Report, error) {
	loaders := make([]*dataloader.Loader[string, []*morpheme.Container], len(d.parsers))
	for i, p := range d.parsers {
		loaders[i] = d.newLoader(p)
	}

	return d.run(ctx, ModeSingle, tokens, func(ctx context.Context, w int, batch []string) ([][]*morpheme.Container, error) {
		loader := loaders[w]

		thunks := make([]dataloader.Thunk[[]*morpheme.Container], len(batch))
		for i, token := range batch {
			thunks[i] = loader.Load(ctx, token)
		}

		out := make([][]*morpheme.Container, len(batch))
		for i, thunk := range thunks {
			parses, err := thunk()
			if err != nil {
				return nil, fmt.Errorf("load %q: %w", batch[i], err)
			}
			out[i] = parses
		}
		return out, nil
	})
}

func (d *Driver) newLoader(p Parser) *dataloader.Loader[string, []*morpheme.Container] {
	batchFn := func(ctx context.Context, keys []string) []*dataloader.Result[[]*morpheme.Container] {
		results := make([]*dataloader.Result[[]*morpheme.Container], len(keys))
		if err := ctx.Err(); err != nil {
			for i := range results {
				results[i] = &dataloader.Result[[]*morpheme.Container]{Error: err}
			}
			return results
		}

		parsed := p.ParseAll(keys)
		for i := range keys {
			results[i] = &dataloader.Result[[]*morpheme.Container]{Data: parsed[i]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, []*morpheme.Container](d.cfg.LoaderWait),
		dataloader.WithBatchCapacity[string, []*morpheme.Container](d.cfg.BatchSize),
		dataloader.WithCache[string, []*morpheme.Container](&dataloader.NoCache[string, []*morpheme.Container]{}),
	)
}

type parseFunc func(ctx context.Context, worker int, batch []string) ([][]*morpheme.Container, error)

type span struct{ lo, hi int }

func (d *Driver) run(ctx context.Context, mode Mode, tokens []string, parse parseFunc) (Report, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	start := time.Now()

	spans := split(len(tokens), d.cfg.BatchSize)
	parses := make([][]*morpheme.Container, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	for w := range d.parsers {
		g.Go(func() error {
			wctx := ctxutil.WithWorkerID(gctx, w)
			for i := w; i < len(spans); i += len(d.parsers) {
				if err := wctx.Err(); err != nil {
					return err
				}
				s := spans[i]
				out, err := parse(wctx, w, tokens[s.lo:s.hi])
				if err != nil {
					return fmt.Errorf("worker %d batch %d: %w", w, i, err)
				}
				copy(parses[s.lo:s.hi], out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("batch run %s: %w", runID, err)
	}

	report := Report{
		RunID:      runID,
		Mode:       mode,
		Tokens:     len(tokens),
		Batches:    len(spans),
		Unparsable: []string{},
		Duration:   time.Since(start),
		Results:    make([]Result, len(tokens)),
	}
	seen := make(map[string]bool)
	for i, token := range tokens {
		report.Results[i] = Result{Token: token, Parses: parses[i]}
		report.Parses += len(parses[i])
		if len(parses[i]) == 0 && !seen[token] {
			seen[token] = true
			report.Unparsable = append(report.Unparsable, token)
		}
	}

	d.log.InfoContext(ctx, "batch run finished",
		slog.String("run_id", runID.String()),
		slog.String("mode", string(mode)),
		slog.Int("tokens", report.Tokens),
		slog.Int("batches", report.Batches),
		slog.Int("unparsable", len(report.Unparsable)),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

func split(n, size int) []span {
	spans := make([]span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo, min(lo+size, n)})
	}
	return spans
}
