package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trmorph/internal/lexicon"
)

// Result holds the outcome of one import.
type Result struct {
	Read       int
	Duplicates int
	Deleted    int
	Inserted   int
	Skipped    int
	Duration   time.Duration
}

// Pipeline validates a lexicon file and writes it in batches inside one
// transaction.
type Pipeline struct {
	log  *slog.Logger
	repo LexemeRepo
	tx   TxManager
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo LexemeRepo, tx TxManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "importer"),
		repo: repo,
		tx:   tx,
		cfg:  cfg,
	}
}

// Run reads records from r and imports them. Records are validated by
// building a lexicon from them first, so an invalid file writes nothing.
// With Replace set, existing lexemes are deleted in the same transaction.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()

	records, err := lexicon.ReadRecords(r)
	if err != nil {
		return Result{}, err
	}
	if _, err := lexicon.New(records); err != nil {
		return Result{}, fmt.Errorf("validate lexicon: %w", err)
	}

	unique := dedupe(records)
	result := Result{
		Read:       len(records),
		Duplicates: len(records) - len(unique),
	}

	if p.cfg.DryRun {
		result.Skipped = len(unique)
		result.Duration = time.Since(start)
		p.log.Info("dry run, nothing written",
			slog.Int("records", result.Read),
			slog.Int("duplicates", result.Duplicates),
		)
		return result, nil
	}

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if p.cfg.Replace {
			deleted, err := p.repo.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete lexemes: %w", err)
			}
			result.Deleted = deleted
		}

		inserted, err := batchProcess(unique, p.cfg.BatchSize, func(batch []lexicon.Record) (int, error) {
			return p.repo.BulkInsert(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert lexemes: %w", err)
		}
		result.Inserted = inserted
		result.Skipped = len(unique) - inserted
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	result.Duration = time.Since(start)
	p.log.Info("import completed",
		slog.Int("records", result.Read),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("deleted", result.Deleted),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// dedupe keeps the first record per lexeme ID, preserving order.
func dedupe(records []lexicon.Record) []lexicon.Record {
	seen := make(map[uuid.UUID]struct{}, len(records))
	out := make([]lexicon.Record, 0, len(records))
	for _, rec := range records {
		id := rec.LexemeID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// batchProcess splits items into batches and calls fn for each, summing the results.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
