// Package importer loads a tab-separated lexicon file into the lexemes table.
package importer

import (
	"context"

	"github.com/heartmarshall/trmorph/internal/lexicon"
)

// LexemeRepo is the write side of the lexeme repository consumed by the
// import pipeline. Implemented by lexeme.Repo.
type LexemeRepo interface {
	// BulkInsert skips records that already exist and returns how many were inserted.
	BulkInsert(ctx context.Context, records []lexicon.Record) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

// TxManager runs fn in a transaction. Implemented by postgres.TxManager.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
