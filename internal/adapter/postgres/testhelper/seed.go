package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
)

// UniqueLemma returns base with a short unique suffix so tests sharing one
// database do not collide on the (lemma, pos) key.
func UniqueLemma(base string) string {
	return base + "-" + uuid.New().String()[:8]
}

// SeedLexemes inserts records directly and returns them with their IDs set.
func SeedLexemes(t *testing.T, pool *pgxpool.Pool, records ...lexicon.Record) []lexicon.Record {
	t.Helper()
	ctx := context.Background()

	out := make([]lexicon.Record, len(records))
	for i, rec := range records {
		rec.ID = rec.LexemeID()
		rec.Lemma = domain.NormalizeToken(rec.Lemma)
		attrs := make([]string, len(rec.Attributes))
		for j, a := range rec.Attributes {
			attrs[j] = string(a)
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO lexemes (id, lemma, primary_pos, secondary_pos, attributes)
			 VALUES ($1, $2, $3, $4, $5)`,
			rec.ID, rec.Lemma, string(rec.PrimaryPos), string(rec.SecondaryPos), attrs,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLexemes insert %q: %v", rec.Lemma, err)
		}
		out[i] = rec
	}
	return out
}
