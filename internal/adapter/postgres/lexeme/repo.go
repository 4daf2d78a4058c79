// Package lexeme implements the lexicon repository using PostgreSQL. It
// stores one row per lexeme and serves the records the parser's lexicon is
// built from.
package lexeme

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/trmorph/internal/adapter/postgres"
	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
)

const table = "lexemes"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Filter narrows ListRecords. Zero values mean no filter.
type Filter struct {
	PrimaryPos   []lexicon.PrimaryPos
	SecondaryPos *lexicon.SecondaryPos
	LemmaPrefix  string
	Limit        uint64
}

// row is the scan target of a lexemes row.
type row struct {
	ID           uuid.UUID `db:"id"`
	Lemma        string    `db:"lemma"`
	PrimaryPos   string    `db:"primary_pos"`
	SecondaryPos string    `db:"secondary_pos"`
	Attributes   []string  `db:"attributes"`
	CreatedAt    time.Time `db:"created_at"`
}

// Repo provides lexeme persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lexeme repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListRecords returns lexicon records ordered by lemma. Returns an empty
// slice (not nil) when nothing matches.
func (r *Repo) ListRecords(ctx context.Context, f Filter) ([]lexicon.Record, error) {
	q := psql.
		Select("id", "lemma", "primary_pos", "secondary_pos", "attributes", "created_at").
		From(table).
		OrderBy("lemma", "primary_pos", "secondary_pos")

	if len(f.PrimaryPos) > 0 {
		pos := make([]string, len(f.PrimaryPos))
		for i, p := range f.PrimaryPos {
			pos[i] = string(p)
		}
		q = q.Where(squirrel.Eq{"primary_pos": pos})
	}
	if f.SecondaryPos != nil {
		q = q.Where(squirrel.Eq{"secondary_pos": string(*f.SecondaryPos)})
	}
	if f.LemmaPrefix != "" {
		q = q.Where(squirrel.Like{"lemma": f.LemmaPrefix + "%"})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lexemes query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lexemes: %w", err)
	}

	records := make([]lexicon.Record, len(rows))
	for i, rw := range rows {
		records[i] = toRecord(rw)
	}
	return records, nil
}

// Count returns the number of stored lexemes.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count lexemes query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lexemes: %w", err)
	}
	return n, nil
}

// DeleteAll removes every lexeme and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	sql, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete lexemes query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete lexemes: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

const insertSQL = `INSERT INTO lexemes (id, lemma, primary_pos, secondary_pos, attributes)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (lemma, primary_pos, secondary_pos) DO NOTHING`

// BulkInsert inserts records using pgx.Batch. Records that already exist
// (same lemma and parts of speech) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsert(ctx context.Context, records []lexicon.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(insertSQL, insertArgs(rec)...)
	}

	return r.sendBatchExec(ctx, batch)
}

// insertArgs stores the lemma in the same normalized form the ID is derived from.
func insertArgs(rec lexicon.Record) []any {
	attrs := make([]string, len(rec.Attributes))
	for i, a := range rec.Attributes {
		attrs[i] = string(a)
	}
	return []any{
		rec.LexemeID(), domain.NormalizeToken(rec.Lemma), string(rec.PrimaryPos), string(rec.SecondaryPos), attrs,
	}
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "lexeme batch item", fmt.Sprint(i))
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func toRecord(rw row) lexicon.Record {
	attrs := make([]lexicon.Attribute, len(rw.Attributes))
	for i, a := range rw.Attributes {
		attrs[i] = lexicon.Attribute(a)
	}
	return lexicon.Record{
		ID:           rw.ID,
		Lemma:        rw.Lemma,
		PrimaryPos:   lexicon.PrimaryPos(rw.PrimaryPos),
		SecondaryPos: lexicon.SecondaryPos(rw.SecondaryPos),
		Attributes:   attrs,
	}
}
