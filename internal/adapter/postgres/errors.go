package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/trmorph/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and its key. Context errors pass through unmapped.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
