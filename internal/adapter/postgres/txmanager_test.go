package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/trmorph/internal/adapter/postgres"
)

const deleteLexemesSQL = `DELETE FROM lexemes`

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRunInTx_Commit(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(deleteLexemesSQL).WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, mock).Exec(ctx, deleteLexemesSQL)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("import failed")
	err := postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInTx_BeginError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatal("expected error when begin fails")
	}
	if called {
		t.Error("fn must not run without a transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		r := recover()
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	}()

	_ = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		panic("test panic")
	})
}

func TestQuerierFromCtx_Fallback(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	if got := postgres.QuerierFromCtx(context.Background(), mock); got != postgres.Querier(mock) {
		t.Error("expected fallback querier outside a transaction")
	}
}
