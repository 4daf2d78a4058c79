package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// mockRepo records calls to verify pipeline behavior.
type mockRepo struct {
	mu sync.Mutex

	stored    map[string]bool
	batches   [][]lexicon.Record
	deleted   int
	insertErr error
	deleteErr error

	callLog []string
}

func newMockRepo(existing ...string) *mockRepo {
	m := &mockRepo{stored: make(map[string]bool)}
	for _, lemma := range existing {
		m.stored[lemma] = true
	}
	return m
}

func (m *mockRepo) logCall(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = append(m.callLog, name)
}

func (m *mockRepo) BulkInsert(_ context.Context, records []lexicon.Record) (int, error) {
	m.logCall("BulkInsert")
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, records)
	n := 0
	for _, rec := range records {
		if !m.stored[rec.Lemma] {
			m.stored[rec.Lemma] = true
			n++
		}
	}
	return n, nil
}

func (m *mockRepo) DeleteAll(_ context.Context) (int, error) {
	m.logCall("DeleteAll")
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.stored)
	m.deleted += n
	m.stored = make(map[string]bool)
	return n, nil
}

// mockTx runs fn directly and records whether it was committed.
type mockTx struct {
	calls     int
	committed bool
}

func (m *mockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	m.committed = true
	return nil
}

const sampleLexicon = `# sample
kitap	Noun		Voicing
masa	Noun
gelmek	Verb
Ankara	Noun	Prop
masa	Noun
`

func TestPipeline_Run(t *testing.T) {
	repo := newMockRepo()
	tx := &mockTx{}

	p := NewPipeline(testLogger(), repo, tx, Config{BatchSize: 2})
	res, err := p.Run(context.Background(), strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Read != 5 {
		t.Errorf("expected 5 read, got %d", res.Read)
	}
	if res.Duplicates != 1 {
		t.Errorf("expected 1 duplicate, got %d", res.Duplicates)
	}
	if res.Inserted != 4 {
		t.Errorf("expected 4 inserted, got %d", res.Inserted)
	}
	if len(repo.batches) != 2 {
		t.Errorf("expected 2 batches, got %d", len(repo.batches))
	}
	if tx.calls != 1 || !tx.committed {
		t.Errorf("expected one committed transaction, got calls=%d committed=%v", tx.calls, tx.committed)
	}
	for _, call := range repo.callLog {
		if call == "DeleteAll" {
			t.Error("DeleteAll should not be called without Replace")
		}
	}
}

func TestPipeline_ExistingSkipped(t *testing.T) {
	repo := newMockRepo("kitap", "masa")

	p := NewPipeline(testLogger(), repo, &mockTx{}, Config{BatchSize: 10})
	res, err := p.Run(context.Background(), strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Inserted != 2 || res.Skipped != 2 {
		t.Errorf("expected 2 inserted and 2 skipped, got %+v", res)
	}
}

func TestPipeline_ReplaceDeletesFirst(t *testing.T) {
	repo := newMockRepo("eski", "yeni")

	p := NewPipeline(testLogger(), repo, &mockTx{}, Config{BatchSize: 10, Replace: true})
	res, err := p.Run(context.Background(), strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.callLog) == 0 || repo.callLog[0] != "DeleteAll" {
		t.Fatalf("expected first call to be DeleteAll, got %v", repo.callLog)
	}
	if res.Deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", res.Deleted)
	}
	if res.Inserted != 4 {
		t.Errorf("expected 4 inserted, got %d", res.Inserted)
	}
}

func TestPipeline_DryRun(t *testing.T) {
	repo := newMockRepo()
	tx := &mockTx{}

	p := NewPipeline(testLogger(), repo, tx, Config{DryRun: true, Replace: true})
	res, err := p.Run(context.Background(), strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.callLog) != 0 || tx.calls != 0 {
		t.Errorf("dry run should not touch the repo, got calls %v", repo.callLog)
	}
	if res.Skipped != 4 {
		t.Errorf("expected 4 skipped, got %d", res.Skipped)
	}
}

func TestPipeline_InvalidLexiconWritesNothing(t *testing.T) {
	repo := newMockRepo()
	tx := &mockTx{}

	p := NewPipeline(testLogger(), repo, tx, Config{})
	_, err := p.Run(context.Background(), strings.NewReader("kitap\tNoun\nmasa\tThing\n"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if tx.calls != 0 {
		t.Error("invalid lexicon must not open a transaction")
	}
}

func TestPipeline_InsertErrorRollsBack(t *testing.T) {
	repo := newMockRepo()
	repo.insertErr = fmt.Errorf("connection reset")
	tx := &mockTx{}

	p := NewPipeline(testLogger(), repo, tx, Config{Replace: true})
	_, err := p.Run(context.Background(), strings.NewReader(sampleLexicon))
	if !errors.Is(err, repo.insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if tx.committed {
		t.Error("failed import must not commit")
	}
}

func TestBatchProcess(t *testing.T) {
	items := make([]int, 7)
	for i := range items {
		items[i] = i
	}

	var batches [][]int
	total, err := batchProcess(items, 3, func(batch []int) (int, error) {
		batches = append(batches, batch)
		return len(batch), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	if len(batches[2]) != 1 {
		t.Errorf("expected last batch size 1, got %d", len(batches[2]))
	}
}

func TestBatchProcess_ErrorStops(t *testing.T) {
	callCount := 0
	total, err := batchProcess([]int{1, 2, 3, 4, 5, 6}, 2, func(batch []int) (int, error) {
		callCount++
		if callCount == 2 {
			return 0, fmt.Errorf("batch error")
		}
		return len(batch), nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if callCount != 2 || total != 2 {
		t.Errorf("expected 2 calls and total 2, got %d calls total %d", callCount, total)
	}
}

func TestLoadConfig(t *testing.T) {
	path := t.TempDir() + "/import.yaml"
	if err := os.WriteFile(path, []byte("batch_size: 50\nreplace: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 50 || !cfg.Replace || cfg.DryRun {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := LoadConfig(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}
