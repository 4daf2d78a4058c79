package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

var acceptState = &morpheme.State{Name: "TEST_TERMINAL", Accepting: true}

// parserMock parses every token that does not contain a digit into one
// result and records the batches it was given.
type parserMock struct {
	ParseAllFunc func(inputs []string) [][]*morpheme.Container

	mu      sync.Mutex
	batches [][]string
}

func (m *parserMock) Parse(input string) []*morpheme.Container {
	return m.ParseAll([]string{input})[0]
}

func (m *parserMock) ParseAll(inputs []string) [][]*morpheme.Container {
	m.mu.Lock()
	m.batches = append(m.batches, append([]string(nil), inputs...))
	m.mu.Unlock()

	if m.ParseAllFunc != nil {
		return m.ParseAllFunc(inputs)
	}
	out := make([][]*morpheme.Container, len(inputs))
	for i, in := range inputs {
		out[i] = []*morpheme.Container{}
		if !strings.ContainsAny(in, "0123456789") {
			root := lexicon.NewSyntheticRoot(in, lexicon.Noun, lexicon.SecondaryNone, 0)
			out[i] = append(out[i], morpheme.NewContainer(root, in, in, acceptState))
		}
	}
	return out
}

func (m *parserMock) calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.batches...)
}

func newMocks(n int) ([]Parser, []*parserMock) {
	parsers := make([]Parser, n)
	mocks := make([]*parserMock, n)
	for i := range n {
		mocks[i] = &parserMock{}
		parsers[i] = mocks[i]
	}
	return parsers, mocks
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("t%c", 'a'+i%26)
	}
	return out
}

func TestNewDriver_Validation(t *testing.T) {
	t.Parallel()

	parsers, _ := newMocks(2)

	tests := []struct {
		name    string
		parsers []Parser
		cfg     Config
	}{
		{"no parsers", nil, Config{BatchSize: 10}},
		{"nil parser", []Parser{parsers[0], nil}, Config{BatchSize: 10}},
		{"zero batch size", parsers, Config{BatchSize: 0}},
		{"negative wait", parsers, Config{BatchSize: 10, LoaderWait: -time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewDriver(testLogger(), tt.parsers, tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestDriver_Run(t *testing.T) {
	t.Parallel()

	parsers, mocks := newMocks(2)
	d, err := NewDriver(testLogger(), parsers, Config{BatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Workers())

	in := []string{"masa", "ev", "12#$%", "kitap", "3x", "ev", "12#$%"}
	report, err := d.Run(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, ModeBulk, report.Mode)
	assert.Equal(t, 7, report.Tokens)
	assert.Equal(t, 3, report.Batches)
	assert.Equal(t, 4, report.Parses)
	assert.Equal(t, []string{"12#$%", "3x"}, report.Unparsable)

	require.Len(t, report.Results, len(in))
	for i, r := range report.Results {
		assert.Equal(t, in[i], r.Token)
	}

	assert.Equal(t, [][]string{{"masa", "ev", "12#$%"}, {"12#$%"}}, mocks[0].calls(), "batches 0 and 2 go to worker 0")
	assert.Equal(t, [][]string{{"kitap", "3x", "ev"}}, mocks[1].calls())
}

func TestDriver_RunEmpty(t *testing.T) {
	t.Parallel()

	parsers, mocks := newMocks(3)
	d, err := NewDriver(testLogger(), parsers, Config{BatchSize: 5})
	require.NoError(t, err)

	report, err := d.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Batches)
	assert.NotNil(t, report.Unparsable)
	for _, m := range mocks {
		assert.Empty(t, m.calls())
	}
}

func TestDriver_RunCancelled(t *testing.T) {
	t.Parallel()

	parsers, mocks := newMocks(1)
	d, err := NewDriver(testLogger(), parsers, Config{BatchSize: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Run(ctx, tokens(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, mocks[0].calls())
}

func TestDriver_RunSingle(t *testing.T) {
	t.Parallel()

	parsers, mocks := newMocks(2)
	d, err := NewDriver(testLogger(), parsers, Config{BatchSize: 50, LoaderWait: 20 * time.Millisecond})
	require.NoError(t, err)

	in := append(tokens(40), "12#$%")
	single, err := d.RunSingle(context.Background(), in)
	require.NoError(t, err)

	bulk, err := d.Run(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, ModeSingle, single.Mode)
	assert.Equal(t, bulk.Parses, single.Parses)
	assert.Equal(t, bulk.Unparsable, single.Unparsable)
	require.Len(t, single.Results, len(in))
	for i := range in {
		assert.Equal(t, in[i], single.Results[i].Token)
		assert.Equal(t, len(bulk.Results[i].Parses), len(single.Results[i].Parses))
	}

	// The single run used worker 0 for the only batch: its loader coalesced
	// the 41 submissions into fewer ParseAll calls.
	var keys, calls int
	for _, b := range mocks[0].calls() {
		keys += len(b)
		calls++
	}
	assert.Equal(t, 2*len(in), keys, "every token is parsed once per run")
	assert.Less(t, calls, len(in)+1)
	assert.Empty(t, mocks[1].calls())
}
