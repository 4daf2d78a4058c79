package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

func TestNewCachingParser(t *testing.T) {
	t.Parallel()

	_, err := NewCachingParser(nil, newParserMock(), false)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = NewCachingParser(newCacheMock(), nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	l1 := newCacheMock()
	_, err = NewCachingParser(l1, newParserMock(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, l1.builds)
}

func TestCachingParser_Parse(t *testing.T) {
	t.Parallel()

	l1, err := NewLRU(16, 16)
	require.NoError(t, err)
	tl, err := NewTwoLevel(4, l1)
	require.NoError(t, err)

	inner := newParserMock()
	p, err := NewCachingParser(tl, inner, false)
	require.NoError(t, err)

	first := p.Parse("masa")
	second := p.Parse("masa")

	assert.Same(t, first[0], second[0], "cached results are returned as stored")
	assert.Equal(t, []string{"masa"}, inner.parseCalls())
}

func TestCachingParser_ParseUnparsable(t *testing.T) {
	t.Parallel()

	inner := newParserMock()
	inner.ParseFunc = func(string) []*morpheme.Container { return nil }

	p, err := NewCachingParser(newCacheMock(), inner, false)
	require.NoError(t, err)

	got := p.Parse("12#$%")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	p.Parse("12#$%")
	assert.Len(t, inner.parseCalls(), 1, "empty result is a cache hit")
}

func TestCachingParser_ParseAll(t *testing.T) {
	t.Parallel()

	c := newCacheMock()
	c.Put("ev", parsed("ev"))

	inner := newParserMock()
	p, err := NewCachingParser(c, inner, false)
	require.NoError(t, err)

	got := p.ParseAll([]string{"masa", "ev", "kitap", "masa"})

	require.Len(t, got, 4)
	assert.Equal(t, "masa", got[0][0].Input())
	assert.Equal(t, "ev", got[1][0].Input())
	assert.Equal(t, "kitap", got[2][0].Input())
	assert.Same(t, got[0][0], got[3][0])

	assert.Equal(t, [][]string{{"masa", "kitap"}}, inner.parseAllCalls(), "misses are parsed once each in one batch")
	assert.Equal(t, []int{2}, c.putAllSizes(), "misses are stored with one bulk write")

	p.ParseAll([]string{"masa", "kitap"})
	assert.Len(t, inner.parseAllCalls(), 1, "all hits skip the parser")
	assert.Empty(t, inner.parseCalls())
}
