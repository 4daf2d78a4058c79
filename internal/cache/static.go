package cache

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

// Static serves precomputed results for the most frequent words of a
// corpus and delegates everything else to next. The precomputed set is
// read-only after Build.
type Static struct {
	log    *slog.Logger
	next   Cache
	corpus []string
	ratio  float64

	mu    sync.Mutex
	words atomic.Pointer[map[string][]*morpheme.Container]
}

// NewStatic creates a static tier over corpus that will precompute the
// frequent words covering ratio of all tokens.
func NewStatic(logger *slog.Logger, corpus []string, ratio float64, next Cache) (*Static, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("%w: static cache coverage ratio must be in (0, 1], got %v", domain.ErrInvalidConfig, ratio)
	}
	if next == nil {
		return nil, fmt.Errorf("%w: static cache needs a next tier", domain.ErrInvalidConfig)
	}
	return &Static{
		log:    logger.With("component", "static_cache"),
		next:   next,
		corpus: corpus,
		ratio:  ratio,
	}, nil
}

func (c *Static) Get(input string) ([]*morpheme.Container, bool) {
	if words := c.words.Load(); words != nil {
		if results, ok := (*words)[input]; ok {
			return results, true
		}
	}
	return c.next.Get(input)
}

func (c *Static) Put(input string, results []*morpheme.Container) {
	c.next.Put(input, results)
}

func (c *Static) PutAll(entries map[string][]*morpheme.Container) {
	c.next.PutAll(entries)
}

// Build parses the frequent words once, then builds the next tier.
func (c *Static) Build(p Parser) error {
	if p == nil {
		return fmt.Errorf("%w: static cache build needs a parser", domain.ErrInvalidConfig)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.words.Load() == nil {
		frequent := FrequentWords(c.corpus, c.ratio)
		parsed := p.ParseAll(frequent)

		words := make(map[string][]*morpheme.Container, len(frequent))
		for i, w := range frequent {
			words[w] = normalize(parsed[i])
		}
		c.words.Store(&words)

		c.log.Info("static cache built",
			slog.Int("corpus_tokens", len(c.corpus)),
			slog.Int("words", len(words)),
		)
	}

	if c.next.Built() {
		return nil
	}
	return c.next.Build(p)
}

func (c *Static) Built() bool { return c.words.Load() != nil }

// Len returns the number of precomputed words.
func (c *Static) Len() int {
	if words := c.words.Load(); words != nil {
		return len(*words)
	}
	return 0
}

// FrequentWords returns the words seen at least twice in corpus, most
// frequent first, stopping once they cover ratio of all tokens. Ties are
// ordered alphabetically.
func FrequentWords(corpus []string, ratio float64) []string {
	counts := make(map[string]int)
	for _, w := range corpus {
		counts[w]++
	}

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(counts))
	for w, n := range counts {
		if n >= 2 {
			ranked = append(ranked, wordCount{w, n})
		}
	}
	slices.SortFunc(ranked, func(a, b wordCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.word, b.word)
	})

	target := ratio * float64(len(corpus))
	covered := 0
	words := make([]string, 0, len(ranked))
	for _, wc := range ranked {
		if float64(covered) >= target {
			break
		}
		words = append(words, wc.word)
		covered += wc.count
	}
	return words
}
