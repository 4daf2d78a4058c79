package cache

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

// LRU is the large shared tier. It evicts the least recently used entry
// once maxCapacity is reached and is safe for concurrent use.
type LRU struct {
	items *lru.Cache[string, []*morpheme.Container]
	built atomic.Bool
}

// NewLRU creates the shared tier. The underlying list grows on demand, so
// initialCapacity is only checked against maxCapacity.
func NewLRU(initialCapacity, maxCapacity int) (*LRU, error) {
	if initialCapacity <= 0 {
		return nil, fmt.Errorf("%w: l1 initial capacity must be positive, got %d", domain.ErrInvalidConfig, initialCapacity)
	}
	if maxCapacity < initialCapacity {
		return nil, fmt.Errorf("%w: l1 max capacity %d is below initial capacity %d", domain.ErrInvalidConfig, maxCapacity, initialCapacity)
	}

	items, err := lru.New[string, []*morpheme.Container](maxCapacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return &LRU{items: items}, nil
}

func (c *LRU) Get(input string) ([]*morpheme.Container, bool) {
	return c.items.Get(input)
}

func (c *LRU) Put(input string, results []*morpheme.Container) {
	c.items.Add(input, normalize(results))
}

func (c *LRU) PutAll(entries map[string][]*morpheme.Container) {
	for input, results := range entries {
		c.items.Add(input, normalize(results))
	}
}

// Build marks the tier built. The LRU has nothing to precompute.
func (c *LRU) Build(Parser) error {
	c.built.Store(true)
	return nil
}

func (c *LRU) Built() bool { return c.built.Load() }

// Len returns the number of cached inputs.
func (c *LRU) Len() int { return c.items.Len() }
