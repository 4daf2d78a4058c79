package cache

import (
	"fmt"
	"sync"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

// TwoLevel buffers writes in a small map (L2) in front of a shared tier
// (L1). Once the buffer holds threshold entries it is written to L1 with a
// single PutAll and replaced by an empty map.
//
// One mutex guards the buffer map as a whole. The flush runs inside the
// same critical section, so a reader either finds an entry in the buffer or
// finds it already in L1.
type TwoLevel struct {
	l1        Cache
	threshold int

	mu sync.Mutex
	l2 map[string][]*morpheme.Container
}

// NewTwoLevel wraps l1 with a write buffer flushed every threshold entries.
func NewTwoLevel(threshold int, l1 Cache) (*TwoLevel, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: l2 flush threshold must be positive, got %d", domain.ErrInvalidConfig, threshold)
	}
	if l1 == nil {
		return nil, fmt.Errorf("%w: two-level cache needs an l1 tier", domain.ErrInvalidConfig)
	}
	return &TwoLevel{
		l1:        l1,
		threshold: threshold,
		l2:        make(map[string][]*morpheme.Container, threshold),
	}, nil
}

func (c *TwoLevel) Get(input string) ([]*morpheme.Container, bool) {
	c.mu.Lock()
	results, ok := c.l2[input]
	c.mu.Unlock()
	if ok {
		return results, true
	}
	return c.l1.Get(input)
}

func (c *TwoLevel) Put(input string, results []*morpheme.Container) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.l2[input] = normalize(results)
	if len(c.l2) >= c.threshold {
		c.flushLocked()
	}
}

// PutAll merges entries into the buffer, or, when buffer and entries
// together reach the threshold, writes both to L1 and empties the buffer.
func (c *TwoLevel) PutAll(entries map[string][]*morpheme.Container) {
	if len(entries) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.l2)+len(entries) >= c.threshold {
		c.flushLocked()
		normalized := make(map[string][]*morpheme.Container, len(entries))
		for input, results := range entries {
			normalized[input] = normalize(results)
		}
		c.l1.PutAll(normalized)
		return
	}

	for input, results := range entries {
		c.l2[input] = normalize(results)
	}
}

func (c *TwoLevel) flushLocked() {
	if len(c.l2) == 0 {
		return
	}
	c.l1.PutAll(c.l2)
	c.l2 = make(map[string][]*morpheme.Container, c.threshold)
}

// Flush writes the buffer to L1 regardless of its size.
func (c *TwoLevel) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked()
}

// Pending returns the number of buffered entries.
func (c *TwoLevel) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.l2)
}

// Build builds L1 if it is not built yet. The buffer itself has nothing to
// precompute. Calling Build again is a no-op.
func (c *TwoLevel) Build(p Parser) error {
	if c.l1.Built() {
		return nil
	}
	return c.l1.Build(p)
}

func (c *TwoLevel) Built() bool { return c.l1.Built() }
