package cache

import (
	"fmt"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

// CachingParser answers from a cache and parses only misses. It is as safe
// for concurrent use as the cache and parser it wraps.
type CachingParser struct {
	cache  Cache
	parser Parser
}

// NewCachingParser wraps parser with c. When build is set the cache is
// built with parser before the first lookup.
func NewCachingParser(c Cache, parser Parser, build bool) (*CachingParser, error) {
	if c == nil || parser == nil {
		return nil, fmt.Errorf("%w: caching parser needs a cache and a parser", domain.ErrInvalidConfig)
	}
	if build {
		if err := c.Build(parser); err != nil {
			return nil, fmt.Errorf("build cache: %w", err)
		}
	}
	return &CachingParser{cache: c, parser: parser}, nil
}

func (p *CachingParser) Parse(input string) []*morpheme.Container {
	if results, ok := p.cache.Get(input); ok {
		return results
	}
	results := normalize(p.parser.Parse(input))
	p.cache.Put(input, results)
	return results
}

// ParseAll parses the distinct misses among inputs in one call and stores
// them with a single PutAll.
func (p *CachingParser) ParseAll(inputs []string) [][]*morpheme.Container {
	out := make([][]*morpheme.Container, len(inputs))

	var misses []string
	missAt := make(map[string][]int)
	for i, in := range inputs {
		if results, ok := p.cache.Get(in); ok {
			out[i] = results
			continue
		}
		if _, seen := missAt[in]; !seen {
			misses = append(misses, in)
		}
		missAt[in] = append(missAt[in], i)
	}
	if len(misses) == 0 {
		return out
	}

	parsed := p.parser.ParseAll(misses)
	entries := make(map[string][]*morpheme.Container, len(misses))
	for j, in := range misses {
		results := normalize(parsed[j])
		entries[in] = results
		for _, i := range missAt[in] {
			out[i] = results
		}
	}
	p.cache.PutAll(entries)
	return out
}
