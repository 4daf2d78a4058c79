// Package cache stores parse results keyed by the input token. The tiers
// compose: a shared LRU, a per-worker write buffer in front of it and an
// optional precomputed tier for frequent words.
package cache

import "github.com/heartmarshall/trmorph/internal/morpheme"

// Parser is the parser a cache tier may use to pre-populate itself.
type Parser interface {
	Parse(input string) []*morpheme.Container
	ParseAll(inputs []string) [][]*morpheme.Container
}

// Cache is a tier of parse results. An empty result list is a cached
// "unparsable" answer and is distinct from a miss.
type Cache interface {
	Get(input string) ([]*morpheme.Container, bool)
	Put(input string, results []*morpheme.Container)
	PutAll(entries map[string][]*morpheme.Container)
	Build(p Parser) error
	Built() bool
}

func normalize(results []*morpheme.Container) []*morpheme.Container {
	if results == nil {
		return []*morpheme.Container{}
	}
	return results
}
