// Package parser implements the contextless morphological parser: root
// discovery through the finder chain followed by depth-first traversal of
// the compiled suffix graph.
package parser

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/internal/morphotactics"
	"github.com/heartmarshall/trmorph/internal/phonetics"
	"github.com/heartmarshall/trmorph/internal/rootfinder"
)

// Option configures a Parser.
type Option func(*Parser)

// WithObserver registers fn to be called with every container the
// traversal visits, completed or not. fn must be safe for concurrent use
// when the parser is shared.
func WithObserver(fn func(*morpheme.Container)) Option {
	return func(p *Parser) { p.observe = fn }
}

// Parser enumerates every parse of a word. It holds no mutable state and
// is safe for concurrent use.
type Parser struct {
	log     *slog.Logger
	graph   *morphotactics.Compiled
	chain   rootfinder.Chain
	paths   *PredefinedPaths
	applier *Applier
	observe func(*morpheme.Container)
}

// New creates a parser. paths may be nil.
func New(logger *slog.Logger, graph *morphotactics.Compiled, chain rootfinder.Chain, paths *PredefinedPaths, applier *Applier, opts ...Option) (*Parser, error) {
	if graph == nil || applier == nil {
		return nil, fmt.Errorf("%w: parser needs a compiled graph and an applier", domain.ErrInvalidConfig)
	}
	if chain.Len() == 0 {
		return nil, fmt.Errorf("%w: parser needs at least one root finder", domain.ErrInvalidConfig)
	}

	p := &Parser{
		log:     logger.With("component", "parser"),
		graph:   graph,
		chain:   chain,
		paths:   paths,
		applier: applier,
		observe: func(*morpheme.Container) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse returns every parse of input in traversal order. An unparsable
// input yields an empty, non-nil slice.
func (p *Parser) Parse(input string) []*morpheme.Container {
	results := []*morpheme.Container{}
	if !utf8.ValidString(input) {
		return results
	}

	seq := phonetics.NewSequence(input)
	if seq.IsBlank() {
		return results
	}
	word := seq.String()

	for n := seq.Len(); n >= 1; n-- {
		for _, cand := range p.chain.Find(seq.Prefix(n), seq) {
			rootSurface := word[:seq.ByteLen(cand.Length)]
			results = p.parseRoot(cand, rootSurface, word, results)
		}
	}
	return results
}

// ParseAll parses every input; the i-th result belongs to the i-th input.
func (p *Parser) ParseAll(inputs []string) [][]*morpheme.Container {
	out := make([][]*morpheme.Container, len(inputs))
	for i, in := range inputs {
		out[i] = p.Parse(in)
	}
	return out
}

func (p *Parser) parseRoot(cand rootfinder.Candidate, rootSurface, word string, results []*morpheme.Container) []*morpheme.Container {
	if p.paths.Has(cand.Root) {
		for _, pc := range p.paths.Containers(cand.Root) {
			c, ok := pc.Rebase(rootSurface, word)
			if !ok {
				continue
			}
			p.observe(c)
			if c.Remaining() == "" {
				if c.Completed() {
					results = append(results, c)
				}
				continue
			}
			results = p.traverse(c, results)
		}
		return results
	}

	state := p.graph.RootState(cand.Root)
	if state == nil {
		p.log.Debug("no root state", slog.String("root", cand.Root.Surface), slog.String("pos", string(cand.Root.Lexeme.PrimaryPos)))
		return results
	}

	return p.traverse(morpheme.NewContainer(cand.Root, rootSurface, word, state), results)
}

func (p *Parser) traverse(c *morpheme.Container, results []*morpheme.Container) []*morpheme.Container {
	p.observe(c)

	if c.Remaining() == "" {
		for _, path := range p.graph.Terminals(c.State(), c.Attributes()) {
			if done, ok := p.applier.Complete(c, path); ok {
				p.observe(done)
				results = append(results, done)
			}
		}
		return results
	}

	for _, e := range p.graph.Edges(c.State(), c.Attributes()) {
		if next, ok := p.applier.Apply(c, e); ok {
			results = p.traverse(next, results)
		}
	}
	return results
}
