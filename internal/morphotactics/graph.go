// Package morphotactics builds the suffix graph from layered grammar
// fragments and compiles it for traversal.
package morphotactics

import (
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Form is one surface alternative of a suffix. Requires restricts the form
// to surfaces ending with those attributes; Expect constrains the suffix
// that follows.
type Form struct {
	Template string
	Requires phonetics.Attributes
	Expect   phonetics.Expectation
}

// F is shorthand for a form with no restrictions.
func F(template string) Form { return Form{Template: template} }

// Transition is an edge of the suffix graph.
type Transition struct {
	From   *morpheme.State
	To     *morpheme.State
	Suffix *morpheme.Suffix
	Forms  []Form
	Guard  Condition
}

type rootKey struct {
	primary   lexicon.PrimaryPos
	secondary lexicon.SecondaryPos
}

// Graph is an immutable suffix graph value. Extend returns a new graph and
// leaves the receiver untouched.
type Graph struct {
	states      []*morpheme.State
	byName      map[string]*morpheme.State
	suffixes    map[string]*morpheme.Suffix
	transitions map[*morpheme.State][]*Transition
	roots       map[rootKey]*morpheme.State
}

// Layer is a grammar fragment: it receives the graph built so far and
// returns an extended one.
type Layer func(Graph) (Graph, error)

// Build applies layers to an empty graph in order.
func Build(layers ...Layer) (Graph, error) {
	var g Graph
	for i, layer := range layers {
		next, err := layer(g)
		if err != nil {
			return Graph{}, fmt.Errorf("grammar layer %d: %w", i, err)
		}
		g = next
	}
	return g, nil
}

// Extend clones the graph and lets fn add to the clone.
func (g Graph) Extend(fn func(b *Builder) error) (Graph, error) {
	clone := Graph{
		states:      slices.Clone(g.states),
		byName:      maps.Clone(g.byName),
		suffixes:    maps.Clone(g.suffixes),
		transitions: make(map[*morpheme.State][]*Transition, len(g.transitions)),
		roots:       maps.Clone(g.roots),
	}
	if clone.byName == nil {
		clone.byName = map[string]*morpheme.State{}
		clone.suffixes = map[string]*morpheme.Suffix{}
		clone.roots = map[rootKey]*morpheme.State{}
	}
	for s, ts := range g.transitions {
		clone.transitions[s] = slices.Clone(ts)
	}

	b := &Builder{g: &clone}
	if err := fn(b); err != nil {
		return Graph{}, err
	}
	if b.err != nil {
		return Graph{}, b.err
	}
	return clone, nil
}

// State returns the state named name or nil.
func (g Graph) State(name string) *morpheme.State { return g.byName[name] }

// Suffix returns the suffix named name or nil.
func (g Graph) Suffix(name string) *morpheme.Suffix { return g.suffixes[name] }

// States returns every state in declaration order.
func (g Graph) States() []*morpheme.State { return slices.Clone(g.states) }

// Transitions returns the outgoing transitions of s in declaration order.
func (g Graph) Transitions(s *morpheme.State) []*Transition { return g.transitions[s] }

// RootState returns the state a root of the given part of speech starts
// in, or nil when the graph does not handle it.
func (g Graph) RootState(primary lexicon.PrimaryPos, secondary lexicon.SecondaryPos) *morpheme.State {
	if s, ok := g.roots[rootKey{primary, secondary}]; ok {
		return s
	}
	return g.roots[rootKey{primary, lexicon.SecondaryNone}]
}

// Builder mutates a graph clone inside Extend. The first error is kept and
// later calls become no-ops.
type Builder struct {
	g   *Graph
	err error
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: "+format, append([]any{domain.ErrGrammar}, args...)...)
	}
}

// AddState registers a new state.
func (b *Builder) AddState(name string, pos lexicon.PrimaryPos, accepting bool) *morpheme.State {
	if _, ok := b.g.byName[name]; ok {
		b.fail("duplicate state %s", name)
		return b.g.byName[name]
	}
	s := &morpheme.State{Name: name, Pos: pos, Accepting: accepting}
	b.g.states = append(b.g.states, s)
	b.g.byName[name] = s
	return s
}

// State returns an existing state, recording an error if it is missing.
func (b *Builder) State(name string) *morpheme.State {
	s, ok := b.g.byName[name]
	if !ok {
		b.fail("unknown state %s", name)
	}
	return s
}

// AddSuffix registers a new suffix.
func (b *Builder) AddSuffix(name, pretty string, derivation lexicon.PrimaryPos) *morpheme.Suffix {
	if _, ok := b.g.suffixes[name]; ok {
		b.fail("duplicate suffix %s", name)
		return b.g.suffixes[name]
	}
	s := &morpheme.Suffix{Name: name, Pretty: pretty, Derivation: derivation}
	b.g.suffixes[name] = s
	return s
}

// Suffix returns an existing suffix, recording an error if it is missing.
func (b *Builder) Suffix(name string) *morpheme.Suffix {
	s, ok := b.g.suffixes[name]
	if !ok {
		b.fail("unknown suffix %s", name)
	}
	return s
}

// Connect adds a transition. guard may be nil.
func (b *Builder) Connect(from, to *morpheme.State, suffix *morpheme.Suffix, guard Condition, forms ...Form) {
	if from == nil || to == nil || suffix == nil {
		b.fail("incomplete transition %v -> %v (%v)", from, to, suffix)
		return
	}
	if len(forms) == 0 {
		b.fail("transition %s -> %s (%s) has no forms", from.Name, to.Name, suffix.Name)
		return
	}
	b.g.transitions[from] = append(b.g.transitions[from], &Transition{
		From:   from,
		To:     to,
		Suffix: suffix,
		Forms:  slices.Clone(forms),
		Guard:  guard,
	})
}

// BindRoot makes roots with the given part of speech start in s.
func (b *Builder) BindRoot(primary lexicon.PrimaryPos, secondary lexicon.SecondaryPos, s *morpheme.State) {
	if s == nil {
		b.fail("nil root state for %s/%s", primary, secondary)
		return
	}
	b.g.roots[rootKey{primary, secondary}] = s
}

// Err returns the first recorded error.
func (b *Builder) Err() error { return b.err }
