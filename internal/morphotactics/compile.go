package morphotactics

import (
	"fmt"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// CompiledStep is a transition with its surface resolved for a given set of
// phonetic attributes.
type CompiledStep struct {
	Transition *Transition
	Surface    string
	Expect     phonetics.Expectation
}

// Edge is a traversal unit: zero or more empty-surface steps followed by
// exactly one step that consumes Surface.
type Edge struct {
	Steps   []CompiledStep
	Surface string
	Target  *morpheme.State
}

// Path is a sequence of empty-surface steps that ends in an accepting state.
// The empty path means the state itself accepts.
type Path []CompiledStep

type compileKey struct {
	state *morpheme.State
	attrs phonetics.Attributes
}

// Compiled is a graph indexed by state and phonetic attributes. It is
// read-only and safe for concurrent use.
type Compiled struct {
	graph     Graph
	edges     map[compileKey][]Edge
	terminals map[compileKey][]Path
}

// Compile resolves every transition form for every reachable attribute set
// and folds empty surfaces into the consuming step that follows them. A
// cycle of empty surfaces is a grammar error.
func Compile(g Graph) (*Compiled, error) {
	c := &Compiled{
		graph:     g,
		edges:     make(map[compileKey][]Edge),
		terminals: make(map[compileKey][]Path),
	}

	universe := phonetics.AllAttributeSets()
	for _, s := range g.states {
		for _, a := range universe {
			key := compileKey{s, a}
			if s.Accepting {
				c.terminals[key] = append(c.terminals[key], Path{})
			}
			onStack := map[*morpheme.State]bool{s: true}
			if err := c.walk(key, s, a, nil, onStack); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Compiled) walk(key compileKey, s *morpheme.State, a phonetics.Attributes, prefix []CompiledStep, onStack map[*morpheme.State]bool) error {
	for _, t := range c.graph.transitions[s] {
		seen := map[string]bool{}
		for _, f := range t.Forms {
			if !a.Has(f.Requires) {
				continue
			}
			surface, ok := phonetics.Expand(a, f.Template)
			if !ok || seen[surface] {
				continue
			}
			seen[surface] = true

			steps := make([]CompiledStep, len(prefix), len(prefix)+1)
			copy(steps, prefix)
			steps = append(steps, CompiledStep{Transition: t, Surface: surface, Expect: f.Expect})

			if surface != "" {
				c.edges[key] = append(c.edges[key], Edge{Steps: steps, Surface: surface, Target: t.To})
				continue
			}

			if onStack[t.To] {
				return fmt.Errorf("%w: empty-surface cycle through %s (%s)", domain.ErrGrammar, t.To.Name, t.Suffix.Name)
			}
			if t.To.Accepting {
				c.terminals[key] = append(c.terminals[key], Path(steps))
			}
			onStack[t.To] = true
			if err := c.walk(key, t.To, a, steps, onStack); err != nil {
				return err
			}
			delete(onStack, t.To)
		}
	}
	return nil
}

// Edges returns the consuming edges leaving s when the surface so far ends
// with attributes a.
func (c *Compiled) Edges(s *morpheme.State, a phonetics.Attributes) []Edge {
	return c.edges[compileKey{s, a}]
}

// Terminals returns the empty-surface completions from s.
func (c *Compiled) Terminals(s *morpheme.State, a phonetics.Attributes) []Path {
	return c.terminals[compileKey{s, a}]
}

// Graph returns the source graph.
func (c *Compiled) Graph() Graph { return c.graph }

// RootState returns the state a root starts in, or nil.
func (c *Compiled) RootState(root *lexicon.Root) *morpheme.State {
	return c.graph.RootState(root.Lexeme.PrimaryPos, root.Lexeme.SecondaryPos)
}
