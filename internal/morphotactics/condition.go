package morphotactics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morpheme"
)

// Condition guards a transition against the container built so far.
type Condition interface {
	Satisfied(c *morpheme.Container) bool
	String() string
}

type conditionFunc struct {
	name string
	fn   func(c *morpheme.Container) bool
}

func (f conditionFunc) Satisfied(c *morpheme.Container) bool { return f.fn(c) }
func (f conditionFunc) String() string                       { return f.name }

// RootHasPrimaryPos holds when the root lexeme has one of the given parts of speech.
func RootHasPrimaryPos(pos ...lexicon.PrimaryPos) Condition {
	return conditionFunc{
		name: fmt.Sprintf("RootHasPrimaryPos(%v)", pos),
		fn: func(c *morpheme.Container) bool {
			return slices.Contains(pos, c.Root().Lexeme.PrimaryPos)
		},
	}
}

// RootHasSecondaryPos holds when the root lexeme has one of the given secondary parts of speech.
func RootHasSecondaryPos(pos ...lexicon.SecondaryPos) Condition {
	return conditionFunc{
		name: fmt.Sprintf("RootHasSecondaryPos(%v)", pos),
		fn: func(c *morpheme.Container) bool {
			return slices.Contains(pos, c.Root().Lexeme.SecondaryPos)
		},
	}
}

// RootIsVariant holds when the root is the given allomorph.
func RootIsVariant(v lexicon.Variant) Condition {
	return conditionFunc{
		name: fmt.Sprintf("RootIsVariant(%s)", v),
		fn: func(c *morpheme.Container) bool {
			return c.Root().Variant == v
		},
	}
}

// HasLastSuffixes holds when the most recent suffixes are exactly names, in order.
func HasLastSuffixes(names ...string) Condition {
	return conditionFunc{
		name: "HasLastSuffixes(" + strings.Join(names, ",") + ")",
		fn: func(c *morpheme.Container) bool {
			steps := c.Steps()
			if len(steps) < len(names) {
				return false
			}
			tail := steps[len(steps)-len(names):]
			for i, name := range names {
				if tail[i].Suffix.Name != name {
					return false
				}
			}
			return true
		},
	}
}

// HasSuffix holds when any applied suffix is named name.
func HasSuffix(name string) Condition {
	return conditionFunc{
		name: "HasSuffix(" + name + ")",
		fn: func(c *morpheme.Container) bool {
			return c.HasSuffix(name)
		},
	}
}

// Not negates cond.
func Not(cond Condition) Condition {
	return conditionFunc{
		name: "Not(" + cond.String() + ")",
		fn: func(c *morpheme.Container) bool {
			return !cond.Satisfied(c)
		},
	}
}

// And holds when every condition holds.
func And(conds ...Condition) Condition {
	names := make([]string, len(conds))
	for i, cond := range conds {
		names[i] = cond.String()
	}
	return conditionFunc{
		name: "And(" + strings.Join(names, ",") + ")",
		fn: func(c *morpheme.Container) bool {
			for _, cond := range conds {
				if !cond.Satisfied(c) {
					return false
				}
			}
			return true
		},
	}
}

// Or holds when any condition holds.
func Or(conds ...Condition) Condition {
	names := make([]string, len(conds))
	for i, cond := range conds {
		names[i] = cond.String()
	}
	return conditionFunc{
		name: "Or(" + strings.Join(names, ",") + ")",
		fn: func(c *morpheme.Container) bool {
			for _, cond := range conds {
				if cond.Satisfied(c) {
					return true
				}
			}
			return false
		},
	}
}
