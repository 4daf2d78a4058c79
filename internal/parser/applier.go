package parser

import (
	"strings"

	"github.com/heartmarshall/trmorph/internal/morpheme"
	"github.com/heartmarshall/trmorph/internal/morphotactics"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Applier advances containers along compiled edges. It never modifies its
// input and is safe for concurrent use.
type Applier struct {
	exceptions *ExceptionTable
}

// NewApplier returns an applier consulting exceptions, which may be nil.
func NewApplier(exceptions *ExceptionTable) *Applier {
	return &Applier{exceptions: exceptions}
}

// Apply follows edge e from c. It returns false when a guard rejects a step,
// the pending expectation rejects the surface, the lexicon forbids the
// suffix for this root, or the input does not continue with the surface.
func (a *Applier) Apply(c *morpheme.Container, e morphotactics.Edge) (*morpheme.Container, bool) {
	cur := c
	for _, st := range e.Steps {
		next, ok := a.step(cur, st)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Complete follows a zero-width terminal path from c. It refuses to finish
// a word while a vowel-start expectation is pending.
func (a *Applier) Complete(c *morpheme.Container, p morphotactics.Path) (*morpheme.Container, bool) {
	cur := c
	for _, st := range p {
		next, ok := a.step(cur, st)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if !cur.Completed() {
		return nil, false
	}
	return cur, true
}

func (a *Applier) step(c *morpheme.Container, st morphotactics.CompiledStep) (*morpheme.Container, bool) {
	t := st.Transition
	surface := st.Surface
	expect := st.Expect

	if ex, ok := a.exceptions.Lookup(c.Root().Lexeme, t.Suffix.Name); ok && applies(ex, c) {
		if ex.Forbid {
			return nil, false
		}
		if ex.Surface != "" {
			surface = ex.Surface
		}
	}

	if t.Guard != nil && !t.Guard.Satisfied(c) {
		return nil, false
	}

	attrs := c.Attributes()
	if surface == "" {
		expect = c.Expectation()
	} else {
		if !c.Expectation().Satisfied(surface) || !strings.HasPrefix(c.Remaining(), surface) {
			return nil, false
		}
		attrs = phonetics.Next(attrs, surface)
	}

	return c.Advance(morpheme.Step{Suffix: t.Suffix, Surface: surface, To: t.To}, attrs, expect), true
}

func applies(ex Exception, c *morpheme.Container) bool {
	return ex.When == nil || ex.When.Satisfied(c)
}
