package morpheme

import (
	"strings"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Container is a partial or complete parse of an input. It is immutable;
// Advance returns a new container and never changes the receiver.
type Container struct {
	root        *lexicon.Root
	rootSurface string
	input       string
	consumed    int
	state       *State
	attrs       phonetics.Attributes
	expect      phonetics.Expectation
	steps       []Step
}

// NewContainer seeds a parse of input whose first len(rootSurface) bytes
// were matched by root. rootSurface may differ from root.Surface, for
// example a proper noun followed by an apostrophe.
func NewContainer(root *lexicon.Root, rootSurface, input string, state *State) *Container {
	return &Container{
		root:        root,
		rootSurface: rootSurface,
		input:       input,
		consumed:    len(rootSurface),
		state:       state,
		attrs:       root.Attributes,
		expect:      root.Expect,
	}
}

func (c *Container) Root() *lexicon.Root                { return c.root }
func (c *Container) RootSurface() string                { return c.rootSurface }
func (c *Container) Input() string                      { return c.input }
func (c *Container) Consumed() int                      { return c.consumed }
func (c *Container) Remaining() string                  { return c.input[c.consumed:] }
func (c *Container) State() *State                      { return c.state }
func (c *Container) Attributes() phonetics.Attributes   { return c.attrs }
func (c *Container) Expectation() phonetics.Expectation { return c.expect }

// Steps returns the applied suffixes. The slice must not be modified.
func (c *Container) Steps() []Step { return c.steps }

// Surface returns the consumed part of the input.
func (c *Container) Surface() string { return c.input[:c.consumed] }

// HasSuffix reports whether a suffix with the given name was applied.
func (c *Container) HasSuffix(name string) bool {
	for _, s := range c.steps {
		if s.Suffix.Name == name {
			return true
		}
	}
	return false
}

// Completed reports whether the container is a parse result.
func (c *Container) Completed() bool {
	return c.consumed == len(c.input) && c.state.Accepting && c.expect.AllowsEnd()
}

// Advance applies step, which must match the start of Remaining.
func (c *Container) Advance(step Step, attrs phonetics.Attributes, expect phonetics.Expectation) *Container {
	steps := make([]Step, len(c.steps), len(c.steps)+1)
	copy(steps, c.steps)

	next := *c
	next.steps = append(steps, step)
	next.consumed += len(step.Surface)
	next.state = step.To
	next.attrs = attrs
	next.expect = expect
	return &next
}

// Rebase moves c onto input, where the root was matched as rootSurface. It
// returns false unless input continues with c's suffix surfaces.
func (c *Container) Rebase(rootSurface, input string) (*Container, bool) {
	suffixes := c.input[len(c.rootSurface):c.consumed]
	if !strings.HasPrefix(input, rootSurface) || !strings.HasPrefix(input[len(rootSurface):], suffixes) {
		return nil, false
	}
	next := *c
	next.rootSurface = rootSurface
	next.input = input
	next.consumed = len(rootSurface) + len(suffixes)
	return &next, true
}

// Format renders the parse, e.g. masa+Noun+A3sg+P3sg+Nom or
// masa+Noun+A3sg+Pnon+Nom+Adj+With.
func (c *Container) Format() string {
	lex := c.root.Lexeme

	var b strings.Builder
	b.WriteString(lex.Lemma)
	b.WriteByte('+')
	b.WriteString(string(lex.PrimaryPos))
	if lex.SecondaryPos != lexicon.SecondaryNone {
		b.WriteByte('+')
		b.WriteString(string(lex.SecondaryPos))
	}

	for _, s := range c.steps {
		if s.Suffix.Derivation != "" {
			b.WriteByte('+')
			b.WriteString(string(s.Suffix.Derivation))
		}
		b.WriteByte('+')
		b.WriteString(s.Suffix.Pretty)
	}
	return b.String()
}

func (c *Container) String() string { return c.Format() }
