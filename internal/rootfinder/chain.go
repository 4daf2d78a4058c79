// Package rootfinder proposes candidate roots for prefixes of an input word.
package rootfinder

import (
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Candidate is a root matched against the first Length letters of a prefix.
type Candidate struct {
	Root   *lexicon.Root
	Length int
}

// Finder is one root discovery strategy.
type Finder interface {
	// Handles reports whether the finder applies to partial, a prefix of input.
	Handles(partial, input phonetics.Sequence) bool
	// Find returns the candidates for partial. No candidates is not an error.
	Find(partial, input phonetics.Sequence) []Candidate
}

// Policy decides whether the chain goes on after a finder handled a prefix.
type Policy int

const (
	// StopWhenHandled ends the chain when the finder handles the prefix.
	StopWhenHandled Policy = iota
	// Continue collects the finder's candidates and keeps going.
	Continue
)

func (p Policy) String() string {
	if p == Continue {
		return "Continue"
	}
	return "StopWhenHandled"
}

// Link is a finder with its chain policy.
type Link struct {
	Finder Finder
	Policy Policy
}

// Chain is an ordered, immutable list of finders. It is safe for concurrent use
// when its finders are.
type Chain struct {
	links []Link
}

// NewChain returns a chain trying links in the given order.
func NewChain(links ...Link) Chain {
	return Chain{links: append([]Link(nil), links...)}
}

// Len returns the number of links.
func (c Chain) Len() int { return len(c.links) }

// Find runs the chain over partial and returns the candidates in link order.
func (c Chain) Find(partial, input phonetics.Sequence) []Candidate {
	var out []Candidate
	for _, l := range c.links {
		if !l.Finder.Handles(partial, input) {
			continue
		}
		out = append(out, l.Finder.Find(partial, input)...)
		if l.Policy == StopWhenHandled {
			break
		}
	}
	return out
}

// RootSource supplies dictionary roots by exact surface.
type RootSource interface {
	Roots(surface string) []*lexicon.Root
}

// DefaultChain returns the standard finder order: narrow triggers first,
// the dictionary last.
func DefaultChain(dict RootSource) Chain {
	return NewChain(
		Link{Finder: Punctuation{}, Policy: StopWhenHandled},
		Link{Finder: RangeDigits{}, Policy: StopWhenHandled},
		Link{Finder: OrdinalDigits{}, Policy: StopWhenHandled},
		Link{Finder: CardinalDigits{}, Policy: StopWhenHandled},
		Link{Finder: ProperNounFromApostrophe{}, Policy: StopWhenHandled},
		Link{Finder: ProperNounWithoutApostrophe{}, Policy: Continue},
		Link{Finder: NewDictionary(dict), Policy: Continue},
	)
}
