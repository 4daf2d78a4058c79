package rootfinder

import (
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Dictionary looks prefixes up in the lexicon. A capitalized prefix is
// also looked up with its first letter lower-cased.
type Dictionary struct {
	source RootSource
}

// NewDictionary returns a dictionary finder over source.
func NewDictionary(source RootSource) *Dictionary {
	return &Dictionary{source: source}
}

func (d *Dictionary) Handles(partial, _ phonetics.Sequence) bool {
	return !partial.IsBlank()
}

func (d *Dictionary) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := partial.String()
	roots := d.source.Roots(surface)

	if partial.StartsUpper() {
		if lower := phonetics.Uncapitalize(surface); lower != surface {
			roots = append(roots[:len(roots):len(roots)], d.source.Roots(lower)...)
		}
	}

	if len(roots) == 0 {
		return nil
	}
	out := make([]Candidate, len(roots))
	for i, r := range roots {
		out[i] = Candidate{Root: r, Length: partial.Len()}
	}
	return out
}
