package rootfinder

import (
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// Punctuation recognizes a whole token made of punctuation marks.
type Punctuation struct{}

func (Punctuation) Handles(partial, input phonetics.Sequence) bool {
	if partial.Len() != input.Len() || partial.IsBlank() {
		return false
	}
	for _, r := range partial.String() {
		if r == utf8.RuneError || !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func (Punctuation) Find(partial, _ phonetics.Sequence) []Candidate {
	root := lexicon.NewSyntheticRoot(partial.String(), lexicon.Punctuation, lexicon.SecondaryNone, phonetics.HasNoVowel)
	return []Candidate{{Root: root, Length: partial.Len()}}
}
