package rootfinder

import (
	"strings"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// ProperNounFromApostrophe recognizes "Ankara'" in "Ankara'ya". The root
// surface excludes the apostrophe; the candidate length includes it.
type ProperNounFromApostrophe struct{}

func (ProperNounFromApostrophe) Handles(partial, _ phonetics.Sequence) bool {
	if partial.Len() < 3 || !partial.StartsUpper() {
		return false
	}
	last, _ := partial.Last()
	return last.Char == '\''
}

func (ProperNounFromApostrophe) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := strings.TrimSuffix(partial.String(), "'")
	if strings.ContainsRune(surface, '\'') {
		return nil
	}
	root := lexicon.NewSyntheticRoot(surface, lexicon.Noun, lexicon.ProperNoun, phonetics.Of(surface))
	return []Candidate{{Root: root, Length: partial.Len()}}
}

// ProperNounWithoutApostrophe treats a whole capitalized token as a proper
// noun: "Ankara". Suffixes need an apostrophe, so only the full input is
// handled.
type ProperNounWithoutApostrophe struct{}

func (ProperNounWithoutApostrophe) Handles(partial, input phonetics.Sequence) bool {
	if partial.Len() != input.Len() || !partial.StartsUpper() {
		return false
	}
	return !strings.ContainsAny(partial.String(), "'0123456789")
}

func (ProperNounWithoutApostrophe) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := partial.String()
	root := lexicon.NewSyntheticRoot(surface, lexicon.Noun, lexicon.ProperNoun, phonetics.Of(surface))
	return []Candidate{{Root: root, Length: partial.Len()}}
}
