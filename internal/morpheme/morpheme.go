// Package morpheme defines suffix graph states, suffixes and the immutable
// container that accumulates a parse.
package morpheme

import "github.com/heartmarshall/trmorph/internal/lexicon"

// State is a morphological category in the suffix graph. States are
// compared by identity.
type State struct {
	Name      string
	Pos       lexicon.PrimaryPos
	Accepting bool
}

func (s *State) String() string {
	if s.Accepting {
		return s.Name + "(accepting)"
	}
	return s.Name
}

// Suffix is a morpheme. Name is unique within a graph; Pretty is used in
// formatted parses. A suffix with a Derivation changes the word's part of
// speech.
type Suffix struct {
	Name       string
	Pretty     string
	Derivation lexicon.PrimaryPos
}

func (s *Suffix) String() string { return s.Name }

// Step is one applied suffix and its surface in the input.
type Step struct {
	Suffix  *Suffix
	Surface string
	To      *State
}
