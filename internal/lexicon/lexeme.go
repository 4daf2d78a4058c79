// Package lexicon holds the read-only root dictionary: lexemes, the root
// allomorphs generated for them and an index from surface to roots.
package lexicon

import (
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// PrimaryPos is the primary part of speech of a lexeme.
type PrimaryPos string

const (
	Noun         PrimaryPos = "Noun"
	Adjective    PrimaryPos = "Adj"
	Adverb       PrimaryPos = "Adv"
	Conjunction  PrimaryPos = "Conj"
	Interjection PrimaryPos = "Interj"
	Verb         PrimaryPos = "Verb"
	Pronoun      PrimaryPos = "Pron"
	Numeral      PrimaryPos = "Num"
	Determiner   PrimaryPos = "Det"
	Postposition PrimaryPos = "Postp"
	Question     PrimaryPos = "Ques"
	Punctuation  PrimaryPos = "Punc"
)

var primaryPositions = []PrimaryPos{
	Noun, Adjective, Adverb, Conjunction, Interjection, Verb,
	Pronoun, Numeral, Determiner, Postposition, Question, Punctuation,
}

// IsValid reports whether p is a known part of speech.
func (p PrimaryPos) IsValid() bool {
	return slices.Contains(primaryPositions, p)
}

// SecondaryPos refines the primary part of speech.
type SecondaryPos string

const (
	SecondaryNone SecondaryPos = ""
	ProperNoun    SecondaryPos = "Prop"
	Cardinal      SecondaryPos = "Card"
	Ordinal       SecondaryPos = "Ord"
	Range         SecondaryPos = "Range"
	Personal      SecondaryPos = "Pers"
	Demonstrative SecondaryPos = "Demons"
	Time          SecondaryPos = "Time"
)

var secondaryPositions = []SecondaryPos{
	SecondaryNone, ProperNoun, Cardinal, Ordinal, Range, Personal, Demonstrative, Time,
}

// IsValid reports whether s is a known secondary part of speech.
func (s SecondaryPos) IsValid() bool {
	return slices.Contains(secondaryPositions, s)
}

// Attribute is a lexical property that drives allomorph generation.
type Attribute string

const (
	Voicing              Attribute = "Voicing"
	NoVoicing            Attribute = "NoVoicing"
	Doubling             Attribute = "Doubling"
	LastVowelDrop        Attribute = "LastVowelDrop"
	InverseHarmony       Attribute = "InverseHarmony"
	ProgressiveVowelDrop Attribute = "ProgressiveVowelDrop"
)

var attributes = []Attribute{
	Voicing, NoVoicing, Doubling, LastVowelDrop, InverseHarmony, ProgressiveVowelDrop,
}

// IsValid reports whether a is a known lexical attribute.
func (a Attribute) IsValid() bool {
	return slices.Contains(attributes, a)
}

// Lexeme is a dictionary entry. Synthetic lexemes created by root finders
// for numbers and proper nouns carry uuid.Nil.
type Lexeme struct {
	ID           uuid.UUID
	Lemma        string
	LemmaRoot    string
	PrimaryPos   PrimaryPos
	SecondaryPos SecondaryPos
	Attributes   []Attribute
}

// Has reports whether the lexeme carries attribute a.
func (l *Lexeme) Has(a Attribute) bool {
	return slices.Contains(l.Attributes, a)
}

// Variant tells which allomorph of a lexeme a root is.
type Variant string

const (
	VariantPlain           Variant = ""
	VariantVoiced          Variant = "Voiced"
	VariantDoubled         Variant = "Doubled"
	VariantVowelDropped    Variant = "VowelDropped"
	VariantProgressiveDrop Variant = "ProgressiveDrop"
	VariantIrregular       Variant = "Irregular"
)

// Root is one surface form of a lexeme together with the phonetic profile
// suffixes attach to. Roots are shared by every parse that uses them and
// must not be modified.
type Root struct {
	Lexeme     *Lexeme
	Surface    string
	Attributes phonetics.Attributes
	Expect     phonetics.Expectation
	Variant    Variant
}

// NewSyntheticRoot builds a root for a word that is not in the dictionary.
func NewSyntheticRoot(surface string, pos PrimaryPos, secondary SecondaryPos, attrs phonetics.Attributes) *Root {
	return &Root{
		Lexeme: &Lexeme{
			Lemma:        surface,
			LemmaRoot:    surface,
			PrimaryPos:   pos,
			SecondaryPos: secondary,
		},
		Surface:    surface,
		Attributes: attrs,
	}
}
