// Package lexicontest provides a small fixed lexicon for tests.
package lexicontest

import (
	"testing"

	"github.com/heartmarshall/trmorph/internal/lexicon"
)

// Records returns the test dictionary.
func Records() []lexicon.Record {
	return []lexicon.Record{
		{Lemma: "masa", PrimaryPos: lexicon.Noun},
		{Lemma: "masal", PrimaryPos: lexicon.Noun},
		{Lemma: "kitap", PrimaryPos: lexicon.Noun, Attributes: []lexicon.Attribute{lexicon.Voicing}},
		{Lemma: "ev", PrimaryPos: lexicon.Noun},
		{Lemma: "göz", PrimaryPos: lexicon.Noun},
		{Lemma: "okul", PrimaryPos: lexicon.Noun},
		{Lemma: "renk", PrimaryPos: lexicon.Noun, Attributes: []lexicon.Attribute{lexicon.Voicing}},
		{Lemma: "hak", PrimaryPos: lexicon.Noun, Attributes: []lexicon.Attribute{lexicon.Doubling}},
		{Lemma: "burun", PrimaryPos: lexicon.Noun, Attributes: []lexicon.Attribute{lexicon.LastVowelDrop}},
		{Lemma: "saat", PrimaryPos: lexicon.Noun, Attributes: []lexicon.Attribute{lexicon.InverseHarmony}},
		{Lemma: "su", PrimaryPos: lexicon.Noun},
		{Lemma: "Ankara", PrimaryPos: lexicon.Noun, SecondaryPos: lexicon.ProperNoun},
		{Lemma: "güzel", PrimaryPos: lexicon.Adjective},
		{Lemma: "kırmızı", PrimaryPos: lexicon.Adjective},
		{Lemma: "gelmek", PrimaryPos: lexicon.Verb},
		{Lemma: "gitmek", PrimaryPos: lexicon.Verb, Attributes: []lexicon.Attribute{lexicon.Voicing}},
		{Lemma: "beklemek", PrimaryPos: lexicon.Verb},
		{Lemma: "okumak", PrimaryPos: lexicon.Verb},
		{Lemma: "ben", PrimaryPos: lexicon.Pronoun, SecondaryPos: lexicon.Personal},
		{Lemma: "sen", PrimaryPos: lexicon.Pronoun, SecondaryPos: lexicon.Personal},
		{Lemma: "ve", PrimaryPos: lexicon.Conjunction},
		{Lemma: "çok", PrimaryPos: lexicon.Adverb},
		{Lemma: "üç", PrimaryPos: lexicon.Numeral, SecondaryPos: lexicon.Cardinal},
	}
}

// New builds the test lexicon and fails the test on error.
func New(tb testing.TB) *lexicon.Lexicon {
	tb.Helper()

	lex, err := lexicon.New(Records())
	if err != nil {
		tb.Fatalf("lexicontest: build lexicon: %v", err)
	}
	return lex
}
