package parser

import (
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/morphotactics"
)

// Exception overrides the regular behaviour of a suffix after one lexeme:
// it either forbids the suffix or replaces its surface. A nil When applies
// everywhere; otherwise the exception holds only where When is satisfied.
type Exception struct {
	Lemma   string
	Pos     lexicon.PrimaryPos
	Suffix  string
	When    morphotactics.Condition
	Forbid  bool
	Surface string
}

type exceptionKey struct {
	lemma  string
	pos    lexicon.PrimaryPos
	suffix string
}

// ExceptionTable is a read-only lookup of lexical exceptions.
type ExceptionTable struct {
	entries map[exceptionKey]Exception
}

// NewExceptionTable indexes entries. Later entries win.
func NewExceptionTable(entries ...Exception) *ExceptionTable {
	t := &ExceptionTable{entries: make(map[exceptionKey]Exception, len(entries))}
	for _, e := range entries {
		t.entries[exceptionKey{e.Lemma, e.Pos, e.Suffix}] = e
	}
	return t
}

// Lookup returns the exception for suffix after lex.
func (t *ExceptionTable) Lookup(lex *lexicon.Lexeme, suffix string) (Exception, bool) {
	if t == nil || len(t.entries) == 0 {
		return Exception{}, false
	}
	e, ok := t.entries[exceptionKey{lex.Lemma, lex.PrimaryPos, suffix}]
	return e, ok
}

// Len returns the number of exceptions.
func (t *ExceptionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// DefaultExceptions returns the known irregular surfaces: singular su takes
// a buffer y instead of s and n (suyu, suyun). The plural keeps the regular
// forms (suları, suların).
func DefaultExceptions() []Exception {
	return []Exception{
		{
			Lemma: "su", Pos: lexicon.Noun, Suffix: "Noun_P3sg", Surface: "yu",
			When: morphotactics.HasLastSuffixes("Noun_A3sg"),
		},
		{
			Lemma: "su", Pos: lexicon.Noun, Suffix: "Noun_Gen", Surface: "yun",
			When: morphotactics.HasLastSuffixes("Noun_A3sg", "Noun_Pnon"),
		},
		{Lemma: "ne", Pos: lexicon.Pronoun, Suffix: "Pron_A1sg", Forbid: true},
		{Lemma: "ne", Pos: lexicon.Pronoun, Suffix: "Pron_A2sg", Forbid: true},
	}
}
