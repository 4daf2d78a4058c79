package lexicon

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trmorph/internal/domain"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// lexemeNamespace seeds deterministic lexeme IDs for records without one.
var lexemeNamespace = uuid.MustParse("5b1e6a4e-8f0c-4c55-9d64-3f2a3e0a9c11")

// Record is the persisted form of a lexeme.
type Record struct {
	ID           uuid.UUID
	Lemma        string
	PrimaryPos   PrimaryPos
	SecondaryPos SecondaryPos
	Attributes   []Attribute
}

// LexemeID returns the record's ID, or, when it has none, an ID derived
// from lemma and parts of speech that is stable across loads.
func (r Record) LexemeID() uuid.UUID {
	if r.ID != uuid.Nil {
		return r.ID
	}
	key := domain.NormalizeToken(r.Lemma) + "|" + string(r.PrimaryPos) + "|" + string(r.SecondaryPos)
	return uuid.NewSHA1(lexemeNamespace, []byte(key))
}

// Lexicon is an immutable index from root surface to roots. It is safe for
// concurrent use.
type Lexicon struct {
	lexemes []*Lexeme
	byRoot  map[string][]*Root
}

// New validates records and builds the lexicon. A nil slice is a
// configuration error; an empty one yields an empty lexicon.
func New(records []Record) (*Lexicon, error) {
	if records == nil {
		return nil, fmt.Errorf("%w: lexicon records are nil", domain.ErrInvalidConfig)
	}

	if errs := validateRecords(records); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	l := &Lexicon{
		lexemes: make([]*Lexeme, 0, len(records)),
		byRoot:  make(map[string][]*Root, len(records)),
	}

	for _, rec := range records {
		lex := newLexeme(rec)
		l.lexemes = append(l.lexemes, lex)
		for _, root := range generateRoots(lex) {
			l.byRoot[root.Surface] = append(l.byRoot[root.Surface], root)
		}
	}

	return l, nil
}

func newLexeme(rec Record) *Lexeme {
	lemma := domain.NormalizeToken(rec.Lemma)

	lex := &Lexeme{
		ID:           rec.LexemeID(),
		Lemma:        lemma,
		LemmaRoot:    lemmaRoot(lemma, rec.PrimaryPos),
		PrimaryPos:   rec.PrimaryPos,
		SecondaryPos: rec.SecondaryPos,
		Attributes:   append([]Attribute(nil), rec.Attributes...),
	}

	if lex.PrimaryPos == Verb && !lex.Has(ProgressiveVowelDrop) &&
		phonetics.Of(lex.LemmaRoot).Has(phonetics.LastLetterVowel) {
		lex.Attributes = append(lex.Attributes, ProgressiveVowelDrop)
	}

	return lex
}

func validateRecords(records []Record) []domain.FieldError {
	var errs []domain.FieldError
	for i, rec := range records {
		field := func(name string) string { return fmt.Sprintf("records[%d].%s", i, name) }

		if strings.TrimSpace(rec.Lemma) == "" {
			errs = append(errs, domain.FieldError{Field: field("lemma"), Message: "required"})
		}
		if !rec.PrimaryPos.IsValid() {
			errs = append(errs, domain.FieldError{Field: field("primary_pos"), Message: fmt.Sprintf("unknown part of speech %q", rec.PrimaryPos)})
		}
		if !rec.SecondaryPos.IsValid() {
			errs = append(errs, domain.FieldError{Field: field("secondary_pos"), Message: fmt.Sprintf("unknown secondary part of speech %q", rec.SecondaryPos)})
		}
		for _, a := range rec.Attributes {
			if !a.IsValid() {
				errs = append(errs, domain.FieldError{Field: field("attributes"), Message: fmt.Sprintf("unknown attribute %q", a)})
			}
		}
	}
	return errs
}

// Roots returns the roots whose surface is exactly s. The returned slice
// must not be modified.
func (l *Lexicon) Roots(s string) []*Root {
	return l.byRoot[s]
}

// Find returns the root of the lexeme with the given lemma and part of
// speech whose surface is surface, or nil.
func (l *Lexicon) Find(lemma string, pos PrimaryPos, surface string) *Root {
	for _, r := range l.byRoot[surface] {
		if r.Lexeme.Lemma == lemma && r.Lexeme.PrimaryPos == pos {
			return r
		}
	}
	return nil
}

// Lexemes returns every lexeme in record order.
func (l *Lexicon) Lexemes() []*Lexeme {
	return l.lexemes
}

// Len returns the number of lexemes.
func (l *Lexicon) Len() int {
	return len(l.lexemes)
}
