// Package phonetics models the Turkish alphabet, the phonetic attributes of
// a surface and the expansion of suffix templates under vowel harmony and
// consonant assimilation.
package phonetics

import "unicode"

// Letter describes the phonetic properties of a single Turkish letter.
type Letter struct {
	Char       rune
	Upper      bool
	Vowel      bool
	Frontal    bool
	Rounded    bool
	Voiceless  bool
	Continuant bool
	// Known is false for digits, punctuation and letters outside the alphabet.
	Known bool
}

// VoicelessStop reports whether the letter is one of p, ç, t, k.
func (l Letter) VoicelessStop() bool {
	return l.Known && !l.Vowel && l.Voiceless && !l.Continuant
}

var alphabet = map[rune]Letter{}

func init() {
	vowel := func(r rune, frontal, rounded bool) {
		alphabet[r] = Letter{Char: r, Vowel: true, Frontal: frontal, Rounded: rounded, Continuant: true, Known: true}
	}
	consonant := func(r rune, voiceless, continuant bool) {
		alphabet[r] = Letter{Char: r, Voiceless: voiceless, Continuant: continuant, Known: true}
	}

	vowel('a', false, false)
	vowel('â', false, false)
	vowel('e', true, false)
	vowel('ı', false, false)
	vowel('i', true, false)
	vowel('î', true, false)
	vowel('o', false, true)
	vowel('ö', true, true)
	vowel('u', false, true)
	vowel('ü', true, true)
	vowel('û', true, true)

	for _, r := range "çkpt" + "q" {
		consonant(r, true, false)
	}
	for _, r := range "fhsş" + "x" {
		consonant(r, true, true)
	}
	for _, r := range "bcdg" {
		consonant(r, false, false)
	}
	for _, r := range "ğjlmnrvyz" + "w" {
		consonant(r, false, true)
	}
}

// LetterOf returns the letter for r. Upper-case runes are resolved with the
// Turkish dotted/dotless i rules.
func LetterOf(r rune) Letter {
	lower := toLower(r)
	l, ok := alphabet[lower]
	if !ok {
		return Letter{Char: r, Upper: unicode.IsUpper(r)}
	}
	l.Upper = lower != r
	l.Char = r
	return l
}

func toLower(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return unicode.ToLower(r)
}

// IsVowel reports whether r is a Turkish vowel in either case.
func IsVowel(r rune) bool {
	return LetterOf(r).Vowel
}
