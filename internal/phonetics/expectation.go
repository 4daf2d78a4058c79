package phonetics

import "unicode/utf8"

// Expectation constrains how the next suffix may start. Roots such as the
// voiced allomorph kitab only continue with a vowel.
type Expectation uint8

const (
	ExpectNone Expectation = iota
	ExpectVowelStart
	ExpectConsonantStart
)

func (e Expectation) String() string {
	switch e {
	case ExpectVowelStart:
		return "VowelStart"
	case ExpectConsonantStart:
		return "ConsonantStart"
	}
	return "None"
}

// Satisfied reports whether a non-empty surface may follow. An empty
// surface never violates an expectation.
func (e Expectation) Satisfied(surface string) bool {
	if surface == "" || e == ExpectNone {
		return true
	}
	r, _ := utf8.DecodeRuneInString(surface)
	if e == ExpectVowelStart {
		return IsVowel(r)
	}
	return !IsVowel(r)
}

// AllowsEnd reports whether a word may end while e is pending.
func (e Expectation) AllowsEnd() bool {
	return e != ExpectVowelStart
}
