package phonetics

import "strings"

// Template letters resolved by Expand.
const (
	harmonyA   = 'A' // a / e
	harmonyI   = 'I' // ı / i / u / ü
	assimilD   = 'D' // d / t
	assimilC   = 'C' // c / ç
	optionalOp = '+'
)

// Expand renders a suffix template against the attributes of the surface it
// attaches to. A letter prefixed with '+' is dropped when it would create a
// vowel or consonant cluster with the preceding letter. The second result is
// false when a harmony letter cannot be resolved because the surface has no
// vowel yet.
func Expand(a Attributes, template string) (string, bool) {
	if template == "" {
		return "", true
	}

	var b strings.Builder
	b.Grow(len(template) + 2)

	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		optional := false
		if r == optionalOp && i+1 < len(runes) {
			optional = true
			i++
			r = runes[i]
		}

		if optional {
			vowel := r == harmonyA || r == harmonyI || IsVowel(r)
			if vowel && a.Has(LastLetterVowel) {
				continue
			}
			if !vowel && a.Has(LastLetterConsonant) {
				continue
			}
		}

		out, ok := resolve(a, r)
		if !ok {
			return "", false
		}
		b.WriteRune(out)
		a = withLetter(a, LetterOf(out))
	}

	return b.String(), true
}

func resolve(a Attributes, r rune) (rune, bool) {
	switch r {
	case harmonyA:
		if a.Has(HasNoVowel) || a&(LastVowelFrontal|LastVowelBack) == 0 {
			return 0, false
		}
		if a.Has(LastVowelFrontal) {
			return 'e', true
		}
		return 'a', true
	case harmonyI:
		if a.Has(HasNoVowel) || a&(LastVowelFrontal|LastVowelBack) == 0 {
			return 0, false
		}
		switch {
		case a.Has(LastVowelFrontal | LastVowelRounded):
			return 'ü', true
		case a.Has(LastVowelFrontal):
			return 'i', true
		case a.Has(LastVowelRounded):
			return 'u', true
		default:
			return 'ı', true
		}
	case assimilD:
		if a.Has(LastLetterVoiceless) {
			return 't', true
		}
		return 'd', true
	case assimilC:
		if a.Has(LastLetterVoiceless) {
			return 'ç', true
		}
		return 'c', true
	}
	return r, true
}
