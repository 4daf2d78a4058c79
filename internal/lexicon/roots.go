package lexicon

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/trmorph/internal/phonetics"
)

var voicedForms = map[rune]rune{
	'p': 'b',
	'ç': 'c',
	't': 'd',
	'k': 'ğ',
	'g': 'ğ',
}

// irregularRoots lists extra root surfaces that no allomorph rule produces.
var irregularRoots = map[string][]string{
	"ben|Pron": {"ban"},
	"sen|Pron": {"san"},
}

// lemmaRoot strips the infinitive marker from verbs.
func lemmaRoot(lemma string, pos PrimaryPos) string {
	if pos != Verb {
		return lemma
	}
	for _, suffix := range []string{"mek", "mak"} {
		if r, ok := strings.CutSuffix(lemma, suffix); ok && r != "" {
			return r
		}
	}
	return lemma
}

// generateRoots creates every root surface of a lexeme.
func generateRoots(lex *Lexeme) []*Root {
	surface := lex.LemmaRoot
	attrs := rootAttributes(lex, surface)

	plain := &Root{Lexeme: lex, Surface: surface, Attributes: attrs}
	roots := []*Root{plain}

	mod := func(s string, v Variant) {
		plain.Expect = phonetics.ExpectConsonantStart
		roots = append(roots, &Root{
			Lexeme:     lex,
			Surface:    s,
			Attributes: rootAttributes(lex, s),
			Expect:     phonetics.ExpectVowelStart,
			Variant:    v,
		})
	}

	switch {
	case lex.Has(Doubling):
		last, _ := utf8.DecodeLastRuneInString(surface)
		mod(surface+string(last), VariantDoubled)
	case lex.Has(LastVowelDrop):
		if dropped, ok := dropLastVowel(surface); ok {
			mod(dropped, VariantVowelDropped)
		}
	case lex.Has(Voicing) && !lex.Has(NoVoicing):
		if voiced, ok := voice(surface); ok {
			mod(voiced, VariantVoiced)
		}
	}

	if lex.Has(ProgressiveVowelDrop) {
		if dropped, ok := dropFinalVowel(surface); ok {
			roots = append(roots, &Root{
				Lexeme:     lex,
				Surface:    dropped,
				Attributes: rootAttributes(lex, dropped),
				Expect:     phonetics.ExpectVowelStart,
				Variant:    VariantProgressiveDrop,
			})
		}
	}

	for _, s := range irregularRoots[lex.Lemma+"|"+string(lex.PrimaryPos)] {
		roots = append(roots, &Root{
			Lexeme:     lex,
			Surface:    s,
			Attributes: rootAttributes(lex, s),
			Variant:    VariantIrregular,
		})
	}

	return roots
}

func rootAttributes(lex *Lexeme, surface string) phonetics.Attributes {
	a := phonetics.Of(surface)
	if lex.Has(InverseHarmony) {
		a = phonetics.FlipFrontness(a)
	}
	return a
}

// voice replaces a final voiceless stop with its voiced pair: kitap -> kitab,
// ağaç -> ağac, renk -> reng.
func voice(surface string) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(surface)
	voiced, ok := voicedForms[last]
	if !ok {
		return "", false
	}
	stem := surface[:len(surface)-size]
	if last == 'k' && strings.HasSuffix(stem, "n") {
		voiced = 'g'
	}
	return stem + string(voiced), true
}

// dropLastVowel removes the vowel of the last syllable: burun -> burn.
func dropLastVowel(surface string) (string, bool) {
	runes := []rune(surface)
	n := len(runes)
	if n < 3 || phonetics.IsVowel(runes[n-1]) || !phonetics.IsVowel(runes[n-2]) {
		return "", false
	}
	return string(runes[:n-2]) + string(runes[n-1]), true
}

// dropFinalVowel removes a verb's final vowel before the progressive: bekle -> bekl.
func dropFinalVowel(surface string) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(surface)
	if !phonetics.IsVowel(last) || len(surface) == size {
		return "", false
	}
	return surface[:len(surface)-size], true
}
