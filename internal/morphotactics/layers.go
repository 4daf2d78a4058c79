package morphotactics

import (
	"github.com/heartmarshall/trmorph/internal/lexicon"
)

// Additional state names.
const (
	NumeralRoot    = "NUMERAL_ROOT"
	ProperNounRoot = "PROPER_NOUN_ROOT"
	VerbCopula     = "VERB_COPULA"
)

// DefaultLayers returns the full Turkish grammar in build order.
func DefaultLayers() []Layer {
	return []Layer{BaseLayer, NumeralLayer, ProperNounLayer, CopulaLayer}
}

// NumeralLayer lets cardinal, ordinal and range numerals stand alone and
// act as adjectives.
func NumeralLayer(g Graph) (Graph, error) {
	return g.Extend(func(b *Builder) error {
		num := b.AddState(NumeralRoot, lexicon.Numeral, true)
		for _, s := range []lexicon.SecondaryPos{lexicon.SecondaryNone, lexicon.Cardinal, lexicon.Ordinal, lexicon.Range} {
			b.BindRoot(lexicon.Numeral, s, num)
		}
		b.Connect(num, b.State(AdjectiveRoot), b.AddSuffix("Adj_Zero", "Zero", lexicon.Adjective), nil, F(""))
		return b.Err()
	})
}

// ProperNounLayer routes proper nouns into nominal agreement through their
// own root state.
func ProperNounLayer(g Graph) (Graph, error) {
	return g.Extend(func(b *Builder) error {
		root := b.AddState(ProperNounRoot, lexicon.Noun, false)
		b.BindRoot(lexicon.Noun, lexicon.ProperNoun, root)

		agreement := b.State(NounWithAgreement)
		b.Connect(root, agreement, b.AddSuffix("Prop_A3sg", "A3sg", ""), nil, F(""))
		b.Connect(root, agreement, b.AddSuffix("Prop_A3pl", "A3pl", ""), nil, F("lAr"))
		return b.Err()
	})
}

// CopulaLayer adds the nominal predicate: masadır, masaydı, evdeymiş.
func CopulaLayer(g Graph) (Graph, error) {
	return g.Extend(func(b *Builder) error {
		copula := b.AddState(VerbCopula, lexicon.Verb, false)

		zero := b.AddSuffix("Verb_Zero", "Zero", lexicon.Verb)
		for _, from := range []string{NounNominative, NounWithCase, PronounTerminal} {
			b.Connect(b.State(from), copula, zero, nil, F(""))
		}

		b.Connect(copula, b.State(VerbTerminal), b.AddSuffix("Verb_Cop", "Cop", ""), nil, F("DIr"))
		b.Connect(copula, b.State(VerbWithPast), b.Suffix("Verb_Past"), nil, F("+yDI"))
		b.Connect(copula, b.State(VerbWithTense), b.Suffix("Verb_Narr"), nil, F("+ymIş"))
		return b.Err()
	})
}
