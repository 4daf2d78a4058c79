package morphotactics

import (
	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

// State names shared between layers.
const (
	NounRoot            = "NOUN_ROOT"
	NounWithAgreement   = "NOUN_WITH_AGREEMENT"
	NounWithPossession  = "NOUN_WITH_POSSESSION"
	NounWithPossession3 = "NOUN_WITH_POSSESSION_3"
	NounNominative      = "NOUN_NOMINATIVE"
	NounWithCase        = "NOUN_WITH_CASE"

	AdjectiveRoot = "ADJECTIVE_ROOT"

	VerbRoot         = "VERB_ROOT"
	VerbWithPolarity = "VERB_WITH_POLARITY"
	VerbNegativeProg = "VERB_NEGATIVE_PROG"
	VerbWithTense    = "VERB_WITH_TENSE"
	VerbWithPast     = "VERB_WITH_PAST"
	VerbTerminal     = "VERB_TERMINAL"

	PronounRoot           = "PRONOUN_ROOT"
	PronounWithAgreement  = "PRONOUN_WITH_AGREEMENT"
	PronounWithPossession = "PRONOUN_WITH_POSSESSION"
	PronounTerminal       = "PRONOUN_TERMINAL"

	AdverbRoot       = "ADVERB_ROOT"
	ConjunctionRoot  = "CONJUNCTION_ROOT"
	InterjectionRoot = "INTERJECTION_ROOT"
	DeterminerRoot   = "DETERMINER_ROOT"
	PostpRoot        = "POSTPOSITION_ROOT"
	QuestionRoot     = "QUESTION_ROOT"
	PunctuationRoot  = "PUNCTUATION_ROOT"
)

// BaseLayer adds nominal and verbal inflection and the closed-class roots.
func BaseLayer(g Graph) (Graph, error) {
	return g.Extend(func(b *Builder) error {
		addNominal(b)
		addAdjective(b)
		addVerbal(b)
		addPronoun(b)
		addClosedClasses(b)
		return b.Err()
	})
}

func addNominal(b *Builder) {
	root := b.AddState(NounRoot, lexicon.Noun, false)
	agreement := b.AddState(NounWithAgreement, lexicon.Noun, false)
	possession := b.AddState(NounWithPossession, lexicon.Noun, false)
	possession3 := b.AddState(NounWithPossession3, lexicon.Noun, false)
	nominative := b.AddState(NounNominative, lexicon.Noun, true)
	withCase := b.AddState(NounWithCase, lexicon.Noun, true)

	b.BindRoot(lexicon.Noun, lexicon.SecondaryNone, root)

	a3sg := b.AddSuffix("Noun_A3sg", "A3sg", "")
	a3pl := b.AddSuffix("Noun_A3pl", "A3pl", "")
	b.Connect(root, agreement, a3sg, nil, F(""))
	b.Connect(root, agreement, a3pl, nil, F("lAr"))

	for _, p := range []struct{ name, template string }{
		{"Pnon", ""},
		{"P1sg", "+Im"},
		{"P2sg", "+In"},
		{"P1pl", "+ImIz"},
		{"P2pl", "+InIz"},
	} {
		b.Connect(agreement, possession, b.AddSuffix("Noun_"+p.name, p.name, ""), nil, F(p.template))
	}

	p3sg := b.AddSuffix("Noun_P3sg", "P3sg", "")
	p3pl := b.AddSuffix("Noun_P3pl", "P3pl", "")
	b.Connect(agreement, possession3, p3sg, nil, F("+sI"))
	b.Connect(agreement, possession3, p3pl, Not(HasLastSuffixes("Noun_A3pl")), F("lArI"))
	b.Connect(agreement, possession3, p3pl, HasLastSuffixes("Noun_A3pl"), F("I"))

	nom := b.AddSuffix("Noun_Nom", "Nom", "")
	b.Connect(possession, nominative, nom, nil, F(""))
	b.Connect(possession3, nominative, nom, nil, F(""))

	cases := []struct{ name, afterPossession, afterP3 string }{
		{"Acc", "+yI", "nI"},
		{"Dat", "+yA", "nA"},
		{"Loc", "DA", "ndA"},
		{"Abl", "DAn", "ndAn"},
		{"Gen", "+nIn", "nIn"},
		{"Ins", "+ylA", "ylA"},
	}
	for _, c := range cases {
		suffix := b.AddSuffix("Noun_"+c.name, c.name, "")
		b.Connect(possession, withCase, suffix, nil, F(c.afterPossession))
		b.Connect(possession3, withCase, suffix, nil, F(c.afterP3))
	}
}

func addAdjective(b *Builder) {
	adj := b.AddState(AdjectiveRoot, lexicon.Adjective, true)
	b.BindRoot(lexicon.Adjective, lexicon.SecondaryNone, adj)

	bare := Or(
		HasLastSuffixes("Noun_A3sg", "Noun_Pnon", "Noun_Nom"),
		HasLastSuffixes("Prop_A3sg", "Noun_Pnon", "Noun_Nom"),
	)
	nominative := b.State(NounNominative)
	b.Connect(nominative, adj, b.AddSuffix("Adj_With", "With", lexicon.Adjective), bare, F("lI"))
	b.Connect(nominative, adj, b.AddSuffix("Adj_Without", "Without", lexicon.Adjective), bare, F("sIz"))

	b.Connect(adj, b.State(NounRoot), b.AddSuffix("Noun_Zero", "Zero", lexicon.Noun), nil, F(""))
}

func addVerbal(b *Builder) {
	root := b.AddState(VerbRoot, lexicon.Verb, false)
	polarity := b.AddState(VerbWithPolarity, lexicon.Verb, false)
	negProg := b.AddState(VerbNegativeProg, lexicon.Verb, false)
	tense := b.AddState(VerbWithTense, lexicon.Verb, false)
	past := b.AddState(VerbWithPast, lexicon.Verb, false)
	terminal := b.AddState(VerbTerminal, lexicon.Verb, true)

	b.BindRoot(lexicon.Verb, lexicon.SecondaryNone, root)

	full := Not(RootIsVariant(lexicon.VariantProgressiveDrop))

	neg := b.AddSuffix("Verb_Neg", "Neg", "")
	b.Connect(root, polarity, b.AddSuffix("Verb_Pos", "Pos", ""), nil, F(""))
	b.Connect(root, polarity, neg, full, F("mA"))
	b.Connect(root, negProg, neg, full, F("m"))

	prog := b.AddSuffix("Verb_Prog", "Prog", "")
	b.Connect(polarity, tense, prog, nil, Form{Template: "+Iyor", Requires: phonetics.LastLetterConsonant})
	b.Connect(negProg, tense, prog, nil, F("Iyor"))
	b.Connect(polarity, tense, b.AddSuffix("Verb_Narr", "Narr", ""), full, F("mIş"))
	b.Connect(polarity, tense, b.AddSuffix("Verb_Fut", "Fut", ""), full,
		Form{Template: "+yAcAk", Expect: phonetics.ExpectConsonantStart},
		Form{Template: "+yAcAğ", Expect: phonetics.ExpectVowelStart},
	)
	b.Connect(polarity, past, b.AddSuffix("Verb_Past", "Past", ""), full, F("DI"))

	persons := []struct{ name, afterTense, afterPast string }{
		{"A1sg", "+Im", "m"},
		{"A2sg", "sIn", "n"},
		{"A3sg", "", ""},
		{"A1pl", "+Iz", "k"},
		{"A2pl", "sInIz", "nIz"},
		{"A3pl", "lAr", "lAr"},
	}
	for _, p := range persons {
		suffix := b.AddSuffix("Verb_"+p.name, p.name, "")
		b.Connect(tense, terminal, suffix, nil, F(p.afterTense))
		b.Connect(past, terminal, suffix, nil, F(p.afterPast))
	}
}

func addPronoun(b *Builder) {
	root := b.AddState(PronounRoot, lexicon.Pronoun, false)
	agreement := b.AddState(PronounWithAgreement, lexicon.Pronoun, false)
	possession := b.AddState(PronounWithPossession, lexicon.Pronoun, false)
	terminal := b.AddState(PronounTerminal, lexicon.Pronoun, true)

	b.BindRoot(lexicon.Pronoun, lexicon.SecondaryNone, root)

	for _, a := range []string{"A1sg", "A2sg", "A3sg", "A1pl", "A2pl", "A3pl"} {
		b.Connect(root, agreement, b.AddSuffix("Pron_"+a, a, ""), nil, F(""))
	}
	b.Connect(agreement, possession, b.AddSuffix("Pron_Pnon", "Pnon", ""), nil, F(""))

	for _, c := range []struct{ name, template string }{
		{"Nom", ""},
		{"Acc", "+yI"},
		{"Dat", "+yA"},
		{"Loc", "DA"},
		{"Abl", "DAn"},
		{"Gen", "+nIn"},
		{"Ins", "+ylA"},
	} {
		b.Connect(possession, terminal, b.AddSuffix("Pron_"+c.name, c.name, ""), nil, F(c.template))
	}
}

func addClosedClasses(b *Builder) {
	for _, c := range []struct {
		state string
		pos   lexicon.PrimaryPos
	}{
		{AdverbRoot, lexicon.Adverb},
		{ConjunctionRoot, lexicon.Conjunction},
		{InterjectionRoot, lexicon.Interjection},
		{DeterminerRoot, lexicon.Determiner},
		{PostpRoot, lexicon.Postposition},
		{QuestionRoot, lexicon.Question},
		{PunctuationRoot, lexicon.Punctuation},
	} {
		b.BindRoot(c.pos, lexicon.SecondaryNone, b.AddState(c.state, c.pos, true))
	}
}

