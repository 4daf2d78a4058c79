package phonetics

import (
	"slices"
	"strings"
)

// Attributes is the set of phonetic facts about the end of a surface that
// suffix templates and conditions depend on.
type Attributes uint16

const (
	LastLetterVowel Attributes = 1 << iota
	LastLetterConsonant
	LastVowelFrontal
	LastVowelBack
	LastVowelRounded
	LastVowelUnrounded
	LastLetterVoiceless
	LastLetterNotVoiceless
	LastLetterContinuant
	LastLetterNotContinuant
	LastLetterVoicelessStop
	HasNoVowel
)

const (
	lastLetterMask = LastLetterVowel | LastLetterConsonant | LastLetterVoiceless | LastLetterNotVoiceless |
		LastLetterContinuant | LastLetterNotContinuant | LastLetterVoicelessStop
	lastVowelMask = LastVowelFrontal | LastVowelBack | LastVowelRounded | LastVowelUnrounded | HasNoVowel
)

var attributeNames = []struct {
	a    Attributes
	name string
}{
	{LastLetterVowel, "LastLetterVowel"},
	{LastLetterConsonant, "LastLetterConsonant"},
	{LastVowelFrontal, "LastVowelFrontal"},
	{LastVowelBack, "LastVowelBack"},
	{LastVowelRounded, "LastVowelRounded"},
	{LastVowelUnrounded, "LastVowelUnrounded"},
	{LastLetterVoiceless, "LastLetterVoiceless"},
	{LastLetterNotVoiceless, "LastLetterNotVoiceless"},
	{LastLetterContinuant, "LastLetterContinuant"},
	{LastLetterNotContinuant, "LastLetterNotContinuant"},
	{LastLetterVoicelessStop, "LastLetterVoicelessStop"},
	{HasNoVowel, "HasNoVowel"},
}

// Has reports whether every attribute in b is set in a.
func (a Attributes) Has(b Attributes) bool {
	return a&b == b
}

func (a Attributes) String() string {
	var parts []string
	for _, n := range attributeNames {
		if a&n.a != 0 {
			parts = append(parts, n.name)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Of computes the attributes of a whole surface.
func Of(surface string) Attributes {
	return Next(HasNoVowel, surface)
}

// Next returns the attributes after appending surface to a surface whose
// attributes are a. Runes outside the alphabet leave the attributes as they are.
func Next(a Attributes, surface string) Attributes {
	for _, r := range surface {
		a = withLetter(a, LetterOf(r))
	}
	return a
}

func withLetter(a Attributes, l Letter) Attributes {
	if !l.Known {
		return a
	}
	a &^= lastLetterMask
	if l.Vowel {
		a &^= lastVowelMask
		a |= LastLetterVowel | LastLetterNotVoiceless | LastLetterContinuant
		if l.Frontal {
			a |= LastVowelFrontal
		} else {
			a |= LastVowelBack
		}
		if l.Rounded {
			a |= LastVowelRounded
		} else {
			a |= LastVowelUnrounded
		}
		return a
	}

	a |= LastLetterConsonant
	if l.Voiceless {
		a |= LastLetterVoiceless
	} else {
		a |= LastLetterNotVoiceless
	}
	if l.Continuant {
		a |= LastLetterContinuant
	} else {
		a |= LastLetterNotContinuant
	}
	if l.VoicelessStop() {
		a |= LastLetterVoicelessStop
	}
	return a
}

// FlipFrontness swaps front and back harmony. Roots with inverse harmony
// (saat, rol) take front suffixes despite a back last vowel.
func FlipFrontness(a Attributes) Attributes {
	switch {
	case a&LastVowelFrontal != 0:
		return a&^LastVowelFrontal | LastVowelBack
	case a&LastVowelBack != 0:
		return a&^LastVowelBack | LastVowelFrontal
	}
	return a
}

// AllAttributeSets enumerates every attribute set a surface can end in.
// The result is sorted and free of duplicates.
func AllAttributeSets() []Attributes {
	seen := map[Attributes]bool{}
	add := func(a Attributes) {
		seen[a] = true
		seen[FlipFrontness(a)] = true
	}

	add(HasNoVowel)

	var vowels, letters []rune
	for r, l := range alphabet {
		letters = append(letters, r)
		if l.Vowel {
			vowels = append(vowels, r)
		}
	}

	for _, last := range letters {
		add(Next(HasNoVowel, string(last)))
		for _, v := range vowels {
			add(Next(HasNoVowel, string([]rune{v, last})))
		}
	}

	out := make([]Attributes, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}
