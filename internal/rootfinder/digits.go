package rootfinder

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/trmorph/internal/lexicon"
	"github.com/heartmarshall/trmorph/internal/phonetics"
)

var (
	cardinalPattern = regexp.MustCompile(`^[-+]?(\d{1,3}(\.\d{3})+|\d+)(,\d+)?'?$`)
	ordinalPattern  = regexp.MustCompile(`^\d+\.'?$`)
	rangePattern    = regexp.MustCompile(`^\d+(,\d+)?-\d+(,\d+)?'?$`)
)

var (
	spokenUnits = [...]string{"", "bir", "iki", "üç", "dört", "beş", "altı", "yedi", "sekiz", "dokuz"}
	spokenTens  = [...]string{"", "on", "yirmi", "otuz", "kırk", "elli", "altmış", "yetmiş", "seksen", "doksan"}
	spokenPower = [...]string{"", "bin", "milyon", "milyar", "trilyon", "katrilyon"}
)

// CardinalDigits recognizes 3, -12, 3,5 and 3.000, with an optional
// trailing apostrophe before suffixes.
type CardinalDigits struct{}

func (CardinalDigits) Handles(partial, _ phonetics.Sequence) bool {
	return cardinalPattern.MatchString(partial.String())
}

func (CardinalDigits) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := strings.TrimSuffix(partial.String(), "'")
	return digitCandidate(surface, lexicon.Cardinal, phonetics.Of(lastSpokenWord(surface)), partial.Len())
}

// OrdinalDigits recognizes 3. and 3.'.
type OrdinalDigits struct{}

func (OrdinalDigits) Handles(partial, _ phonetics.Sequence) bool {
	return ordinalPattern.MatchString(partial.String())
}

func (OrdinalDigits) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := strings.TrimSuffix(partial.String(), "'")
	word := lastSpokenWord(strings.TrimSuffix(surface, "."))
	suffix, ok := phonetics.Expand(phonetics.Of(word), "+IncI")
	if !ok {
		return nil
	}
	return digitCandidate(surface, lexicon.Ordinal, phonetics.Of(word+suffix), partial.Len())
}

// RangeDigits recognizes 3-5 and 1990-2000'.
type RangeDigits struct{}

func (RangeDigits) Handles(partial, _ phonetics.Sequence) bool {
	return rangePattern.MatchString(partial.String())
}

func (RangeDigits) Find(partial, _ phonetics.Sequence) []Candidate {
	surface := strings.TrimSuffix(partial.String(), "'")
	_, upper, _ := strings.Cut(surface, "-")
	return digitCandidate(surface, lexicon.Range, phonetics.Of(lastSpokenWord(upper)), partial.Len())
}

func digitCandidate(surface string, secondary lexicon.SecondaryPos, attrs phonetics.Attributes, length int) []Candidate {
	root := lexicon.NewSyntheticRoot(surface, lexicon.Numeral, secondary, attrs)
	return []Candidate{{Root: root, Length: length}}
}

// lastSpokenWord returns the last word of the number read aloud in Turkish,
// which decides the harmony of the suffixes: 3 -> üç, 40 -> kırk,
// 2000 -> bin, 3,5 -> beş.
func lastSpokenWord(number string) string {
	number = strings.TrimLeft(number, "-+")
	if _, frac, ok := strings.Cut(number, ","); ok {
		number = frac
	}
	digits := strings.TrimLeft(strings.ReplaceAll(number, ".", ""), "0")
	if digits == "" {
		return "sıfır"
	}

	n := len(digits)
	for i := n - 1; i >= 0; i-- {
		d := digits[i] - '0'
		if d == 0 {
			continue
		}
		pos := n - 1 - i
		switch {
		case pos == 0:
			return spokenUnits[d]
		case pos == 1:
			return spokenTens[d]
		case pos == 2:
			return "yüz"
		}
		// 20000 is "yirmi bin", 300000 "üç yüz bin": the power word ends the number.
		power := min(pos/3, len(spokenPower)-1)
		return spokenPower[power]
	}
	return "sıfır"
}
