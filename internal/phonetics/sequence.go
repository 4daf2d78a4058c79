package phonetics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Sequence is an NFC-normalized letter sequence with O(1) prefix slicing.
type Sequence struct {
	text    string
	offsets []int // byte offset of every letter plus len(text)
}

// NewSequence normalizes s to NFC and indexes its letters.
func NewSequence(s string) Sequence {
	s = norm.NFC.String(s)
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return Sequence{text: s, offsets: offsets}
}

func (s Sequence) String() string { return s.text }

// Len returns the number of letters.
func (s Sequence) Len() int {
	if len(s.offsets) == 0 {
		return 0
	}
	return len(s.offsets) - 1
}

// Letter returns the i-th letter.
func (s Sequence) Letter(i int) Letter {
	r, _ := utf8.DecodeRuneInString(s.text[s.offsets[i]:])
	return LetterOf(r)
}

// Last returns the last letter and false when the sequence is empty.
func (s Sequence) Last() (Letter, bool) {
	if s.Len() == 0 {
		return Letter{}, false
	}
	return s.Letter(s.Len() - 1), true
}

// Prefix returns the first n letters.
func (s Sequence) Prefix(n int) Sequence {
	if n >= s.Len() {
		return s
	}
	return Sequence{text: s.text[:s.offsets[n]], offsets: s.offsets[:n+1]}
}

// ByteLen returns the number of bytes of the first n letters.
func (s Sequence) ByteLen(n int) int {
	if n >= s.Len() {
		return len(s.text)
	}
	return s.offsets[n]
}

// IsBlank reports whether the sequence is empty or only whitespace.
func (s Sequence) IsBlank() bool {
	return strings.TrimSpace(s.text) == ""
}

// StartsUpper reports whether the first letter is upper case.
func (s Sequence) StartsUpper() bool {
	r, _ := utf8.DecodeRuneInString(s.text)
	return unicode.IsUpper(r)
}

// Uncapitalize lower-cases the first letter with Turkish casing rules
// (I becomes ı, İ becomes i).
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(r) {
		return s
	}
	return cases.Lower(language.Turkish).String(s[:size]) + s[size:]
}
