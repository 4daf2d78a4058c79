package phonetics

import "testing"

func TestSequence(t *testing.T) {
	t.Parallel()

	s := NewSequence("kitabı")
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
	if got := s.Prefix(5).String(); got != "kitab" {
		t.Errorf("Prefix(5) = %q, want %q", got, "kitab")
	}
	if got := s.Prefix(10).String(); got != "kitabı" {
		t.Errorf("Prefix(10) = %q", got)
	}
	if got := s.ByteLen(6); got != len("kitabı") {
		t.Errorf("ByteLen(6) = %d", got)
	}
	if l, ok := s.Last(); !ok || l.Char != 'ı' || !l.Vowel {
		t.Errorf("Last() = %+v, %v", l, ok)
	}
}

func TestSequence_NFC(t *testing.T) {
	t.Parallel()

	// "ö" as o + combining diaeresis.
	s := NewSequence("go\u0308z")
	if s.String() != "göz" || s.Len() != 3 {
		t.Errorf("NewSequence did not normalize: %q (%d letters)", s.String(), s.Len())
	}
}

func TestSequence_Blank(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", " ", "\t"} {
		if !NewSequence(in).IsBlank() {
			t.Errorf("NewSequence(%q).IsBlank() = false", in)
		}
	}
	if NewSequence("a").IsBlank() {
		t.Error("NewSequence(a).IsBlank() = true")
	}
}

func TestUncapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"Kitap", "kitap"},
		{"Istanbul", "ıstanbul"},
		{"İzmir", "izmir"},
		{"KITAP", "kITAP"},
		{"masa", "masa"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Uncapitalize(tt.in); got != tt.want {
			t.Errorf("Uncapitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLetterOf(t *testing.T) {
	t.Parallel()

	if l := LetterOf('I'); !l.Vowel || !l.Upper || l.Frontal {
		t.Errorf("LetterOf('I') = %+v, want upper back vowel ı", l)
	}
	if l := LetterOf('İ'); !l.Vowel || !l.Frontal {
		t.Errorf("LetterOf('İ') = %+v, want front vowel i", l)
	}
	if l := LetterOf('7'); l.Known {
		t.Errorf("LetterOf('7').Known = true")
	}
	if !LetterOf('k').VoicelessStop() || LetterOf('s').VoicelessStop() {
		t.Error("voiceless stop classification is wrong")
	}
}

func TestExpectation(t *testing.T) {
	t.Parallel()

	if !ExpectVowelStart.Satisfied("ı") || ExpectVowelStart.Satisfied("da") {
		t.Error("ExpectVowelStart misclassifies")
	}
	if ExpectConsonantStart.Satisfied("ı") || !ExpectConsonantStart.Satisfied("ta") {
		t.Error("ExpectConsonantStart misclassifies")
	}
	if !ExpectVowelStart.Satisfied("") {
		t.Error("empty surface must satisfy any expectation")
	}
	if ExpectVowelStart.AllowsEnd() || !ExpectConsonantStart.AllowsEnd() || !ExpectNone.AllowsEnd() {
		t.Error("AllowsEnd is wrong")
	}
}
