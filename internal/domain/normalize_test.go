package domain

import (
	"slices"
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  kitap  ", want: "kitap"},
		{name: "case preserved", input: "Kitap", want: "Kitap"},
		{name: "apostrophe preserved", input: "Ali'ye", want: "Ali'ye"},
		{name: "digits preserved", input: "3'üncü", want: "3'üncü"},
		{name: "decomposed to NFC", input: "go\u0308z", want: "g\u00f6z"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t masa \t", want: "masa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeToken(tt.input); got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitTokens(t *testing.T) {
	t.Parallel()

	got := SplitTokens("  Ali'ye   kitabı\tverdi \n")
	want := []string{"Ali'ye", "kitabı", "verdi"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitTokens() = %q, want %q", got, want)
	}
	if got := SplitTokens("   "); len(got) != 0 {
		t.Errorf("SplitTokens(blank) = %q, want empty", got)
	}
}
