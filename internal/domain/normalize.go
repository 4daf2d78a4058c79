package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeToken prepares a corpus token or lemma for lookup:
//   - trims leading/trailing whitespace
//   - converts to Unicode NFC
//
// Case, apostrophes and digits are preserved; they are significant to root finding.
func NormalizeToken(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return norm.NFC.String(text)
}

// SplitTokens splits a line of text on whitespace and normalizes each token.
// Empty tokens are dropped.
func SplitTokens(line string) []string {
	fields := strings.Fields(line)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok := NormalizeToken(f); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
