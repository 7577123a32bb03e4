// Package textproc turns raw extracted text into the normalized lexical form
// shared by every document that enters the similarity pipeline.
package textproc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// minTokenLen is the shortest token (in runes) that survives normalization.
const minTokenLen = 3

// acceptedRune reports whether r may appear in normalized text. The set is the
// Spanish lowercase alphabet with its accented vowels and ñ.
func acceptedRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ñ':
		return true
	}
	return false
}

// Normalize maps raw text to a normalized bag-of-words string: NFC fold,
// lowercase, every rune outside the accepted alphabet becomes a space, tokens
// shorter than three runes or in the stop-word set are dropped, and the
// survivors are rejoined with single spaces.
//
// The function is idempotent and is the single normalization used for both
// candidate texts and the ideal profile; scoring is only meaningful when both
// sides went through the same mapping.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if acceptedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) < minTokenLen {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// Tokens returns the normalized text split into its surviving tokens.
func Tokens(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}
