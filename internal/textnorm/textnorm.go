// Package textnorm normalizes free-text task descriptions for keyword
// matching: NFKC fold, lowercase, punctuation stripped, whitespace collapsed.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical matching form of s.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	space := true // collapse leading/consecutive whitespace
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			space = false
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			if !space {
				b.WriteRune(' ')
				space = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens splits s into normalized word tokens.
func Tokens(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Fields(n)
}

// TokenSet returns the distinct normalized tokens of s.
func TokenSet(s string) map[string]struct{} {
	toks := Tokens(s)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}

// NGrams returns every contiguous n-gram of tokens for n in [1, maxN],
// each joined by single spaces, in order of appearance.
func NGrams(tokens []string, maxN int) []string {
	if maxN > len(tokens) {
		maxN = len(tokens)
	}
	var grams []string
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}
