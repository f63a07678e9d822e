package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopWords are articles and prepositions that carry no signal in exercise
// names. English and Italian, matched as whole words after lowercasing.
var stopWords = map[string]struct{}{
	// English
	"a": {}, "an": {}, "and": {}, "for": {}, "in": {}, "of": {},
	"on": {}, "the": {}, "to": {}, "with": {},
	// Italian
	"ai": {}, "al": {}, "alla": {}, "alle": {}, "con": {}, "da": {},
	"di": {}, "e": {}, "il": {}, "la": {}, "le": {},
	"lo": {}, "per": {}, "su": {}, "sul": {}, "sulla": {},
}

// Normalize canonicalizes a raw exercise name: lowercases, folds diacritics
// to ASCII, strips everything outside letters/digits/whitespace, collapses
// whitespace runs and removes stop words. It is total and idempotent.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]

	for _, w := range words {
		if _, skip := stopWords[w]; skip {
			continue
		}

		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

// foldDiacritics decomposes accented letters and drops the combining marks,
// so "élévation à la poulie" and "trazioni" survive byte-level comparison.
// The transformer is built per call: transform.Chain is not safe for
// concurrent reuse.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}
