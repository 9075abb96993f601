package textfeat

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLen drops very short tokens ("x", "of", "2x") that carry no signal.
const minTokenLen = 3

var lowerCaser = cases.Lower(language.Und)

// Normalize folds accents, lower-cases and replaces every rune that is not a
// letter or digit with a space.
func Normalize(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = lowerCaser.String(folded)

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
}

// Tokenize runs the full preprocessing pipeline and returns lemmas in text
// order. Empty or whitespace-only text yields no tokens.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTokenLen || IsStopWord(f) {
			continue
		}
		tokens = append(tokens, Lemmatize(f))
	}
	return tokens
}
