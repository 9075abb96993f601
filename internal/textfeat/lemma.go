package textfeat

import (
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// dictionary loads the English lemma pack once. A nil lemmatizer leaves only
// the suffix rules in play.
var dictionary = sync.OnceValue(func() *golem.Lemmatizer {
	l, err := golem.New(en.New())
	if err != nil {
		return nil
	}
	return l
})

// uninflected words end like plurals but are already base forms. The
// dictionary would otherwise fold some of them ("physics" to "physic").
var uninflected = map[string]bool{
	"bias": true, "gas": true, "atlas": true, "canvas": true, "lens": true,
	"series": true, "species": true, "means": true, "news": true, "data": true,
	"physics": true, "mathematics": true, "genetics": true, "statistics": true,
}

// Lemmatize reduces a lower-cased token to its dictionary base form. Words the
// dictionary does not know fall back to plural suffix stripping.
func Lemmatize(token string) string {
	if uninflected[token] {
		return token
	}
	if l := dictionary(); l != nil && l.InDict(token) {
		return l.Lemma(token)
	}
	return stripPlural(token)
}

func stripPlural(token string) string {
	switch {
	case strings.HasSuffix(token, "ss"),
		strings.HasSuffix(token, "us"),
		strings.HasSuffix(token, "is"),
		strings.HasSuffix(token, "ics"):
		return token
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"),
		strings.HasSuffix(token, "ches"),
		strings.HasSuffix(token, "shes"),
		strings.HasSuffix(token, "xes"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && len(token) > minTokenLen:
		return token[:len(token)-1]
	}
	return token
}
