package textfeat

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/alexanderramin/studypal/internal/domain"
)

type PartOfSpeech string

const (
	PosNoun      PartOfSpeech = "noun"
	PosVerb      PartOfSpeech = "verb"
	PosAdjective PartOfSpeech = "adjective"
	PosAdverb    PartOfSpeech = "adverb"
	PosNumber    PartOfSpeech = "number"
)

// Summary is the keyword and part-of-speech digest of a text.
type Summary struct {
	Keywords          []string
	PartsOfSpeech     map[PartOfSpeech]int
	Sentences         int
	Words             int
	UniqueWords       int
	AvgSentenceLength float64
	AvgWordLength     float64
	ComplexityScore   float64
	Level             string
}

// Summarize extracts the top k keywords of text together with a coarse
// part-of-speech histogram and readability figures.
func Summarize(text string, k int) Summary {
	tokens := Tokenize(text)
	stats := domain.ComputeTextStats(text)

	pos := make(map[PartOfSpeech]int)
	unique := make(map[string]struct{})
	var letters int
	for _, tok := range tokens {
		pos[TagPOS(tok)]++
		unique[tok] = struct{}{}
		letters += len([]rune(tok))
	}

	s := Summary{
		Keywords:          TopKeywords([][]string{tokens}, k),
		PartsOfSpeech:     pos,
		Sentences:         stats.SentenceCount,
		Words:             stats.WordCount,
		UniqueWords:       len(unique),
		AvgSentenceLength: stats.AvgSentenceLength(),
	}
	if len(tokens) > 0 {
		s.AvgWordLength = float64(letters) / float64(len(tokens))
	}
	s.ComplexityScore = math.Min(10, s.AvgSentenceLength/10+s.AvgWordLength/5)
	switch {
	case s.AvgSentenceLength < 15:
		s.Level = "Easy"
	case s.AvgSentenceLength < 25:
		s.Level = "Medium"
	default:
		s.Level = "Hard"
	}
	return s
}

// Keywords ranks the tokens of several texts by total frequency.
func Keywords(texts []string, k int) []string {
	docs := make([][]string, len(texts))
	for i, t := range texts {
		docs[i] = Tokenize(t)
	}
	return TopKeywords(docs, k)
}

// TopKeywords returns the k most frequent tokens across docs, ties broken
// lexically. Numbers are never keywords.
func TopKeywords(docs [][]string, k int) []string {
	freq := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range doc {
			if TagPOS(tok) == PosNumber {
				continue
			}
			freq[tok]++
		}
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if k >= 0 && len(words) > k {
		words = words[:k]
	}
	return words
}

var (
	adverbSuffixes    = []string{"ly"}
	verbSuffixes      = []string{"ing", "ed", "ize", "ise", "ify", "ate"}
	adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "al", "ic", "less", "ary"}
)

// TagPOS assigns a coarse part of speech from the token's shape. It is a
// suffix heuristic, not a trained tagger.
func TagPOS(token string) PartOfSpeech {
	if token != "" && strings.IndexFunc(token, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		return PosNumber
	}
	for _, group := range []struct {
		pos      PartOfSpeech
		suffixes []string
	}{
		{PosAdverb, adverbSuffixes},
		{PosVerb, verbSuffixes},
		{PosAdjective, adjectiveSuffixes},
	} {
		for _, suf := range group.suffixes {
			if strings.HasSuffix(token, suf) && len(token) > len(suf)+2 {
				return group.pos
			}
		}
	}
	return PosNoun
}
