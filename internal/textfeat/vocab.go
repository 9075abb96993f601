package textfeat

import (
	"errors"
	"sort"
)

// ErrEmptyVocabulary is returned when fitting finds no usable tokens.
var ErrEmptyVocabulary = errors.New("textfeat: no tokens to build a vocabulary from")

// Vocabulary maps terms to fixed feature indices. It is immutable after
// FitVocabulary returns.
type Vocabulary struct {
	terms   []string
	index   map[string]int
	docFreq []int
	numDocs int
}

// FitVocabulary builds a vocabulary from tokenized documents, keeping at most
// maxFeatures terms ranked by document frequency (ties by term). The kept
// terms are indexed in lexical order. maxFeatures <= 0 keeps every term.
func FitVocabulary(docs [][]string, maxFeatures int) (*Vocabulary, error) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, tok := range doc {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	ranked := make([]string, 0, len(df))
	for term := range df {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if df[ranked[i]] != df[ranked[j]] {
			return df[ranked[i]] > df[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if maxFeatures > 0 && len(ranked) > maxFeatures {
		ranked = ranked[:maxFeatures]
	}
	sort.Strings(ranked)

	v := &Vocabulary{
		terms:   ranked,
		index:   make(map[string]int, len(ranked)),
		docFreq: make([]int, len(ranked)),
		numDocs: len(docs),
	}
	for i, term := range ranked {
		v.index[term] = i
		v.docFreq[i] = df[term]
	}
	return v, nil
}

// Size is the length of every vector built over this vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}

// Index returns the feature index of a term.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at a feature index.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Terms returns a copy of the terms in index order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
