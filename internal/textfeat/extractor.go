package textfeat

import "math"

// Extract returns the raw term-frequency vector of text over vocab. Tokens
// outside the vocabulary are dropped. Empty text yields a zero vector.
func Extract(text string, vocab *Vocabulary) Vector {
	return termFrequency(Tokenize(text), vocab)
}

func termFrequency(tokens []string, vocab *Vocabulary) Vector {
	vec := make(Vector, vocab.Size())
	for _, tok := range tokens {
		if i, ok := vocab.Index(tok); ok {
			vec[i]++
		}
	}
	return vec
}

// TFIDF weights term frequencies by smoothed inverse document frequency and
// L2-normalizes the result.
type TFIDF struct {
	vocab *Vocabulary
	idf   []float64
}

// FitTFIDF fits a vocabulary of at most maxFeatures terms over texts and
// derives idf = ln((1+n)/(1+df)) + 1 for each kept term.
func FitTFIDF(texts []string, maxFeatures int) (*TFIDF, error) {
	docs := make([][]string, len(texts))
	for i, t := range texts {
		docs[i] = Tokenize(t)
	}
	vocab, err := FitVocabulary(docs, maxFeatures)
	if err != nil {
		return nil, err
	}

	idf := make([]float64, vocab.Size())
	n := float64(vocab.numDocs)
	for i, df := range vocab.docFreq {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}
	return &TFIDF{vocab: vocab, idf: idf}, nil
}

// Vocabulary returns the fitted vocabulary.
func (t *TFIDF) Vocabulary() *Vocabulary {
	return t.vocab
}

// Transform returns the L2-normalized TF-IDF vector of text.
func (t *TFIDF) Transform(text string) Vector {
	vec := Extract(text, t.vocab)
	for i := range vec {
		vec[i] *= t.idf[i]
	}
	if n := vec.Norm(); n > 0 {
		for i := range vec {
			vec[i] /= n
		}
	}
	return vec
}
