// Package textfeat turns passages and questions into numeric features.
//
// Every consumer shares one preprocessing pipeline: Unicode folding and
// lower-casing, punctuation stripping, whitespace tokenization, stop-word
// removal and lemmatization. On top of the token stream the package offers a
// fitted Vocabulary, raw term-frequency vectors (used by the difficulty
// classifier), TF-IDF vectors (used by the topic clusterer) and a small
// keyword and part-of-speech summary.
package textfeat
