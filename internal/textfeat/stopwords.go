package textfeat

// stopWords is a fixed English stop-word list. It must never change between
// training and inference.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "could", "did", "do", "does",
		"doing", "down", "during", "each", "either", "etc", "every", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers", "herself",
		"him", "himself", "his", "how", "however", "i", "if", "in", "into", "is",
		"it", "its", "itself", "just", "many", "may", "me", "might", "more", "most",
		"much", "must", "my", "myself", "neither", "no", "nor", "not", "now", "of",
		"off", "on", "once", "one", "only", "or", "other", "our", "ours", "ourselves",
		"out", "over", "own", "same", "shall", "she", "should", "since", "so", "some",
		"such", "than", "that", "the", "their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "thus", "to", "too", "under", "until",
		"up", "upon", "us", "very", "was", "we", "were", "what", "when", "where",
		"whether", "which", "while", "who", "whom", "whose", "why", "will", "with", "within",
		"without", "would", "yet", "you", "your", "yours", "yourself", "yourselves",
	} {
		stopWords[w] = true
	}
}

// IsStopWord reports whether a lower-cased token is in the stop-word list.
func IsStopWord(token string) bool {
	return stopWords[token]
}
