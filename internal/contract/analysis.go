package contract

// TextAnalysis is the keyword, part-of-speech and readability digest of a
// body of study text.
type TextAnalysis struct {
	Keywords          []string       `json:"keywords"`
	PartsOfSpeech     map[string]int `json:"parts_of_speech"`
	Sentences         int            `json:"sentences"`
	Words             int            `json:"words"`
	UniqueWords       int            `json:"unique_words"`
	AvgSentenceLength float64        `json:"avg_sentence_length"`
	AvgWordLength     float64        `json:"avg_word_length"`
	ComplexityScore   float64        `json:"complexity_score"`
	Level             string         `json:"level"`
}

// TopicAnalysis digests the passages of one topic.
type TopicAnalysis struct {
	Topic    string       `json:"topic"`
	Passages int          `json:"passages"`
	Analysis TextAnalysis `json:"analysis"`
}

// SubjectAnalysis digests the passages of a subject, overall and per topic.
type SubjectAnalysis struct {
	Subject string          `json:"subject"`
	Overall TextAnalysis    `json:"overall"`
	Topics  []TopicAnalysis `json:"topics"`
}
