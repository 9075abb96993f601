package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContentItem is one educational passage of the corpus.
type ContentItem struct {
	Subject string
	Topic   string
	Text    string
	Stats   TextStats
}

// TextStats are the precomputed size statistics of a passage.
type TextStats struct {
	CharCount     int
	WordCount     int
	SentenceCount int
}

// NewContentItem builds a ContentItem with its statistics filled in.
func NewContentItem(subject, topic, text string) ContentItem {
	return ContentItem{
		Subject: subject,
		Topic:   topic,
		Text:    text,
		Stats:   ComputeTextStats(text),
	}
}

// AvgSentenceLength returns words per sentence, or 0 for an empty passage.
func (s TextStats) AvgSentenceLength() float64 {
	if s.SentenceCount == 0 {
		return 0
	}
	return float64(s.WordCount) / float64(s.SentenceCount)
}

// ComputeTextStats counts characters, whitespace-separated words and sentences.
// A sentence ends at '.', '!' or '?'; trailing text without a terminator
// counts as one more sentence.
func ComputeTextStats(text string) TextStats {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TextStats{}
	}

	sentences := 0
	inSentence := false
	for _, r := range trimmed {
		switch {
		case r == '.' || r == '!' || r == '?':
			if inSentence {
				sentences++
				inSentence = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			inSentence = true
		}
	}
	if inSentence {
		sentences++
	}

	return TextStats{
		CharCount:     utf8.RuneCountInString(trimmed),
		WordCount:     len(strings.Fields(trimmed)),
		SentenceCount: sentences,
	}
}
