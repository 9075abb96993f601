package scheduler

import (
	"math"

	"github.com/alexanderramin/studypal/internal/domain"
)

// minTopicWeight keeps every topic in the plan however simple its content.
const minTopicWeight = 0.1

// TopicInput is one topic to schedule with its content density.
type TopicInput struct {
	Topic string
	// AvgSentenceLength is words per sentence across the topic's passages;
	// zero when the topic has no passages.
	AvgSentenceLength float64
}

// NewTopicInput aggregates the passages of a topic into a TopicInput.
func NewTopicInput(topic string, items []domain.ContentItem) TopicInput {
	var words, sentences int
	for _, it := range items {
		words += it.Stats.WordCount
		sentences += it.Stats.SentenceCount
	}
	in := TopicInput{Topic: topic}
	if sentences > 0 {
		in.AvgSentenceLength = float64(words) / float64(sentences)
	}
	return in
}

// TopicWeights returns one weight per topic. Each topic's density is divided
// by the mean density of the topics that have content, giving a ratio r, and
// scaled: linear 1+s(r-1), log 1+s·ln r, none 1. Topics without content get
// r = 1. Weights never drop below minTopicWeight.
func TopicWeights(topics []TopicInput, scale domain.ComplexityScale, strength float64) []float64 {
	weights := make([]float64, len(topics))

	var sum float64
	var n int
	for _, t := range topics {
		if t.AvgSentenceLength > 0 {
			sum += t.AvgSentenceLength
			n++
		}
	}

	for i, t := range topics {
		r := 1.0
		if n > 0 && t.AvgSentenceLength > 0 {
			r = t.AvgSentenceLength / (sum / float64(n))
		}

		w := 1.0
		switch scale {
		case domain.ComplexityLinear:
			w = 1 + strength*(r-1)
		case domain.ComplexityLog:
			w = 1 + strength*math.Log(r)
		}
		weights[i] = math.Max(w, minTopicWeight)
	}
	return weights
}
