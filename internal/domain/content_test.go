package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTextStats(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		chars     int
		words     int
		sentences int
	}{
		{"empty", "", 0, 0, 0},
		{"whitespace", "   \n\t ", 0, 0, 0},
		{"single sentence", "Cells divide.", 13, 2, 1},
		{"no terminator", "Cells divide", 12, 2, 1},
		{"ellipsis counts once", "Wait... then go!", 16, 3, 2},
		{"question and exclamation", "Why? Because! Yes.", 18, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTextStats(tc.text)
			assert.Equal(t, tc.chars, got.CharCount)
			assert.Equal(t, tc.words, got.WordCount)
			assert.Equal(t, tc.sentences, got.SentenceCount)
		})
	}
}

func TestAvgSentenceLength(t *testing.T) {
	assert.Equal(t, 0.0, TextStats{}.AvgSentenceLength())
	assert.InDelta(t, 2.5, TextStats{WordCount: 5, SentenceCount: 2}.AvgSentenceLength(), 1e-9)
}

func TestNewContentItem_FillsStats(t *testing.T) {
	item := NewContentItem("Biology", "Genetics", "DNA stores information. Genes are segments of DNA.")
	assert.Equal(t, 8, item.Stats.WordCount)
	assert.Equal(t, 2, item.Stats.SentenceCount)
}
