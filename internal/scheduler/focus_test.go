package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusAreas(t *testing.T) {
	topics := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("T%d", i+1)
		}
		return out
	}

	tests := []struct {
		name   string
		topics []string
		want   [][]string
	}{
		{
			name:   "no topics",
			topics: nil,
			want:   make([][]string, 7),
		},
		{
			name:   "one topic every day",
			topics: topics(1),
			want:   [][]string{{"T1"}, {"T1"}, {"T1"}, {"T1"}, {"T1"}, {"T1"}, {"T1"}},
		},
		{
			name:   "fewer topics than days wrap around",
			topics: topics(4),
			want:   [][]string{{"T1"}, {"T2"}, {"T3"}, {"T4"}, {"T1"}, {"T2"}, {"T3"}},
		},
		{
			name:   "one topic per day",
			topics: topics(7),
			want:   [][]string{{"T1"}, {"T2"}, {"T3"}, {"T4"}, {"T5"}, {"T6"}, {"T7"}},
		},
		{
			name:   "last day takes the remainder",
			topics: topics(10),
			want:   [][]string{{"T1"}, {"T2"}, {"T3"}, {"T4"}, {"T5"}, {"T6"}, {"T7", "T8", "T9", "T10"}},
		},
		{
			name:   "runs of two",
			topics: topics(15),
			want: [][]string{
				{"T1", "T2"}, {"T3", "T4"}, {"T5", "T6"}, {"T7", "T8"},
				{"T9", "T10"}, {"T11", "T12"}, {"T13", "T14", "T15"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FocusAreas(tt.topics)
			require.Len(t, got, 7)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFocusAreas_EveryTopicAppears(t *testing.T) {
	for n := 1; n <= 20; n++ {
		in := make([]string, n)
		for i := range in {
			in[i] = fmt.Sprintf("T%d", i)
		}
		seen := make(map[string]bool)
		for _, day := range FocusAreas(in) {
			assert.NotEmpty(t, day, "n=%d", n)
			for _, topic := range day {
				seen[topic] = true
			}
		}
		assert.Len(t, seen, n, "n=%d", n)
	}
}
