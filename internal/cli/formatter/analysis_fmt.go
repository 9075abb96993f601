package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
)

// FormatAnalysis renders the readability table of a subject analysis followed
// by the keywords of each topic.
func FormatAnalysis(a *contract.SubjectAnalysis) string {
	var b strings.Builder

	b.WriteString(Header("Content analysis: " + a.Subject))
	b.WriteString("\n")

	rows := make([][]string, 0, len(a.Topics)+1)
	for _, t := range a.Topics {
		rows = append(rows, analysisRow(t.Topic, t.Analysis))
	}
	rows = append(rows, analysisRow(Bold("All topics"), a.Overall))
	b.WriteString(RenderTable(
		[]string{"Topic", "Sentences", "Words", "Unique", "Avg sentence", "Complexity", "Level"},
		rows,
		1, 2, 3, 4, 5,
	))
	b.WriteString("\n")

	b.WriteString(Header("Keywords"))
	b.WriteString("\n")
	for _, t := range a.Topics {
		kw := strings.Join(t.Analysis.Keywords, ", ")
		if kw == "" {
			kw = Dim("no passages")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", Bold(t.Topic), Dim("→"), kw)
	}
	if pos := formatPOS(a.Overall.PartsOfSpeech); pos != "" {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Parts of speech:"), pos)
	}
	return b.String()
}

func analysisRow(name string, t contract.TextAnalysis) []string {
	return []string{
		name,
		strconv.Itoa(t.Sentences),
		strconv.Itoa(t.Words),
		strconv.Itoa(t.UniqueWords),
		fmt.Sprintf("%.1f", t.AvgSentenceLength),
		fmt.Sprintf("%.2f", t.ComplexityScore),
		t.Level,
	}
}

// formatPOS lists part-of-speech counts, most frequent first.
func formatPOS(pos map[string]int) string {
	tags := make([]string, 0, len(pos))
	for p := range pos {
		tags = append(tags, p)
	}
	sort.Slice(tags, func(i, j int) bool {
		if pos[tags[i]] != pos[tags[j]] {
			return pos[tags[i]] > pos[tags[j]]
		}
		return tags[i] < tags[j]
	})
	parts := make([]string, len(tags))
	for i, p := range tags {
		parts[i] = fmt.Sprintf("%s %d", p, pos[p])
	}
	return strings.Join(parts, ", ")
}
