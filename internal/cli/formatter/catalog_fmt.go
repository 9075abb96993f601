package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
)

// FormatSubjects lists subjects with their topics.
func FormatSubjects(subjects []contract.SubjectInfo) string {
	if len(subjects) == 0 {
		return Dim("No subjects available.") + "\n"
	}
	var b strings.Builder
	for i, s := range subjects {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", Bold(s.Name), Dim(fmt.Sprintf("(%d topics)", len(s.Topics))))
		for _, t := range s.Topics {
			fmt.Fprintf(&b, "  • %s\n", t)
		}
	}
	return b.String()
}

// FormatModelReport renders classifier metrics and the cluster map.
func FormatModelReport(r *contract.ModelReport) string {
	var b strings.Builder
	b.WriteString(Header("Difficulty classifier"))
	b.WriteString("\n")
	scoredOn := "held-out set"
	if !r.Holdout {
		scoredOn = "training set (corpus too small for a holdout)"
	}
	b.WriteString(RenderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Accuracy", Percent(r.Accuracy)},
			{"Weighted F1", fmt.Sprintf("%.3f", r.F1)},
			{"Train size", strconv.Itoa(r.TrainSize)},
			{"Test size", strconv.Itoa(r.TestSize)},
			{"Vocabulary", strconv.Itoa(r.VocabularySize)},
		},
		1,
	))
	fmt.Fprintf(&b, "%s\n\n", Dim("Scored on the "+scoredOn+"."))

	b.WriteString(Header("Topic clusters"))
	b.WriteString("\n")
	for _, c := range r.Clusters {
		fmt.Fprintf(&b, "  %s %s\n", StyleHeader.Render(fmt.Sprintf("#%d", c.ID)), strings.Join(c.Topics, ", "))
	}
	return b.String()
}
