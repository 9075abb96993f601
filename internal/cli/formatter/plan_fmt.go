package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
)

// FormatPlan renders a study plan: overview, the daily schedule, the calendar
// week with its focus topics, weekly activity split, quiz, related topics and
// tips.
func FormatPlan(plan *contract.StudyPlan) string {
	var b strings.Builder

	overview := fmt.Sprintf("%s  %s\n%s  %s\n%s  %s per day, %s per week",
		Dim("Subject "), Bold(plan.Subject),
		Dim("Scenario"), StyleFg.Render(string(plan.Scenario)),
		Dim("Time    "), Bold(Minutes(int(plan.Summary.AvgDailyMinutes+0.5))), Minutes(plan.Summary.TotalMinutes),
	)
	b.WriteString(RenderBox("Study plan", overview))
	b.WriteString("\n\n")

	b.WriteString(Header("Daily schedule"))
	b.WriteString("\n")
	b.WriteString(formatDaySchedule(plan))
	b.WriteString(Dim(fmt.Sprintf("Repeated on each of the %d days.", domain.PlanDays)))
	b.WriteString("\n\n")

	if len(plan.Days) > 0 {
		b.WriteString(Header("Week plan"))
		b.WriteString("\n")
		b.WriteString(formatWeek(plan.Days))
		b.WriteString("\n")
	}

	b.WriteString(Header("Week at a glance"))
	b.WriteString("\n")
	total := float64(plan.Summary.TotalMinutes)
	for _, a := range []struct {
		activity domain.Activity
		minutes  int
	}{
		{domain.ActivityReading, plan.Summary.ReadingMinutes},
		{domain.ActivityPractice, plan.Summary.PracticeMinutes},
		{domain.ActivityRevision, plan.Summary.RevisionMinutes},
	} {
		ratio := 0.0
		if total > 0 {
			ratio = float64(a.minutes) / total
		}
		fmt.Fprintf(&b, "%-9s %s  %s\n", string(a.activity), RenderBar(ratio, 20, ActivityStyle(a.activity).Render), Dim(Minutes(a.minutes)))
	}
	b.WriteString("\n")

	if len(plan.Quiz) > 0 {
		b.WriteString(Header("Practice quiz"))
		b.WriteString("\n")
		b.WriteString(FormatQuiz(plan.Quiz, false))
		b.WriteString("\n")
	}

	if related := formatSuggestions(plan); related != "" {
		b.WriteString(Header("Related topics"))
		b.WriteString("\n")
		b.WriteString(related)
		b.WriteString("\n")
	}

	if len(plan.Resources) > 0 {
		b.WriteString(Header("Resources"))
		b.WriteString("\n")
		for _, r := range plan.Resources {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Tips"))
	b.WriteString("\n")
	for i, tip := range plan.Tips {
		fmt.Fprintf(&b, "  %s %s\n", StyleHeader.Render(strconv.Itoa(i+1)+"."), tip)
	}
	return b.String()
}

// formatDaySchedule renders day 1 as a topic by activity table.
func formatDaySchedule(plan *contract.StudyPlan) string {
	minutes := make(map[string]map[domain.Activity]int)
	for _, e := range plan.Entries {
		if e.Day != 1 {
			continue
		}
		if minutes[e.Topic] == nil {
			minutes[e.Topic] = make(map[domain.Activity]int)
		}
		minutes[e.Topic][e.Activity] += e.AllocatedMinutes
	}

	headers := []string{"Topic"}
	for _, a := range domain.Activities {
		headers = append(headers, strings.ToUpper(string(a[:1]))+string(a[1:]))
	}
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(plan.Topics))
	for _, topic := range plan.Topics {
		row := []string{topic}
		sum := 0
		for _, a := range domain.Activities {
			m := minutes[topic][a]
			sum += m
			row = append(row, Minutes(m))
		}
		rows = append(rows, append(row, Bold(Minutes(sum))))
	}
	return RenderTable(headers, rows, 1, 2, 3, 4)
}

// formatWeek renders one row per calendar day.
func formatWeek(days []contract.PlanDay) string {
	rows := make([][]string, len(days))
	for i, d := range days {
		weekday := d.Weekday
		if len(weekday) > 3 {
			weekday = weekday[:3]
		}
		rows[i] = []string{weekday, Dim(d.Date), strings.Join(d.Focus, ", "), Minutes(d.Minutes)}
	}
	return RenderTable([]string{"Day", "Date", "Focus", "Time"}, rows, 3)
}

func formatSuggestions(plan *contract.StudyPlan) string {
	var b strings.Builder
	for _, topic := range plan.Topics {
		related := plan.ResourceSuggestions[topic]
		if len(related) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %s %s\n", Bold(topic), Dim("→"), strings.Join(related, ", "))
	}
	return b.String()
}
