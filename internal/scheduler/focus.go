package scheduler

import (
	"slices"

	"github.com/alexanderramin/studypal/internal/domain"
)

// FocusAreas spreads topics over the days of a plan. With at least one topic
// per day each day takes a consecutive run of len(topics)/PlanDays topics and
// the last day also takes the remainder. With fewer topics than days the list
// wraps around, one topic per day.
func FocusAreas(topics []string) [][]string {
	days := make([][]string, domain.PlanDays)
	n := len(topics)
	if n == 0 {
		return days
	}
	if n < domain.PlanDays {
		for d := range days {
			days[d] = []string{topics[d%n]}
		}
		return days
	}

	per := n / domain.PlanDays
	for d := range days {
		lo, hi := d*per, (d+1)*per
		if d == domain.PlanDays-1 {
			hi = n
		}
		days[d] = slices.Clone(topics[lo:hi])
	}
	return days
}
