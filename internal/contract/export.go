package contract

import (
	"strconv"

	"github.com/alexanderramin/studypal/internal/domain"
)

// ExportHeader is the column order of every plan export. Downstream
// consumers depend on it.
var ExportHeader = []string{"Day", "Topic", "Activity", "Minutes"}

// ExportRow is one flattened schedule entry.
type ExportRow struct {
	Day      int             `json:"day"`
	Topic    string          `json:"topic"`
	Activity domain.Activity `json:"activity"`
	Minutes  int             `json:"minutes"`
}

// Strings renders the row in ExportHeader order.
func (r ExportRow) Strings() []string {
	return []string{strconv.Itoa(r.Day), r.Topic, string(r.Activity), strconv.Itoa(r.Minutes)}
}

// ExportRows flattens a plan into rows ordered by day, then plan order.
func ExportRows(plan *StudyPlan) []ExportRow {
	rows := make([]ExportRow, 0, len(plan.Entries))
	for day := 1; day <= domain.PlanDays; day++ {
		for _, e := range plan.Entries {
			if e.Day != day {
				continue
			}
			rows = append(rows, ExportRow{
				Day:      e.Day,
				Topic:    e.Topic,
				Activity: e.Activity,
				Minutes:  e.AllocatedMinutes,
			})
		}
	}
	return rows
}
