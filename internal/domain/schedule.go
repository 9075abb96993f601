package domain

// PlanDays is the fixed horizon of every study plan.
const PlanDays = 7

// ScheduleEntry is the time allocated to one activity on one topic on one day.
type ScheduleEntry struct {
	Day              int      `json:"day"`
	Topic            string   `json:"topic"`
	Activity         Activity `json:"activity"`
	AllocatedMinutes int      `json:"allocated_minutes"`
}
