package contract

import (
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

// PlanRequest carries the user preferences for one plan generation.
type PlanRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	Topics     []string `json:"topics,omitempty"`
	DailyHours float64  `json:"daily_hours" validate:"gt=0,lte=12"`
	Scenario   string   `json:"scenario" validate:"required"`
	// RecentQuizScore, when set, calibrates quiz difficulty and picks the
	// motivational tip band. Must lie in [0,1].
	RecentQuizScore *float64 `json:"recent_quiz_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	// StartDate is the first day of the plan as YYYY-MM-DD. Empty means today.
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DateLayout is the calendar date format of StartDate and PlanDay.Date.
const DateLayout = "2006-01-02"

// NewPlanRequest returns a request with the general scenario.
func NewPlanRequest(subject string, dailyHours float64) PlanRequest {
	return PlanRequest{
		Subject:    subject,
		DailyHours: dailyHours,
		Scenario:   string(domain.ScenarioGeneral),
	}
}

// QuizQuestion is a quiz item selected for a plan, tagged with the
// classifier's difficulty.
type QuizQuestion struct {
	Question            string            `json:"question"`
	Options             []string          `json:"options"`
	CorrectIndex        int               `json:"correct_index"`
	Subject             string            `json:"subject"`
	Topic               string            `json:"topic"`
	Difficulty          domain.Difficulty `json:"difficulty"`
	LabeledDifficulty   domain.Difficulty `json:"labeled_difficulty"`
	DifficultyConfident bool              `json:"difficulty_confident"`
}

// PlanSummary aggregates the minutes of a plan per activity.
type PlanSummary struct {
	TotalMinutes    int     `json:"total_minutes"`
	ReadingMinutes  int     `json:"reading_minutes"`
	PracticeMinutes int     `json:"practice_minutes"`
	RevisionMinutes int     `json:"revision_minutes"`
	AvgDailyMinutes float64 `json:"avg_daily_minutes"`
}

// PlanDay is one calendar day of a plan with the topics it focuses on.
type PlanDay struct {
	Day     int      `json:"day"`
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Focus   []string `json:"focus"`
	Minutes int      `json:"minutes"`
}

// StudyPlan is the aggregate result of a plan generation. It is immutable
// once returned.
type StudyPlan struct {
	ID                  string                 `json:"id"`
	GeneratedAt         time.Time              `json:"generated_at"`
	Subject             string                 `json:"subject"`
	Topics              []string               `json:"topics"`
	Scenario            domain.Scenario        `json:"scenario"`
	DailyHours          float64                `json:"daily_hours"`
	StartDate           string                 `json:"start_date"`
	Days                []PlanDay              `json:"days"`
	Entries             []domain.ScheduleEntry `json:"entries"`
	Quiz                []QuizQuestion         `json:"quiz"`
	ResourceSuggestions map[string][]string    `json:"resource_suggestions"`
	Resources           []string               `json:"resources,omitempty"`
	Tips                []string               `json:"tips"`
	Summary             PlanSummary            `json:"summary"`
}

// Summarize totals the entries of a plan per activity.
func Summarize(entries []domain.ScheduleEntry) PlanSummary {
	var s PlanSummary
	for _, e := range entries {
		s.TotalMinutes += e.AllocatedMinutes
		switch e.Activity {
		case domain.ActivityReading:
			s.ReadingMinutes += e.AllocatedMinutes
		case domain.ActivityPractice:
			s.PracticeMinutes += e.AllocatedMinutes
		case domain.ActivityRevision:
			s.RevisionMinutes += e.AllocatedMinutes
		}
	}
	s.AvgDailyMinutes = float64(s.TotalMinutes) / float64(domain.PlanDays)
	return s
}
