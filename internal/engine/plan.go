package engine

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/scheduler"
	"github.com/alexanderramin/studypal/internal/tips"
)

// resolvedRequest is a validated request with canonical names.
type resolvedRequest struct {
	subject  string
	topics   []string
	hours    float64
	scenario domain.Scenario
	score    *float64
	start    time.Time
}

// GeneratePlan assembles a complete StudyPlan. Any failing step fails the
// whole call; no partial plan is returned.
func (e *Engine) GeneratePlan(ctx context.Context, req contract.PlanRequest) (plan *contract.StudyPlan, err error) {
	start := e.now()
	defer func() {
		fields := map[string]any{"subject": req.Subject, "scenario": req.Scenario}
		if plan != nil {
			fields["topics"] = len(plan.Topics)
			fields["entries"] = len(plan.Entries)
		}
		e.observe(ctx, "generate_plan", start, err, fields)
	}()

	rr, err := e.resolvePlanRequest(req)
	if err != nil {
		return nil, err
	}
	models, err := e.Models(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]scheduler.TopicInput, len(rr.topics))
	for i, t := range rr.topics {
		inputs[i] = scheduler.NewTopicInput(t, e.store.Items(rr.subject, t))
	}
	entries, err := scheduler.Allocate(scheduler.Request{
		Topics:     inputs,
		DailyHours: rr.hours,
		Scenario:   rr.scenario,
		Scale:      e.cfg.ComplexityScale,
		Strength:   e.cfg.ComplexityStrength,
	})
	if err != nil {
		return nil, mapScheduleError(err)
	}

	quiz := e.selectQuiz(models, rr.subject, rr.topics, rr.score)

	suggestions := make(map[string][]string, len(rr.topics))
	for _, t := range rr.topics {
		related := models.Clusters.Suggest(t)
		if related == nil {
			related = []string{}
		}
		suggestions[t] = related
	}

	medium := 0
	for _, q := range quiz {
		if q.Difficulty == domain.DifficultyMedium {
			medium++
		}
	}
	var passages []string
	for _, it := range e.store.SubjectItems(rr.subject) {
		passages = append(passages, it.Text)
	}
	tipList, err := tips.Generate(tips.Input{
		Subject:     rr.subject,
		Topics:      rr.topics,
		Scenario:    rr.scenario,
		DailyHours:  rr.hours,
		RecentScore: rr.score,
		Passages:    passages,
		Related:     suggestions,
		MediumCount: medium,
		QuizSize:    len(quiz),
	})
	if err != nil {
		if errors.Is(err, tips.ErrScoreOutOfRange) {
			return nil, contract.Validation(err)
		}
		return nil, contract.Internal(err)
	}

	return &contract.StudyPlan{
		ID:                  e.newID(),
		GeneratedAt:         e.now().UTC(),
		Subject:             rr.subject,
		Topics:              rr.topics,
		Scenario:            rr.scenario,
		DailyHours:          rr.hours,
		StartDate:           rr.start.Format(contract.DateLayout),
		Days:                planDays(rr.start, rr.topics, entries),
		Entries:             entries,
		Quiz:                quiz,
		ResourceSuggestions: suggestions,
		Resources:           e.store.Resources(rr.subject),
		Tips:                tipList,
		Summary:             contract.Summarize(entries),
	}, nil
}

func (e *Engine) resolvePlanRequest(req contract.PlanRequest) (resolvedRequest, error) {
	subject, topics, err := e.resolveTopics(req.Subject, req.Topics)
	if err != nil {
		return resolvedRequest{}, err
	}
	if math.IsNaN(req.DailyHours) || req.DailyHours <= 0 || req.DailyHours > scheduler.MaxDailyHours {
		return resolvedRequest{}, contract.Validationf("daily hours must be greater than 0 and at most %g, got %g",
			scheduler.MaxDailyHours, req.DailyHours)
	}
	scenario, err := scheduler.ResolveScenario(req.Scenario)
	if err != nil {
		return resolvedRequest{}, contract.Validation(err)
	}
	if err := validateScore(req.RecentQuizScore); err != nil {
		return resolvedRequest{}, err
	}
	start, err := e.startDate(req.StartDate)
	if err != nil {
		return resolvedRequest{}, err
	}
	return resolvedRequest{
		subject:  subject,
		topics:   topics,
		hours:    req.DailyHours,
		scenario: scenario,
		score:    req.RecentQuizScore,
		start:    start,
	}, nil
}

// startDate parses a YYYY-MM-DD start date, defaulting to today.
func (e *Engine) startDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := e.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(contract.DateLayout, s)
	if err != nil {
		return time.Time{}, contract.Validationf("start date must be YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

// planDays lays the plan out on the calendar: date, weekday, focus topics and
// the minutes scheduled for each day.
func planDays(start time.Time, topics []string, entries []domain.ScheduleEntry) []contract.PlanDay {
	minutes := make(map[int]int, domain.PlanDays)
	for _, e := range entries {
		minutes[e.Day] += e.AllocatedMinutes
	}
	focus := scheduler.FocusAreas(topics)
	days := make([]contract.PlanDay, domain.PlanDays)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = contract.PlanDay{
			Day:     i + 1,
			Date:    date.Format(contract.DateLayout),
			Weekday: date.Weekday().String(),
			Focus:   focus[i],
			Minutes: minutes[i+1],
		}
	}
	return days
}

// resolveTopics returns the canonical subject and its effective topics: the
// explicit selection, or every topic of the subject when none is given.
func (e *Engine) resolveTopics(subject string, selected []string) (string, []string, error) {
	canonical, ok := e.store.CanonicalSubject(subject)
	if !ok {
		return "", nil, contract.Validationf("unknown subject %q", subject)
	}

	var topics []string
	seen := make(map[string]bool)
	for _, t := range selected {
		if strings.TrimSpace(t) == "" {
			continue
		}
		name, ok := e.store.CanonicalTopic(canonical, t)
		if !ok {
			return "", nil, contract.Validationf("topic %q is not part of subject %q", t, canonical)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		topics = append(topics, name)
	}
	if len(topics) == 0 {
		topics, _ = e.store.Topics(canonical)
	}
	if len(topics) == 0 {
		return "", nil, contract.Validationf("subject %q has no topics", canonical)
	}
	return canonical, topics, nil
}

func validateScore(score *float64) error {
	if score == nil {
		return nil
	}
	if s := *score; math.IsNaN(s) || s < 0 || s > 1 {
		return contract.Validationf("recent quiz score must be between 0 and 1, got %g", s)
	}
	return nil
}

func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrInvalidHours),
		errors.Is(err, scheduler.ErrUnknownScenario),
		errors.Is(err, scheduler.ErrNoTopics),
		errors.Is(err, scheduler.ErrDuplicateTopic):
		return contract.Validation(err)
	}
	return contract.Internal(err)
}
