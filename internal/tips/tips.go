// Package tips builds the ordered list of study recommendations attached to
// every plan.
package tips

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/textfeat"
)

// MinTips is the minimum length of every generated list.
const MinTips = 5

// keywordTips is how many top keywords get their own tip.
const keywordTips = 3

var ErrScoreOutOfRange = errors.New("recent quiz score must be between 0 and 1")

// Input carries every signal the generator uses. Only Subject is required.
type Input struct {
	Subject  string
	Topics   []string
	Scenario domain.Scenario
	// DailyHours of zero skips the time-budget tip.
	DailyHours  float64
	RecentScore *float64
	// Passages are the texts keywords are extracted from.
	Passages []string
	// Related maps each planned topic to its cluster suggestions.
	Related map[string][]string
	// MediumCount of QuizSize quiz questions were predicted medium.
	MediumCount int
	QuizSize    int
}

// Generate returns at least MinTips distinct tips in a fixed order:
// motivational, content-derived, subject, scenario, time budget, then general
// padding. The content-derived group is the keyword tips followed by the
// cluster tip and the classifier tip; all of them derive from the subject's
// content or the models trained on it. Identical inputs give identical output.
func Generate(in Input) ([]string, error) {
	if in.RecentScore != nil {
		s := *in.RecentScore
		if math.IsNaN(s) || s < 0 || s > 1 {
			return nil, fmt.Errorf("%w: got %g", ErrScoreOutOfRange, s)
		}
	}

	var l list
	subjectKey := strings.ToLower(strings.TrimSpace(in.Subject))

	if in.RecentScore != nil {
		l.add(bandFor(*in.RecentScore).Message)
	} else if s, ok := starters[subjectKey]; ok {
		l.add(s)
	} else {
		l.add(defaultStarter)
	}

	for _, kw := range textfeat.Keywords(in.Passages, keywordTips) {
		l.add(keywordTip(kw))
	}

	l.add(clusterTip(in.Topics, in.Related))

	if in.QuizSize > 0 && in.MediumCount > 0 {
		l.add(fmt.Sprintf("%d of your %d quiz questions are medium difficulty, so leave extra time for them",
			in.MediumCount, in.QuizSize))
	}

	static := subjectTips[subjectKey]
	if len(static) > staticPerSubject {
		static = static[:staticPerSubject]
	}
	l.add(static...)

	l.add(scenarioTips[in.Scenario]...)

	l.add(timeTip(in.DailyHours))

	for _, g := range generalTips {
		if len(l.items) >= MinTips {
			break
		}
		l.add(g)
	}
	return l.items, nil
}

// keywordTip picks a template by what the keyword names.
func keywordTip(kw string) string {
	switch {
	case strings.Contains(kw, "problem") || strings.Contains(kw, "equation"):
		return fmt.Sprintf("Practice %s-related exercises daily", kw)
	case strings.Contains(kw, "theory") || strings.Contains(kw, "concept"):
		return fmt.Sprintf("Create concept maps for %s understanding", kw)
	case strings.Contains(kw, "experiment") || strings.Contains(kw, "lab"):
		return fmt.Sprintf("Review %s procedures and safety protocols", kw)
	}
	return fmt.Sprintf("Focus on understanding %s fundamentals", kw)
}

// clusterTip points at the first planned topic that has related topics.
func clusterTip(topics []string, related map[string][]string) string {
	for _, t := range topics {
		if rel := related[t]; len(rel) > 0 {
			return fmt.Sprintf("Strengthen %s by also reviewing related topics: %s", t, strings.Join(rel, ", "))
		}
	}
	return ""
}

func timeTip(hours float64) string {
	switch {
	case hours <= 0:
		return ""
	case hours < 1:
		return "Consider increasing study time to at least 1 hour daily for effective learning"
	case hours > 4:
		return "Break long study sessions into 90-minute chunks with 15-minute breaks"
	case hours >= 2:
		return "Use the Pomodoro Technique: 25 minutes focused study + 5 minute breaks"
	}
	return ""
}

// list is an insertion-ordered set of non-empty strings.
type list struct {
	items []string
	seen  map[string]bool
}

func (l *list) add(tips ...string) {
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	for _, t := range tips {
		if t == "" || l.seen[t] {
			continue
		}
		l.seen[t] = true
		l.items = append(l.items, t)
	}
}
