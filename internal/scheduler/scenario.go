package scheduler

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/studypal/internal/domain"
)

// ErrUnknownScenario is returned for a scenario outside the weight table.
var ErrUnknownScenario = errors.New("unrecognized scenario")

// ActivityWeights are the relative time shares of the three activities.
type ActivityWeights struct {
	Reading  float64
	Practice float64
	Revision float64
}

// For returns the weight of one activity.
func (w ActivityWeights) For(a domain.Activity) float64 {
	switch a {
	case domain.ActivityReading:
		return w.Reading
	case domain.ActivityPractice:
		return w.Practice
	case domain.ActivityRevision:
		return w.Revision
	}
	return 0
}

// Total returns the sum of the three weights.
func (w ActivityWeights) Total() float64 {
	return w.Reading + w.Practice + w.Revision
}

// scenarioWeights defines each scenario. Only the ratios matter; the daily
// budget is the same for every scenario.
var scenarioWeights = map[domain.Scenario]ActivityWeights{
	domain.ScenarioGeneral:  {Reading: 1.0, Practice: 1.0, Revision: 1.0},
	domain.ScenarioExamPrep: {Reading: 1.0, Practice: 2.0, Revision: 1.5},
	domain.ScenarioHomework: {Reading: 0.7, Practice: 2.5, Revision: 1.0},
	domain.ScenarioProject:  {Reading: 1.5, Practice: 0.8, Revision: 1.0},
}

// WeightsFor returns the activity weights of a scenario.
func WeightsFor(s domain.Scenario) (ActivityWeights, error) {
	w, ok := scenarioWeights[s]
	if !ok {
		return ActivityWeights{}, fmt.Errorf("%w %q", ErrUnknownScenario, s)
	}
	return w, nil
}

// ResolveScenario parses a user-supplied scenario name, accepting the same
// aliases as domain.ParseScenario.
func ResolveScenario(name string) (domain.Scenario, error) {
	s, err := domain.ParseScenario(name)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownScenario, name)
	}
	return s, nil
}
