package domain

import (
	"fmt"
	"strings"
)

type Scenario string

const (
	ScenarioGeneral  Scenario = "general"
	ScenarioExamPrep Scenario = "exam_prep"
	ScenarioHomework Scenario = "homework"
	ScenarioProject  Scenario = "project"
)

// Scenarios lists every recognized scenario in display order.
var Scenarios = []Scenario{ScenarioGeneral, ScenarioExamPrep, ScenarioHomework, ScenarioProject}

// scenarioAliases maps accepted spellings onto canonical scenarios.
var scenarioAliases = map[string]Scenario{
	"general":       ScenarioGeneral,
	"general_study": ScenarioGeneral,
	"exam_prep":     ScenarioExamPrep,
	"homework":      ScenarioHomework,
	"project":       ScenarioProject,
	"project_work":  ScenarioProject,
}

// ParseScenario resolves a user-supplied scenario name. Matching ignores case
// and surrounding whitespace; unknown names are an error, never a default.
func ParseScenario(s string) (Scenario, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if sc, ok := scenarioAliases[key]; ok {
		return sc, nil
	}
	return "", fmt.Errorf("unrecognized scenario %q", s)
}

type Activity string

const (
	ActivityReading  Activity = "reading"
	ActivityPractice Activity = "practice"
	ActivityRevision Activity = "revision"
)

// Activities is the fixed activity order used within every topic of a day.
var Activities = []Activity{ActivityReading, ActivityPractice, ActivityRevision}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
)

// ValidDifficulties is the canonical set of accepted difficulty labels.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true,
}

type ComplexityScale string

const (
	ComplexityLog    ComplexityScale = "log"
	ComplexityLinear ComplexityScale = "linear"
	ComplexityNone   ComplexityScale = "none"
)

// ParseComplexityScale resolves a complexity scale name.
func ParseComplexityScale(s string) (ComplexityScale, error) {
	switch ComplexityScale(strings.ToLower(strings.TrimSpace(s))) {
	case ComplexityLog:
		return ComplexityLog, nil
	case ComplexityLinear:
		return ComplexityLinear, nil
	case ComplexityNone:
		return ComplexityNone, nil
	}
	return "", fmt.Errorf("unrecognized complexity scale %q", s)
}
