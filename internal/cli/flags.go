package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// scenarioValue is a --scenario flag that rejects unknown names at parse
// time and stores the canonical name.
type scenarioValue struct {
	s domain.Scenario
}

var _ pflag.Value = (*scenarioValue)(nil)

func newScenarioValue(def domain.Scenario) *scenarioValue {
	return &scenarioValue{s: def}
}

func (v *scenarioValue) String() string { return string(v.s) }
func (v *scenarioValue) Type() string   { return "scenario" }

func (v *scenarioValue) Set(s string) error {
	sc, err := domain.ParseScenario(s)
	if err != nil {
		return err
	}
	v.s = sc
	return nil
}

// scoreValue is an optional float flag; Ptr is nil until the flag is set.
type scoreValue struct {
	v   float64
	set bool
}

var _ pflag.Value = (*scoreValue)(nil)

func (v *scoreValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

func (v *scoreValue) Type() string { return "float" }

func (v *scoreValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("expected a number between 0 and 1, got %q", s)
	}
	v.v, v.set = f, true
	return nil
}

func (v *scoreValue) Ptr() *float64 {
	if !v.set {
		return nil
	}
	f := v.v
	return &f
}

// planFlags are the plan request flags shared by `plan` and `export`.
type planFlags struct {
	subject  string
	topics   []string
	hours    float64
	scenario *scenarioValue
	score    scoreValue
	start    string
}

func (f *planFlags) register(fs *pflag.FlagSet) {
	f.scenario = newScenarioValue(domain.ScenarioGeneral)
	fs.StringVar(&f.subject, "subject", "", "Subject to plan for")
	fs.StringArrayVar(&f.topics, "topic", nil, "Topic to include (repeatable; default all topics of the subject)")
	fs.Float64Var(&f.hours, "hours", 2, "Daily study hours (0 < h <= 12)")
	fs.Var(f.scenario, "scenario", "Study scenario: general, exam_prep, homework or project")
	fs.Var(&f.score, "score", "Most recent quiz score in [0,1]")
	fs.StringVar(&f.start, "start", "", "First day of the plan as YYYY-MM-DD (default today)")
}

func (f *planFlags) request() contract.PlanRequest {
	req := contract.NewPlanRequest(f.subject, f.hours)
	req.Topics = f.topics
	req.Scenario = f.scenario.String()
	req.RecentQuizScore = f.score.Ptr()
	req.StartDate = f.start
	return req
}

func requireSubject(subject string) error {
	if subject == "" {
		return fmt.Errorf("--subject is required")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func addJSONFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "json", false, "Print machine-readable JSON")
}
