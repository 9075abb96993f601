package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/studypal/internal/cli/formatter"
	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studypalHuhTheme styles huh forms with the formatter palette.
func studypalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues holds the raw form fields before they become a request.
type planFormValues struct {
	Subject  string
	Topics   []string
	Hours    string
	Scenario string
	Score    string
}

func (v planFormValues) apply(req *contract.PlanRequest) error {
	hours, err := strconv.ParseFloat(strings.TrimSpace(v.Hours), 64)
	if err != nil {
		return fmt.Errorf("invalid daily hours %q", v.Hours)
	}
	req.Subject = v.Subject
	req.Topics = v.Topics
	req.DailyHours = hours
	req.Scenario = v.Scenario
	req.RecentQuizScore = nil
	if s := strings.TrimSpace(v.Score); s != "" {
		score, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid quiz score %q", v.Score)
		}
		req.RecentQuizScore = &score
	}
	return nil
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	if h <= 0 || h > 12 {
		return fmt.Errorf("daily hours must be greater than 0 and at most 12")
	}
	return nil
}

func validateOptionalScore(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return fmt.Errorf("score must be a number between 0 and 1")
	}
	return nil
}

// planForm builds the interactive plan form. The topic list follows the
// selected subject.
func planForm(subjects []contract.SubjectInfo, values *planFormValues) *huh.Form {
	subjectOpts := make([]huh.Option[string], 0, len(subjects))
	topicsBySubject := make(map[string][]string, len(subjects))
	for _, s := range subjects {
		subjectOpts = append(subjectOpts, huh.NewOption(s.Name, s.Name))
		topicsBySubject[s.Name] = s.Topics
	}

	scenarioOpts := make([]huh.Option[string], 0, len(domain.Scenarios))
	for _, sc := range domain.Scenarios {
		scenarioOpts = append(scenarioOpts, huh.NewOption(strings.ReplaceAll(string(sc), "_", " "), string(sc)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOpts...).
				Value(&values.Subject),
			huh.NewMultiSelect[string]().
				Title("Topics").
				Description("Leave empty to study every topic").
				OptionsFunc(func() []huh.Option[string] {
					return huh.NewOptions(topicsBySubject[values.Subject]...)
				}, &values.Subject).
				Value(&values.Topics),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily hours").
				Placeholder("2").
				Value(&values.Hours).
				Validate(validateHours),
			huh.NewSelect[string]().
				Title("Scenario").
				Options(scenarioOpts...).
				Value(&values.Scenario),
			huh.NewInput().
				Title("Recent quiz score (0-1, blank to skip)").
				Value(&values.Score).
				Validate(validateOptionalScore),
		),
	).WithTheme(studypalHuhTheme()).WithShowHelp(false)
}

func runPlanForm(subjects []contract.SubjectInfo, req *contract.PlanRequest) error {
	if len(subjects) == 0 {
		return fmt.Errorf("no subjects available")
	}
	values := planFormValues{
		Subject:  req.Subject,
		Topics:   req.Topics,
		Hours:    strconv.FormatFloat(req.DailyHours, 'g', -1, 64),
		Scenario: req.Scenario,
	}
	if values.Subject == "" {
		values.Subject = subjects[0].Name
	}
	if req.RecentQuizScore != nil {
		values.Score = strconv.FormatFloat(*req.RecentQuizScore, 'g', -1, 64)
	}
	if err := planForm(subjects, &values).Run(); err != nil {
		return err
	}
	return values.apply(req)
}

// quizForm asks each question as a select over its options. Answers are
// written to answers[i] as option indices.
func quizForm(quiz []contract.QuizQuestion, answers []int) *huh.Form {
	groups := make([]*huh.Group, 0, len(quiz))
	for i, q := range quiz {
		opts := make([]huh.Option[int], 0, len(q.Options))
		for j, opt := range q.Options {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s) %s", formatter.OptionLetter(j), opt), j))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Q%d. %s", i+1, q.Question)).
				Description(q.Topic).
				Options(opts...).
				Value(&answers[i]),
		))
	}
	return huh.NewForm(groups...).WithTheme(studypalHuhTheme()).WithShowHelp(false)
}

func runQuizForm(quiz []contract.QuizQuestion) (map[int]int, error) {
	answers := make([]int, len(quiz))
	if err := quizForm(quiz, answers).Run(); err != nil {
		return nil, err
	}
	out := make(map[int]int, len(answers))
	for i, a := range answers {
		out[i] = a
	}
	return out, nil
}
