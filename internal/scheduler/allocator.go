package scheduler

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/studypal/internal/domain"
)

// MaxDailyHours is the largest accepted daily study budget.
const MaxDailyHours = 12.0

// floorEpsilon absorbs float error so shares like 60/3 floor to 20, not 19.
const floorEpsilon = 1e-9

var (
	ErrInvalidHours   = errors.New("daily hours must be greater than 0 and at most 12")
	ErrNoTopics       = errors.New("no topics to schedule")
	ErrDuplicateTopic = errors.New("duplicate topic")
)

// Request is the input of Allocate. Topics are already resolved: the caller
// substitutes the subject's full topic list for an empty selection.
type Request struct {
	Topics     []TopicInput
	DailyHours float64
	Scenario   domain.Scenario
	Scale      domain.ComplexityScale
	Strength   float64
}

// DayBudget converts a daily hour budget to whole minutes.
func DayBudget(hours float64) int {
	return int(math.Round(hours * 60))
}

// Allocate distributes the daily budget over topics and activities and
// repeats the same grid on each of the 7 days. Entries are ordered by day,
// then topic in request order, then activity (reading, practice, revision).
func Allocate(req Request) ([]domain.ScheduleEntry, error) {
	if math.IsNaN(req.DailyHours) || req.DailyHours <= 0 || req.DailyHours > MaxDailyHours {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidHours, req.DailyHours)
	}
	if len(req.Topics) == 0 {
		return nil, ErrNoTopics
	}
	seen := make(map[string]bool, len(req.Topics))
	for _, t := range req.Topics {
		if seen[t.Topic] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateTopic, t.Topic)
		}
		seen[t.Topic] = true
	}
	activity, err := WeightsFor(req.Scenario)
	if err != nil {
		return nil, err
	}

	grid := dayGrid(
		DayBudget(req.DailyHours),
		TopicWeights(req.Topics, req.Scale, req.Strength),
		activity,
	)

	entries := make([]domain.ScheduleEntry, 0, domain.PlanDays*len(grid))
	for day := 1; day <= domain.PlanDays; day++ {
		for i, t := range req.Topics {
			for j, a := range domain.Activities {
				entries = append(entries, domain.ScheduleEntry{
					Day:              day,
					Topic:            t.Topic,
					Activity:         a,
					AllocatedMinutes: grid[i*len(domain.Activities)+j],
				})
			}
		}
	}
	return entries, nil
}

// dayGrid returns the minutes of one day as a flat topic-major grid of
// topic × activity cells. The grid sums to budget, except for a single topic
// whose budget is below one minute per activity: every activity with a
// non-zero weight then gets at least one minute.
func dayGrid(budget int, topicWeights []float64, activity ActivityWeights) []int {
	nAct := len(domain.Activities)
	cells := make([]int, len(topicWeights)*nAct)
	cellWeight := make([]float64, len(cells))

	var topicTotal float64
	for _, w := range topicWeights {
		topicTotal += w
	}
	actTotal := activity.Total()
	for i, tw := range topicWeights {
		for j, a := range domain.Activities {
			cellWeight[i*nAct+j] = (tw / topicTotal) * (activity.For(a) / actTotal)
		}
	}

	if len(topicWeights) > 1 && budget < len(cells) {
		return spreadMinutes(budget, cellWeight)
	}

	assigned := 0
	for k, w := range cellWeight {
		cells[k] = int(math.Floor(float64(budget)*w + floorEpsilon))
		assigned += cells[k]
	}

	// truncation remainder goes to the largest cell
	if rem := budget - assigned; rem > 0 {
		cells[largest(cells, cellWeight)] += rem
	}

	// minimal allocation
	for k := range cells {
		if cells[k] > 0 || cellWeight[k] <= 0 {
			continue
		}
		if donor := largest(cells, cellWeight); cells[donor] > 1 {
			cells[donor]--
		}
		cells[k] = 1
	}
	return cells
}

// spreadMinutes hands out budget single minutes to the heaviest cells; the
// rest stay at zero. Equal weights keep grid order.
func spreadMinutes(budget int, cellWeight []float64) []int {
	order := make([]int, len(cellWeight))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cellWeight[order[a]] > cellWeight[order[b]]
	})

	cells := make([]int, len(cellWeight))
	for _, k := range order[:budget] {
		if cellWeight[k] > 0 {
			cells[k] = 1
		}
	}
	return cells
}

// largest returns the index of the biggest cell. Ties go to the heavier
// cell, then to the first.
func largest(cells []int, weights []float64) int {
	best := 0
	for k := 1; k < len(cells); k++ {
		if cells[k] > cells[best] || (cells[k] == cells[best] && weights[k] > weights[best]) {
			best = k
		}
	}
	return best
}
