package classifier

import (
	"sort"

	"github.com/alexanderramin/studypal/internal/domain"
)

// Metrics summarizes classifier quality on the held-out split.
type Metrics struct {
	Accuracy  float64
	F1        float64
	TrainSize int
	TestSize  int
	// Holdout is false when the split left no test examples and the
	// metrics were computed on the training set instead.
	Holdout bool
}

func accuracy(truth, pred []domain.Difficulty) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0
	for i := range truth {
		if truth[i] == pred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// weightedF1 averages per-label F1 scores weighted by each label's support
// in truth.
func weightedF1(truth, pred []domain.Difficulty) float64 {
	if len(truth) == 0 {
		return 0
	}
	labelSet := make(map[domain.Difficulty]bool)
	for i := range truth {
		labelSet[truth[i]] = true
		labelSet[pred[i]] = true
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, string(l))
	}
	sort.Strings(labels)

	var weighted float64
	for _, ls := range labels {
		l := domain.Difficulty(ls)
		var tp, fp, fn, support int
		for i := range truth {
			switch {
			case truth[i] == l && pred[i] == l:
				tp++
			case truth[i] != l && pred[i] == l:
				fp++
			case truth[i] == l && pred[i] != l:
				fn++
			}
			if truth[i] == l {
				support++
			}
		}
		var precision, recall, f1 float64
		if tp+fp > 0 {
			precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			recall = float64(tp) / float64(tp+fn)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		weighted += f1 * float64(support)
	}
	return weighted / float64(len(truth))
}
