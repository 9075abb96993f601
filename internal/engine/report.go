package engine

import (
	"context"

	"github.com/alexanderramin/studypal/internal/contract"
)

// Subjects lists every subject with its topics and resources.
func (e *Engine) Subjects(context.Context) []contract.SubjectInfo {
	names := e.store.Subjects()
	out := make([]contract.SubjectInfo, len(names))
	for i, name := range names {
		topics, _ := e.store.Topics(name)
		out[i] = contract.SubjectInfo{
			Name:      name,
			Topics:    topics,
			Resources: e.store.Resources(name),
		}
	}
	return out
}

// ModelReport returns classifier metrics and the topic clusters.
func (e *Engine) ModelReport(ctx context.Context) (*contract.ModelReport, error) {
	models, err := e.Models(ctx)
	if err != nil {
		return nil, err
	}
	m := models.Classifier.Evaluate()
	report := &contract.ModelReport{
		Accuracy:       m.Accuracy,
		F1:             m.F1,
		TrainSize:      m.TrainSize,
		TestSize:       m.TestSize,
		Holdout:        m.Holdout,
		VocabularySize: models.Classifier.VocabularySize(),
	}
	for c := 0; c < models.Clusters.K(); c++ {
		report.Clusters = append(report.Clusters, contract.ClusterInfo{ID: c, Topics: models.Clusters.Members(c)})
	}
	return report, nil
}
