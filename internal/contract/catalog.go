package contract

// QuizRequest asks for a standalone calibrated quiz.
type QuizRequest struct {
	Subject         string   `json:"subject" validate:"required"`
	Topics          []string `json:"topics,omitempty"`
	RecentQuizScore *float64 `json:"recent_quiz_score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// SubjectInfo describes one subject of the content store.
type SubjectInfo struct {
	Name      string   `json:"name"`
	Topics    []string `json:"topics"`
	Resources []string `json:"resources,omitempty"`
}

// ClusterInfo lists the topics grouped into one cluster.
type ClusterInfo struct {
	ID     int      `json:"id"`
	Topics []string `json:"topics"`
}

// ModelReport is the diagnostic view of the trained models.
type ModelReport struct {
	Accuracy       float64       `json:"accuracy"`
	F1             float64       `json:"f1"`
	TrainSize      int           `json:"train_size"`
	TestSize       int           `json:"test_size"`
	Holdout        bool          `json:"holdout"`
	VocabularySize int           `json:"vocabulary_size"`
	Clusters       []ClusterInfo `json:"clusters"`
}
