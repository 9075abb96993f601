// Package classifier predicts the difficulty tier of quiz questions with a
// logistic-regression model over term-frequency features.
package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/textfeat"
)

// ErrInsufficientData is returned when the corpus cannot support training:
// no examples, fewer than two distinct labels, or no usable tokens.
var ErrInsufficientData = errors.New("classifier: insufficient training data")

// Example is one labeled training text.
type Example struct {
	Text  string
	Label domain.Difficulty
}

// Config configures training. Zero values are replaced with defaults.
type Config struct {
	Seed             int64
	TestFraction     float64 // default 0.2
	MaxFeatures      int     // default 1000
	Epochs           int     // default 300
	LearningRate     float64 // default 0.1
	L2               float64 // default 0.01
	ConfidenceMargin float64 // default 0.1; predictions closer than this to 0.5 fall back to medium
}

// DefaultConfig returns the training configuration with seed 42.
func DefaultConfig() Config {
	return Config{
		Seed:             42,
		TestFraction:     0.2,
		MaxFeatures:      1000,
		Epochs:           300,
		LearningRate:     0.1,
		L2:               0.01,
		ConfidenceMargin: 0.1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		c.TestFraction = d.TestFraction
	}
	if c.MaxFeatures <= 0 {
		c.MaxFeatures = d.MaxFeatures
	}
	if c.Epochs <= 0 {
		c.Epochs = d.Epochs
	}
	if c.LearningRate <= 0 {
		c.LearningRate = d.LearningRate
	}
	if c.L2 < 0 {
		c.L2 = d.L2
	}
	if c.ConfidenceMargin < 0 {
		c.ConfidenceMargin = d.ConfidenceMargin
	}
	return c
}

// Prediction is the classifier's answer for one text.
type Prediction struct {
	Label     domain.Difficulty
	ProbEasy  float64
	Confident bool
}

// Classifier is a trained two-class model. It is read-only after Train and
// safe for concurrent use.
type Classifier struct {
	vocab   *textfeat.Vocabulary
	weights []float64
	bias    float64
	margin  float64
	metrics Metrics
}

// Train fits the model on a seeded stratified split of examples and scores it
// on the held-out part.
func Train(examples []Example, cfg Config) (*Classifier, error) {
	cfg = cfg.withDefaults()

	labels := make([]domain.Difficulty, len(examples))
	distinct := make(map[domain.Difficulty]bool)
	for i, ex := range examples {
		if !domain.ValidDifficulties[string(ex.Label)] {
			return nil, fmt.Errorf("example %d: invalid label %q", i, ex.Label)
		}
		labels[i] = ex.Label
		distinct[ex.Label] = true
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: need 2 distinct labels, found %d across %d examples",
			ErrInsufficientData, len(distinct), len(examples))
	}

	trainIdx, testIdx := stratifiedSplit(labels, cfg.TestFraction, cfg.Seed)

	docs := make([][]string, len(trainIdx))
	for i, idx := range trainIdx {
		docs[i] = textfeat.Tokenize(examples[idx].Text)
	}
	vocab, err := textfeat.FitVocabulary(docs, cfg.MaxFeatures)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}

	c := &Classifier{vocab: vocab, margin: cfg.ConfidenceMargin}

	xs := make([]textfeat.Vector, len(trainIdx))
	ys := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		xs[i] = textfeat.Extract(examples[idx].Text, vocab)
		if examples[idx].Label == domain.DifficultyEasy {
			ys[i] = 1
		}
	}
	c.fit(xs, ys, cfg)

	evalIdx := testIdx
	holdout := len(testIdx) > 0
	if !holdout {
		evalIdx = trainIdx
	}
	truth := make([]domain.Difficulty, len(evalIdx))
	pred := make([]domain.Difficulty, len(evalIdx))
	for i, idx := range evalIdx {
		truth[i] = examples[idx].Label
		pred[i] = c.Predict(examples[idx].Text).Label
	}
	c.metrics = Metrics{
		Accuracy:  accuracy(truth, pred),
		F1:        weightedF1(truth, pred),
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
		Holdout:   holdout,
	}
	return c, nil
}

// fit runs full-batch gradient descent with Adam on the log-loss plus an L2
// penalty. The bias is the last parameter and is not penalized.
func (c *Classifier) fit(xs []textfeat.Vector, ys []float64, cfg Config) {
	d := c.vocab.Size()
	params := make([]float64, d+1)
	grads := make([]float64, d+1)
	opt := newAdam(cfg.LearningRate, d+1)
	n := float64(len(xs))

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for i := range grads {
			grads[i] = 0
		}
		for i, x := range xs {
			z := params[d]
			for j, v := range x {
				if v != 0 {
					z += params[j] * v
				}
			}
			residual := sigmoid(z) - ys[i]
			for j, v := range x {
				if v != 0 {
					grads[j] += residual * v / n
				}
			}
			grads[d] += residual / n
		}
		for j := 0; j < d; j++ {
			grads[j] += cfg.L2 * params[j]
		}
		opt.update(params, grads)
	}

	c.weights = params[:d]
	c.bias = params[d]
}

// Predict classifies text. Ties and low-confidence outputs resolve to medium.
func (c *Classifier) Predict(text string) Prediction {
	x := textfeat.Extract(text, c.vocab)
	p := sigmoid(c.bias + x.Dot(c.weights))

	pred := Prediction{
		Label:     domain.DifficultyMedium,
		ProbEasy:  p,
		Confident: math.Abs(p-0.5) >= c.margin,
	}
	if p > 0.5 && pred.Confident {
		pred.Label = domain.DifficultyEasy
	}
	return pred
}

// Evaluate returns the metrics computed at training time.
func (c *Classifier) Evaluate() Metrics {
	return c.metrics
}

// VocabularySize returns the number of features the model uses.
func (c *Classifier) VocabularySize() int {
	return c.vocab.Size()
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
