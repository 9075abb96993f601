package engine

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
)

// Score thresholds that steer quiz calibration.
const (
	struggleBelow = 0.5
	advanceFrom   = 0.7
)

// DrawQuiz returns a calibrated quiz without building a plan.
func (e *Engine) DrawQuiz(ctx context.Context, req contract.QuizRequest) (quiz []contract.QuizQuestion, err error) {
	start := e.now()
	defer func() {
		e.observe(ctx, "draw_quiz", start, err, map[string]any{"subject": req.Subject, "questions": len(quiz)})
	}()

	subject, topics, err := e.resolveTopics(req.Subject, req.Topics)
	if err != nil {
		return nil, err
	}
	if err := validateScore(req.RecentQuizScore); err != nil {
		return nil, err
	}
	models, err := e.Models(ctx)
	if err != nil {
		return nil, err
	}
	return e.selectQuiz(models, subject, topics, req.RecentQuizScore), nil
}

// selectQuiz shuffles the topics' quiz items with the engine seed, tags each
// with its predicted difficulty, moves the preferred tier first when a recent
// score is known and keeps the first QuizSize questions.
func (e *Engine) selectQuiz(models *Models, subject string, topics []string, score *float64) []contract.QuizQuestion {
	var pool []domain.QuizItem
	seen := make(map[string]bool)
	for _, q := range e.store.QuizItemsFor(subject, topics) {
		k := strings.ToLower(strings.TrimSpace(q.Question))
		if seen[k] {
			continue
		}
		seen[k] = true
		pool = append(pool, q)
	}

	rng := rand.New(rand.NewSource(e.cfg.Seed))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	quiz := make([]contract.QuizQuestion, len(pool))
	for i, q := range pool {
		p := models.Classifier.Predict(q.Question)
		quiz[i] = contract.QuizQuestion{
			Question:            q.Question,
			Options:             append([]string(nil), q.Options...),
			CorrectIndex:        q.CorrectIndex,
			Subject:             q.Subject,
			Topic:               q.Topic,
			Difficulty:          p.Label,
			LabeledDifficulty:   q.Difficulty,
			DifficultyConfident: p.Confident,
		}
	}

	if preferred, ok := preferredDifficulty(score); ok {
		sort.SliceStable(quiz, func(i, j int) bool {
			return quiz[i].Difficulty == preferred && quiz[j].Difficulty != preferred
		})
	}

	n := e.cfg.QuizSize
	if n <= 0 || n > len(quiz) {
		n = len(quiz)
	}
	return quiz[:n]
}

// preferredDifficulty maps a recent score to the tier to draw first.
func preferredDifficulty(score *float64) (domain.Difficulty, bool) {
	switch {
	case score == nil:
		return "", false
	case *score < struggleBelow:
		return domain.DifficultyEasy, true
	case *score >= advanceFrom:
		return domain.DifficultyMedium, true
	}
	return "", false
}
