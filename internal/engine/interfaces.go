package engine

import (
	"context"

	"github.com/alexanderramin/studypal/internal/contract"
)

type PlanService interface {
	GeneratePlan(ctx context.Context, req contract.PlanRequest) (*contract.StudyPlan, error)
}

type QuizService interface {
	DrawQuiz(ctx context.Context, req contract.QuizRequest) ([]contract.QuizQuestion, error)
	GradeQuiz(ctx context.Context, req contract.GradeRequest) (*contract.GradingResult, error)
}

type CatalogService interface {
	Subjects(ctx context.Context) []contract.SubjectInfo
	AnalyzeSubject(ctx context.Context, subject string, topics []string) (*contract.SubjectAnalysis, error)
}

type ModelService interface {
	ModelReport(ctx context.Context) (*contract.ModelReport, error)
}

var (
	_ PlanService    = (*Engine)(nil)
	_ QuizService    = (*Engine)(nil)
	_ CatalogService = (*Engine)(nil)
	_ ModelService   = (*Engine)(nil)
)
