package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/export"
	"github.com/go-chi/chi/v5"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Catalog.Subjects(r.Context()))
}

// analyzeSubject digests the passages of the subject in the path, optionally
// narrowed by repeated topic query parameters.
func (s *Server) analyzeSubject(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.svc.Catalog.AnalyzeSubject(r.Context(), chi.URLParam(r, "subject"), r.URL.Query()["topic"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) generatePlan(w http.ResponseWriter, r *http.Request) {
	var req contract.PlanRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	plan, err := s.svc.Plans.GeneratePlan(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) drawQuiz(w http.ResponseWriter, r *http.Request) {
	var req contract.QuizRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	quiz, err := s.svc.Quiz.DrawQuiz(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (s *Server) gradeQuiz(w http.ResponseWriter, r *http.Request) {
	var req contract.GradeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	result, err := s.svc.Quiz.GradeQuiz(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) modelReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.Models.ModelReport(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// exportPlan generates a plan from query parameters and streams it as a file:
// subject, topic (repeatable), hours, scenario, score, start and format
// (csv|xlsx).
func (s *Server) exportPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := export.FormatCSV
	if v := q.Get("format"); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			writeBadRequest(w, err.Error(), nil)
			return
		}
		format = f
	}

	req, err := planRequestFromQuery(q.Get("subject"), q["topic"], q.Get("hours"), q.Get("scenario"), q.Get("score"))
	if err != nil {
		writeBadRequest(w, err.Error(), nil)
		return
	}
	req.StartDate = q.Get("start")

	plan, err := s.svc.Plans.GeneratePlan(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="study-plan.%s"`, format))
	if err := export.Write(w, format, contract.ExportRows(plan)); err != nil {
		s.logger.ErrorContext(r.Context(), "writing export", "error", err)
	}
}

func planRequestFromQuery(subject string, topics []string, hours, scenario, score string) (contract.PlanRequest, error) {
	if subject == "" {
		return contract.PlanRequest{}, fmt.Errorf("subject is required")
	}
	h, err := strconv.ParseFloat(hours, 64)
	if err != nil {
		return contract.PlanRequest{}, fmt.Errorf("hours must be a number, got %q", hours)
	}
	req := contract.NewPlanRequest(subject, h)
	req.Topics = topics
	req.Scenario = domain.CoalesceStr(scenario, req.Scenario)
	if score != "" {
		v, err := strconv.ParseFloat(score, 64)
		if err != nil {
			return contract.PlanRequest{}, fmt.Errorf("score must be a number, got %q", score)
		}
		req.RecentQuizScore = &v
	}
	return req, nil
}
