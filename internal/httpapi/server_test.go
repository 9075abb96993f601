package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/studypal/internal/contract"
	"github.com/alexanderramin/studypal/internal/corpus"
	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, store *corpus.Store, metrics http.Handler) *httptest.Server {
	t.Helper()
	e := engine.New(store, engine.DefaultConfig())
	srv := NewServer(Services{Plans: e, Quiz: e, Catalog: e, Models: e, Metrics: metrics}, nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func embeddedServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := corpus.Embedded()
	require.NoError(t, err)
	return newTestServer(t, store, nil)
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestHealth(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListSubjects(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/subjects")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var subjects []contract.SubjectInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&subjects))
	require.Len(t, subjects, 5)
	assert.Equal(t, "Biology", subjects[0].Name)
}

func TestAnalyzeSubject(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/subjects/computer%20science/analysis")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis contract.SubjectAnalysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
	assert.Equal(t, "Computer Science", analysis.Subject)
	require.Len(t, analysis.Topics, 2)
	assert.Equal(t, "Algorithms", analysis.Topics[0].Topic)
	assert.NotEmpty(t, analysis.Overall.Keywords)
	assert.Contains(t, []string{"Easy", "Medium", "Hard"}, analysis.Overall.Level)
}

func TestAnalyzeSubject_TopicFilterAndErrors(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/subjects/Chemistry/analysis?topic=organic%20chemistry")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var analysis contract.SubjectAnalysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))
	require.Len(t, analysis.Topics, 1)
	assert.Equal(t, "Organic Chemistry", analysis.Topics[0].Topic)

	resp = get(t, ts.URL+"/subjects/Astrology/analysis")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, string(contract.ErrCodeValidation), decodeError(t, resp).Code)
}

func TestGeneratePlan_OK(t *testing.T) {
	ts := embeddedServer(t)

	resp := postJSON(t, ts.URL+"/plans", map[string]any{
		"subject":     "physics",
		"daily_hours": 1.5,
		"scenario":    "exam_prep",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var plan contract.StudyPlan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Equal(t, "Physics", plan.Subject)
	assert.Len(t, plan.Entries, 7*3*3)
	assert.Equal(t, 7*90, plan.Summary.TotalMinutes)
	assert.GreaterOrEqual(t, len(plan.Tips), 5)
}

func TestGeneratePlan_StartDate(t *testing.T) {
	ts := embeddedServer(t)

	resp := postJSON(t, ts.URL+"/plans", map[string]any{
		"subject":     "Chemistry",
		"daily_hours": 2,
		"scenario":    "general",
		"start_date":  "2026-03-07",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan contract.StudyPlan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	assert.Equal(t, "2026-03-07", plan.StartDate)
	require.Len(t, plan.Days, 7)
	assert.Equal(t, "Saturday", plan.Days[0].Weekday)
	assert.Equal(t, []string{"Organic Chemistry"}, plan.Days[0].Focus)
	assert.Equal(t, []string{"Inorganic Chemistry"}, plan.Days[1].Focus)
	assert.Equal(t, "2026-03-13", plan.Days[6].Date)

	resp = postJSON(t, ts.URL+"/plans", map[string]any{
		"subject": "Chemistry", "daily_hours": 2, "scenario": "general", "start_date": "07/03/2026",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "StartDate", body.Fields[0].Field)
}

func TestGeneratePlan_BodyValidation(t *testing.T) {
	ts := embeddedServer(t)

	resp := postJSON(t, ts.URL+"/plans", map[string]any{"daily_hours": 13, "scenario": "general"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, string(contract.ErrCodeValidation), body.Code)
	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"Subject", "DailyHours"}, fields)
}

func TestGeneratePlan_UnknownField(t *testing.T) {
	ts := embeddedServer(t)

	resp := postJSON(t, ts.URL+"/plans", map[string]any{
		"subject": "Physics", "daily_hours": 1, "scenario": "general", "mood": "great",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGeneratePlan_EngineValidationErrors(t *testing.T) {
	ts := embeddedServer(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"unknown scenario", map[string]any{"subject": "Physics", "daily_hours": 1, "scenario": "cramming"}, "unrecognized scenario"},
		{"unknown subject", map[string]any{"subject": "Astronomy", "daily_hours": 1, "scenario": "general"}, "unknown subject"},
		{"foreign topic", map[string]any{"subject": "Physics", "topics": []string{"Algebra"}, "daily_hours": 1, "scenario": "general"}, "is not part of subject"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/plans", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, string(contract.ErrCodeValidation), body.Code)
			assert.Contains(t, body.Message, tc.want)
		})
	}
}

func TestDrawAndGradeQuiz(t *testing.T) {
	ts := embeddedServer(t)

	resp := postJSON(t, ts.URL+"/quiz", contract.QuizRequest{Subject: "Biology"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quiz []contract.QuizQuestion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quiz))
	require.NotEmpty(t, quiz)

	answers := make(map[int]int, len(quiz))
	for i, q := range quiz {
		answers[i] = q.CorrectIndex
	}
	resp = postJSON(t, ts.URL+"/quiz/grade", contract.GradeRequest{Quiz: quiz, Answers: answers})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result contract.GradingResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, len(quiz), result.CorrectCount)
}

func TestGradeQuiz_MissingAnswersIsUnprocessable(t *testing.T) {
	ts := embeddedServer(t)

	quiz := []contract.QuizQuestion{
		{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{Question: "Q2?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
	}
	resp := postJSON(t, ts.URL+"/quiz/grade", contract.GradeRequest{Quiz: quiz, Answers: map[int]int{0: 1}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, string(contract.ErrCodeIncompleteSubmission), decodeError(t, resp).Code)
}

func TestModelReport(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/model/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report contract.ModelReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Len(t, report.Clusters, 5)
	assert.Positive(t, report.VocabularySize)
}

func TestModelReport_InsufficientDataIsServerError(t *testing.T) {
	ts := newTestServer(t, corpus.NewStore(), nil)

	resp := get(t, ts.URL+"/model/metrics")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, string(contract.ErrCodeInsufficientData), decodeError(t, resp).Code)
}

func TestExportPlan_CSV(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/plans/export?subject=Mathematics&topic=Algebra&topic=Calculus&hours=1&scenario=homework")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "study-plan.csv")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+7*2*3)
	assert.Equal(t, "Day,Topic,Activity,Minutes", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,Algebra,reading,"))
}

func TestExportPlan_StartDateKeepsColumns(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/plans/export?subject=Physics&hours=1&start=2026-05-04")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+7*3*3)
	assert.Equal(t, "Day,Topic,Activity,Minutes", lines[0])
	assert.NotContains(t, buf.String(), "2026-05")
}

func TestExportPlan_XLSX(t *testing.T) {
	ts := embeddedServer(t)

	resp := get(t, ts.URL+"/plans/export?subject=Physics&hours=2&format=xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
}

func TestExportPlan_BadQuery(t *testing.T) {
	ts := embeddedServer(t)

	for _, q := range []string{
		"?hours=1",
		"?subject=Physics&hours=lots",
		"?subject=Physics&hours=1&format=pdf",
		"?subject=Physics&hours=1&score=high",
		"?subject=Physics&hours=0",
		"?subject=Physics&hours=1&start=2026-13-01",
	} {
		resp := get(t, ts.URL+"/plans/export"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestMetricsMountedWhenProvided(t *testing.T) {
	store, err := corpus.Embedded()
	require.NoError(t, err)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	ts := newTestServer(t, store, metrics)

	resp := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ts = embeddedServer(t)
	resp = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
