package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub-utils/internal/flows"
	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/internal/store"
	"staffhub-utils/pkg/models"
)

type cannedGenerator struct {
	calls    int
	response string
	err      error
}

func (g *cannedGenerator) Generate(ctx context.Context, p *prompt.Prompt, contract *schema.Contract, out interface{}) error {
	g.calls++
	if g.err != nil {
		return g.err
	}
	return schema.Decode([]byte(g.response), out)
}

func testRecords() store.RecordStore {
	return store.NewMemoryStore(
		[]models.StaffMember{
			{
				ID:     "USR-100",
				Name:   "Dana Fields",
				Status: "Active",
				Skills: []string{"Go", "PostgreSQL"},
				Leave: models.LeaveBalances{
					Sick: models.LeaveBalance{Entitled: 10, Taken: 3},
				},
			},
		},
		nil,
		nil,
	)
}

func postJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func documentBody(contents string) string {
	uri := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte(contents))
	return `{"document_data_uri": "` + uri + `"}`
}

func TestExtractSkillsHandlerSuccess(t *testing.T) {
	gen := &cannedGenerator{response: `{"skills": ["Go", "Docker"]}`}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, ExtractSkillsHandler(svc), "/api/v1/extract/skills", documentBody("resume"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Go"`)
}

func TestExtractSkillsHandlerEmptyResultIsRejected(t *testing.T) {
	gen := &cannedGenerator{response: `{"skills": []}`}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, ExtractSkillsHandler(svc), "/api/v1/extract/skills", documentBody("blank page"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Couldn't extract any skills. Try a different file.")
}

func TestExtractSkillsHandlerMalformedDocument(t *testing.T) {
	gen := &cannedGenerator{}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, ExtractSkillsHandler(svc), "/api/v1/extract/skills", `{"document_data_uri": "not a uri"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls)
}

func TestFitScoreHandlerResolvesSkillsFromStore(t *testing.T) {
	gen := &cannedGenerator{response: `{"fit_score": 50, "explanation": "Partial fit.", "matching_skills": ["Go"], "missing_skills": ["Rust"]}`}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, FitScoreHandler(svc, testRecords()), "/api/v1/staff/fit-score",
		`{"staff_id": "USR-100", "project_tech_stack": ["Go", "Rust"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, rec.Body.String(), `"fit_score":50`)
}

func TestFitScoreHandlerUnknownStaff(t *testing.T) {
	gen := &cannedGenerator{}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, FitScoreHandler(svc, testRecords()), "/api/v1/staff/fit-score",
		`{"staff_id": "USR-404", "project_tech_stack": ["Go"]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, gen.calls)
}

func TestLeaveHandlerDerivesDayCount(t *testing.T) {
	gen := &cannedGenerator{response: `{"is_eligible": true, "eligibility_reason": "Balance is sufficient.", "project_impact": "None."}`}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, LeaveAssessmentHandler(svc), "/api/v1/leave/assess",
		`{"staff_id": "USR-100", "leave_type": "sick", "start_date": "2026-09-07", "end_date": "2026-09-09"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_eligible":true`)
}

func TestLeaveHandlerRejectsReversedRange(t *testing.T) {
	gen := &cannedGenerator{}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, LeaveAssessmentHandler(svc), "/api/v1/leave/assess",
		`{"staff_id": "USR-100", "leave_type": "sick", "start_date": "2026-09-09", "end_date": "2026-09-07"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls)
}

func TestInclusiveDaySpan(t *testing.T) {
	days, err := inclusiveDaySpan("2026-09-07", "2026-09-07")
	require.NoError(t, err)
	assert.Equal(t, 1.0, days)

	days, err = inclusiveDaySpan("2026-09-07", "2026-09-11")
	require.NoError(t, err)
	assert.Equal(t, 5.0, days)

	_, err = inclusiveDaySpan("yesterday", "2026-09-11")
	require.Error(t, err)
}

func TestChatHandler(t *testing.T) {
	gen := &cannedGenerator{response: `{"response": "You have 7 sick days left."}`}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, ChatHandler(svc), "/api/v1/chat",
		`{"query": "How many sick days do I have left?", "user_id": "USR-100", "user_role": "staff"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "7 sick days")
}

func TestChatHandlerInvalidRole(t *testing.T) {
	gen := &cannedGenerator{}
	svc := flows.NewService(gen, testRecords())

	rec := postJSON(t, ChatHandler(svc), "/api/v1/chat",
		`{"query": "hi", "user_id": "USR-100", "user_role": "root"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls)
}
