package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medrota/rota-checker/backend/internal/config"
	"github.com/medrota/rota-checker/backend/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *handler.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Pay.HourlyRate = 25

	// the ad-hoc calculator touches neither the repository, the mail
	// queue nor redis
	h, err := handler.NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)

	return h
}

func postEvaluate(t *testing.T, h *handler.Handler, body string) handler.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EvaluateShifts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestEvaluateShifts_SingleShiftReport(t *testing.T) {
	h := newTestHandler(t)

	resp := postEvaluate(t, h, `{
		"shifts": [
			{"date": "2024-01-01", "startTime": "09:00", "endTime": "17:00", "breakMinutes": 30}
		]
	}`)

	require.True(t, resp.Success, "message: %s", resp.Message)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var report struct {
		ComplianceSummary string  `json:"complianceSummary"`
		TotalHours        float64 `json:"totalHours"`
		TotalBreakHours   float64 `json:"totalBreakHours"`
		PayableHours      float64 `json:"payableHours"`
		EstimatedSalary   float64 `json:"estimatedSalary"`
		ComplianceMsgs    []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"complianceMessages"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "Compliant", report.ComplianceSummary)
	assert.Equal(t, 7.5, report.TotalHours)
	assert.Equal(t, 0.5, report.TotalBreakHours)
	assert.Equal(t, 7.5, report.PayableHours)
	assert.Equal(t, 187.5, report.EstimatedSalary)
	require.NotEmpty(t, report.ComplianceMsgs)
	assert.Equal(t, "success", report.ComplianceMsgs[0].Type)
}

func TestEvaluateShifts_ValidationFailuresAreValues(t *testing.T) {
	h := newTestHandler(t)

	resp := postEvaluate(t, h, `{
		"shifts": [
			{"date": "not-a-date", "startTime": "09:00", "endTime": "17:00", "breakMinutes": 9000}
		]
	}`)

	assert.False(t, resp.Success)
	require.NotEmpty(t, resp.FieldErrors)

	paths := make([]string, 0, len(resp.FieldErrors))
	for _, fe := range resp.FieldErrors {
		paths = append(paths, fe.Path)
	}
	assert.Contains(t, paths, "shifts[0].date")
	assert.Contains(t, paths, "shifts[0].breakMinutes")
}

func TestEvaluateShifts_EmptyListIsRejected(t *testing.T) {
	h := newTestHandler(t)

	resp := postEvaluate(t, h, `{"shifts": []}`)

	assert.False(t, resp.Success)
	require.Len(t, resp.FieldErrors, 1)
	assert.Equal(t, "shifts", resp.FieldErrors[0].Path)
}

func TestEvaluateShifts_WarningsStillProduceAFullReport(t *testing.T) {
	h := newTestHandler(t)

	// a 13h shift with a short break fires both break rules; the report
	// must still come back complete rather than being suppressed
	resp := postEvaluate(t, h, `{
		"shifts": [
			{"date": "2024-01-01", "startTime": "08:00", "endTime": "21:30", "breakMinutes": 25}
		]
	}`)

	require.True(t, resp.Success, "message: %s", resp.Message)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var report struct {
		ComplianceSummary string `json:"complianceSummary"`
		ComplianceMsgs    []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"complianceMessages"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "Review Needed", report.ComplianceSummary)
	require.Len(t, report.ComplianceMsgs, 3)
	assert.Equal(t, "info", report.ComplianceMsgs[0].Type)
	assert.Equal(t, "warning", report.ComplianceMsgs[1].Type)
	assert.Equal(t, "warning", report.ComplianceMsgs[2].Type)
}
