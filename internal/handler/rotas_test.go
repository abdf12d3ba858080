package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCreateRota(t *testing.T, h *handler.Handler, body string) handler.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rotas", strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), handler.MyInfoCtx, &domain.User{ID: 1, Role: domain.RoleCoordinator}))
	rec := httptest.NewRecorder()
	h.CreateRota(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateRota_NegativeWeeksWithLegacyGridIsAFieldError(t *testing.T) {
	h := newTestHandler(t)

	// a negative week count passes the struct tag (it only rejects zero)
	// and must come back as a field error, not blow up sizing the grid
	resp := postCreateRota(t, h, `{
		"name": "General Medicine SHO rota",
		"scheduleStartDate": "2024-01-01",
		"scheduleTotalWeeks": -2,
		"gridCells": {"week_0_day_0": "D"}
	}`)

	assert.False(t, resp.Success)
	require.NotEmpty(t, resp.FieldErrors)

	paths := make([]string, 0, len(resp.FieldErrors))
	for _, fe := range resp.FieldErrors {
		paths = append(paths, fe.Path)
	}
	assert.Contains(t, paths, "scheduleTotalWeeks")
}

func TestCreateRota_LegacyGridCellOutsideCycleIsAFieldError(t *testing.T) {
	h := newTestHandler(t)

	resp := postCreateRota(t, h, `{
		"name": "General Medicine SHO rota",
		"scheduleStartDate": "2024-01-01",
		"scheduleTotalWeeks": 1,
		"shiftDefinitions": [
			{"dutyCode": "D", "name": "Day ward shift", "type": "normal", "startTime": "09:00", "finishTime": "17:00", "breakMinutes": 30}
		],
		"gridCells": {"week_3_day_0": "D"}
	}`)

	assert.False(t, resp.Success)
	require.NotEmpty(t, resp.FieldErrors)
	assert.Equal(t, "gridCells.week_3_day_0", resp.FieldErrors[0].Path)
}
