package utils_test

import (
	"testing"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/medrota/rota-checker/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRota() *domain.Rota {
	return &domain.Rota{
		Name:              "Acute Medicine F2",
		ScheduleStartDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		TotalWeeks:        2,
		Definitions: []domain.ShiftDefinition{
			{DutyCode: "D1", Name: "Day", Type: domain.DutyNormal, StartTime: "08:00", FinishTime: "16:30", BreakMinutes: 30},
			{DutyCode: "N1", Name: "Night", Type: domain.DutyOnCall, StartTime: "20:00", FinishTime: "24:00"},
		},
		Grid: [][]string{
			{"D1", "D1", "", "", "N1", "", ""},
			{"", "", "D1", "D1", "", "", ""},
		},
	}
}

func paths(errs []domain.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Path
	}
	return out
}

func TestValidateRota_AcceptsWellFormedDocument(t *testing.T) {
	assert.Empty(t, utils.ValidateRota(validRota()))
}

func TestValidateRota_DuplicateDutyCodes(t *testing.T) {
	r := validRota()
	r.Definitions[1].DutyCode = "D1"

	errs := utils.ValidateRota(r)
	require.NotEmpty(t, errs)
	assert.Contains(t, paths(errs), "shiftDefinitions[1].dutyCode")
}

func TestValidateRota_RejectsMalformedClocks(t *testing.T) {
	r := validRota()
	r.Definitions[0].StartTime = "24:00" // sentinel is finish-only
	r.Definitions[1].FinishTime = "25:30"

	errs := utils.ValidateRota(r)
	assert.Contains(t, paths(errs), "shiftDefinitions[0].startTime")
	assert.Contains(t, paths(errs), "shiftDefinitions[1].finishTime")
}

func TestValidateRota_WeeksOutOfRange(t *testing.T) {
	r := validRota()
	r.TotalWeeks = 0
	assert.Contains(t, paths(utils.ValidateRota(r)), "scheduleTotalWeeks")

	r = validRota()
	r.TotalWeeks = 53
	r.Grid = make([][]string, 53)
	for i := range r.Grid {
		r.Grid[i] = make([]string, 7)
	}
	assert.Contains(t, paths(utils.ValidateRota(r)), "scheduleTotalWeeks")
}

func TestValidateRota_EndDateBeforeStart(t *testing.T) {
	r := validRota()
	end := r.ScheduleStartDate.AddDate(0, 0, -1)
	r.EndDate = &end

	assert.Contains(t, paths(utils.ValidateRota(r)), "endDate")
}

func TestValidateRota_GridShapeMustMatchCycle(t *testing.T) {
	r := validRota()
	r.Grid = r.Grid[:1]
	assert.Contains(t, paths(utils.ValidateRota(r)), "grid")

	r = validRota()
	r.Grid[1] = r.Grid[1][:5]
	assert.Contains(t, paths(utils.ValidateRota(r)), "grid[1]")
}

func TestValidateRota_UnknownGridCodesAreNotErrors(t *testing.T) {
	r := validRota()
	r.Grid[0][3] = "GHOST" // expander skips these silently

	assert.Empty(t, utils.ValidateRota(r))
}

func TestValidateAdHocShifts(t *testing.T) {
	errs := utils.ValidateAdHocShifts(nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "shifts", errs[0].Path)

	errs = utils.ValidateAdHocShifts([]rota.AdHocShift{
		{Date: "2024-01-01", StartTime: "09:00", EndTime: "17:00", BreakMinutes: 30},
	})
	assert.Empty(t, errs)

	errs = utils.ValidateAdHocShifts([]rota.AdHocShift{
		{Date: "2024-1-1", StartTime: "9:00am", EndTime: "26:00", BreakMinutes: 2000},
	})
	assert.ElementsMatch(t, []string{
		"shifts[0].date",
		"shifts[0].startTime",
		"shifts[0].endTime",
		"shifts[0].breakMinutes",
	}, paths(errs))
}
