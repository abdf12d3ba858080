package rota_test

import (
	"testing"
	"time"

	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRate = decimal.NewFromInt(25)

func TestSum_BreakExceedingDurationFloorsAtZero(t *testing.T) {
	shifts := []rota.ShiftStat{
		stat(date(2024, time.January, 1).Add(9*time.Hour), 240, 300),
	}

	agg := rota.Sum(shifts)

	assert.Equal(t, 0.0, agg.TotalWorkedHours)
	assert.Equal(t, 5.0, agg.TotalBreakHours) // break still counts in full
	assert.Equal(t, 0.0, agg.PayableHours)
}

func TestSum_RoundsToTwoDecimalPlaces(t *testing.T) {
	shifts := []rota.ShiftStat{
		stat(date(2024, time.January, 1).Add(9*time.Hour), 500, 0), // 8.3333... hours
	}

	agg := rota.Sum(shifts)

	assert.Equal(t, 8.33, agg.TotalWorkedHours)
	assert.Equal(t, agg.TotalWorkedHours, agg.PayableHours)
}

func TestEstimateSalary(t *testing.T) {
	assert.Equal(t, 187.50, rota.EstimateSalary(7.5, testRate))
	assert.Equal(t, 0.0, rota.EstimateSalary(0, testRate))
	assert.Equal(t, 189.58, rota.EstimateSalary(7.583, testRate))
}

func TestEvaluateAdHoc_SingleDayShift(t *testing.T) {
	report, err := rota.EvaluateAdHoc([]rota.AdHocShift{
		{Date: "2024-01-01", StartTime: "09:00", EndTime: "17:00", BreakMinutes: 30},
	}, testRate)
	require.NoError(t, err)

	assert.Equal(t, 7.5, report.TotalWorkedHours)
	assert.Equal(t, 0.5, report.TotalBreakHours)
	assert.Equal(t, 7.5, report.PayableHours)
	assert.Equal(t, 187.50, report.EstimatedSalary)
	assert.Equal(t, rota.StatusCompliant, report.OverallStatus)

	for _, f := range report.Findings {
		assert.NotEqual(t, rota.SeverityWarning, f.Severity)
		assert.NotEqual(t, rota.SeverityError, f.Severity)
	}
}

func TestEvaluateAdHoc_InvalidDateIsAnError(t *testing.T) {
	_, err := rota.EvaluateAdHoc([]rota.AdHocShift{
		{Date: "01/01/2024", StartTime: "09:00", EndTime: "17:00"},
	}, testRate)
	assert.Error(t, err)
}

func TestEvaluateRota_UsesDefinitionBreaks(t *testing.T) {
	r := oneWeekRota()
	r.Definitions[0].StartTime = "08:00"
	r.Definitions[0].FinishTime = "21:30" // 13.5h duty
	r.Definitions[0].BreakMinutes = 45

	report, occurrences, err := rota.EvaluateRota(r, r.ScheduleStartDate.AddDate(0, 0, 6), testRate)
	require.NoError(t, err)
	require.Len(t, occurrences, 1)

	assert.Equal(t, rota.StatusReviewNeeded, report.OverallStatus)
	assert.Equal(t, 12.75, report.TotalWorkedHours)
	assert.Equal(t, 0.75, report.TotalBreakHours)
}

func TestEvaluateRota_IsDeterministic(t *testing.T) {
	r := oneWeekRota()
	r.TotalWeeks = 2
	r.Grid = [][]string{
		{"D1", "", "D1", "", "", "", ""},
		{"", "D1", "", "", "D1", "", ""},
	}
	rangeEnd := r.ScheduleStartDate.AddDate(0, 0, 8*7-1)

	firstReport, firstOccurrences, err := rota.EvaluateRota(r, rangeEnd, testRate)
	require.NoError(t, err)
	secondReport, secondOccurrences, err := rota.EvaluateRota(r, rangeEnd, testRate)
	require.NoError(t, err)

	assert.Equal(t, firstReport, secondReport)
	assert.Equal(t, firstOccurrences, secondOccurrences)
}
