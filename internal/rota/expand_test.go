package rota_test

import (
	"testing"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneWeekRota() *domain.Rota {
	return &domain.Rota{
		ID:                7,
		Name:              "General Medicine ST1",
		Site:              "St Elsewhere",
		ScheduleStartDate: date(2024, time.January, 1), // a Monday
		TotalWeeks:        1,
		Definitions: []domain.ShiftDefinition{
			{DutyCode: "D1", Name: "Day shift", Type: domain.DutyNormal, StartTime: "09:00", FinishTime: "17:00", BreakMinutes: 30},
		},
		Grid: [][]string{{"D1", "", "", "", "", "", ""}},
	}
}

func TestExpand_RepeatsCycleAcrossRange(t *testing.T) {
	r := oneWeekRota()

	// 8-week range starting at the schedule start date
	rangeEnd := r.ScheduleStartDate.AddDate(0, 0, 8*7-1)

	occurrences, err := rota.Expand(r, rangeEnd)
	require.NoError(t, err)
	require.Len(t, occurrences, 8)

	for i, occ := range occurrences {
		expectedStart := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, i*7)
		assert.Equal(t, expectedStart, occ.Start, "occurrence %d", i)
		assert.Equal(t, expectedStart.Add(8*time.Hour), occ.End, "occurrence %d", i)
		assert.Equal(t, "D1", occ.DutyCode)
		assert.Equal(t, "Day shift", occ.Title)
	}
}

func TestExpand_SkipsUnknownDutyCodes(t *testing.T) {
	r := oneWeekRota()
	r.Grid[0][2] = "GHOST" // no matching definition; cells edited independently

	occurrences, err := rota.Expand(r, r.ScheduleStartDate.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, "D1", occurrences[0].DutyCode)
}

func TestExpand_OrdersAscendingByStart(t *testing.T) {
	r := &domain.Rota{
		ID:                3,
		Name:              "Surgery rotation",
		ScheduleStartDate: date(2024, time.June, 3),
		TotalWeeks:        2,
		Definitions: []domain.ShiftDefinition{
			{DutyCode: "N", Name: "Night", Type: domain.DutyNormal, StartTime: "20:00", FinishTime: "08:00"},
			{DutyCode: "D", Name: "Day", Type: domain.DutyNormal, StartTime: "08:00", FinishTime: "16:00"},
			{DutyCode: "OC", Name: "On call", Type: domain.DutyOnCall, StartTime: "17:00", FinishTime: "24:00"},
		},
		Grid: [][]string{
			{"N", "", "D", "", "OC", "", ""},
			{"", "D", "", "N", "", "", "D"},
		},
	}

	occurrences, err := rota.Expand(r, r.ScheduleStartDate.AddDate(0, 0, 6*7))
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)

	for i := 1; i < len(occurrences); i++ {
		assert.False(t, occurrences[i].Start.Before(occurrences[i-1].Start),
			"occurrence %d starts before occurrence %d", i, i-1)
	}
}

func TestExpand_OvernightDutyCrossesMidnight(t *testing.T) {
	r := oneWeekRota()
	r.Definitions[0].StartTime = "22:00"
	r.Definitions[0].FinishTime = "06:00"

	occurrences, err := rota.Expand(r, r.ScheduleStartDate.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, occurrences, 1)

	assert.Equal(t, time.Date(2024, time.January, 1, 22, 0, 0, 0, time.UTC), occurrences[0].Start)
	assert.Equal(t, time.Date(2024, time.January, 2, 6, 0, 0, 0, time.UTC), occurrences[0].End)
}

func TestExpand_RejectsZeroWeekCycle(t *testing.T) {
	r := oneWeekRota()
	r.TotalWeeks = 0

	_, err := rota.Expand(r, r.ScheduleStartDate.AddDate(0, 0, 6))
	assert.Error(t, err)
}

func TestExpand_OccurrenceIDsAreReproducible(t *testing.T) {
	r := oneWeekRota()
	rangeEnd := r.ScheduleStartDate.AddDate(0, 0, 13)

	first, err := rota.Expand(r, rangeEnd)
	require.NoError(t, err)
	second, err := rota.Expand(r, rangeEnd)
	require.NoError(t, err)

	require.Equal(t, first, second)
	assert.Equal(t, "7:D1:2024-01-01T09:00:00Z", first[0].ID)
}
