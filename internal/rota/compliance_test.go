package rota_test

import (
	"strings"
	"testing"
	"time"

	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stat(start time.Time, durationMinutes, breakMinutes int) rota.ShiftStat {
	return rota.ShiftStat{
		Start:           start,
		End:             start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		BreakMinutes:    breakMinutes,
	}
}

func TestCheckCompliance_CleanRota(t *testing.T) {
	shifts := []rota.ShiftStat{
		stat(date(2024, time.January, 1).Add(9*time.Hour), 480, 30),
		stat(date(2024, time.January, 2).Add(9*time.Hour), 480, 30),
	}

	status, findings := rota.CheckCompliance(shifts, 15)

	assert.Equal(t, rota.StatusCompliant, status)
	require.Len(t, findings, 2)
	assert.Equal(t, rota.SeveritySuccess, findings[0].Severity)
	assert.Equal(t, rota.SeveritySuccess, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "appears compliant")
}

func TestCheckCompliance_AverageWeeklyHours(t *testing.T) {
	status, findings := rota.CheckCompliance(nil, 50)

	assert.Equal(t, rota.StatusReviewNeeded, status)
	require.Len(t, findings, 2)
	assert.Equal(t, rota.SeverityInfo, findings[0].Severity)
	assert.Equal(t, rota.SeverityWarning, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "48-hour")
}

func TestCheckCompliance_BothBreakRulesFireForOneShift(t *testing.T) {
	// a 13-hour shift with a 25-minute break breaches both thresholds:
	// under 60 minutes for the 12h rule and under 30 for the 6h rule
	long := stat(date(2024, time.January, 1).Add(8*time.Hour), 13*60, 25)

	status, findings := rota.CheckCompliance([]rota.ShiftStat{long}, 12.58)

	assert.Equal(t, rota.StatusReviewNeeded, status)
	require.Len(t, findings, 3) // summary + 12h rule + 6h rule
	assert.Equal(t, rota.SeverityInfo, findings[0].Severity)
	assert.Contains(t, findings[1].Message, "12 hours")
	assert.Contains(t, findings[2].Message, "6 hours")
}

func TestCheckCompliance_BreakRulesAreIndependent(t *testing.T) {
	// 45 minutes of break satisfies the 6h rule but not the 12h rule
	long := stat(date(2024, time.January, 1).Add(8*time.Hour), 13*60, 45)

	_, findings := rota.CheckCompliance([]rota.ShiftStat{long}, 12.25)

	var warnings []string
	for _, f := range findings {
		if f.Severity == rota.SeverityWarning {
			warnings = append(warnings, f.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "12 hours")

	// 7-hour shift with 20 minutes of break trips only the 6h rule
	moderate := stat(date(2024, time.January, 2).Add(9*time.Hour), 7*60, 20)

	_, findings = rota.CheckCompliance([]rota.ShiftStat{moderate}, 6.67)

	warnings = warnings[:0]
	for _, f := range findings {
		if f.Severity == rota.SeverityWarning {
			warnings = append(warnings, f.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "6 hours")
}

func TestCheckCompliance_FindingMessagesNameTheShiftWindow(t *testing.T) {
	long := stat(time.Date(2024, time.March, 4, 20, 0, 0, 0, time.UTC), 13*60, 0)

	_, findings := rota.CheckCompliance([]rota.ShiftStat{long}, 13)

	found := false
	for _, f := range findings {
		if strings.Contains(f.Message, "Mon 04 Mar 2024") && strings.Contains(f.Message, "20:00") {
			found = true
		}
	}
	assert.True(t, found, "expected a finding naming the shift's date/time window, got %v", findings)
}

func TestCheckCompliance_SummaryIsAlwaysFirst(t *testing.T) {
	long := stat(date(2024, time.January, 1).Add(8*time.Hour), 13*60, 25)

	_, findings := rota.CheckCompliance([]rota.ShiftStat{long}, 60)

	require.NotEmpty(t, findings)
	// the summary never escalates past info, regardless of warnings
	assert.Contains(t, []rota.Severity{rota.SeveritySuccess, rota.SeverityInfo}, findings[0].Severity)
}
