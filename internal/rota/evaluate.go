package rota

import (
	"fmt"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// EvaluateRota runs the full pipeline over a rota document: expand the
// cycle up to rangeEnd, aggregate worked and break hours, evaluate the
// compliance rules and estimate pay. The occurrence list is returned
// alongside the report for calendar display.
func EvaluateRota(r *domain.Rota, rangeEnd time.Time, hourlyRate decimal.Decimal) (*Report, []ShiftOccurrence, error) {
	occurrences, err := Expand(r, rangeEnd)
	if err != nil {
		return nil, nil, err
	}

	defsByCode := make(map[string]*domain.ShiftDefinition, len(r.Definitions))
	for i := range r.Definitions {
		defsByCode[r.Definitions[i].DutyCode] = &r.Definitions[i]
	}

	stats := make([]ShiftStat, len(occurrences))
	for i, occ := range occurrences {
		breakMinutes := 0
		if def, ok := defsByCode[occ.DutyCode]; ok {
			breakMinutes = def.BreakMinutes
		}
		stats[i] = ShiftStat{
			Start:           occ.Start,
			End:             occ.End,
			DurationMinutes: int(occ.End.Sub(occ.Start) / time.Minute),
			BreakMinutes:    breakMinutes,
		}
	}

	return buildReport(stats, hourlyRate), occurrences, nil
}

// EvaluateAdHoc runs aggregation, compliance and salary estimation over a
// flat list of independently entered shifts. Inputs are expected to have
// passed validation already; a malformed date or clock here is an internal
// fault naming the offending shift.
func EvaluateAdHoc(shifts []AdHocShift, hourlyRate decimal.Decimal) (*Report, error) {
	stats := make([]ShiftStat, len(shifts))
	for i, s := range shifts {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return nil, fmt.Errorf("shift %d: invalid date %q", i, s.Date)
		}
		start, end, err := ShiftInstants(date, s.StartTime, s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift %d on %s: %w", i, s.Date, err)
		}
		duration := int(end.Sub(start) / time.Minute)
		if duration <= 0 {
			return nil, fmt.Errorf("computed a non-positive duration for the shift on %s", s.Date)
		}
		stats[i] = ShiftStat{
			Start:           start,
			End:             end,
			DurationMinutes: duration,
			BreakMinutes:    s.BreakMinutes,
		}
	}

	return buildReport(stats, hourlyRate), nil
}

func buildReport(stats []ShiftStat, hourlyRate decimal.Decimal) *Report {
	agg := Sum(stats)
	status, findings := CheckCompliance(stats, agg.TotalWorkedHours)

	return &Report{
		OverallStatus:    status,
		Findings:         findings,
		TotalWorkedHours: agg.TotalWorkedHours,
		TotalBreakHours:  agg.TotalBreakHours,
		PayableHours:     agg.PayableHours,
		EstimatedSalary:  EstimateSalary(agg.PayableHours, hourlyRate),
	}
}
