package rota

import "github.com/shopspring/decimal"

var minutesPerHour = decimal.NewFromInt(60)

// Sum totals worked and break minutes across the given shifts. A shift
// entirely consumed by its break contributes zero worked minutes, never
// negative ones, but its break minutes still count towards the break total.
// Hours are rounded to 2 decimal places; payable hours equal worked hours
// as no premium or overtime is modelled.
func Sum(shifts []ShiftStat) Aggregate {
	var workedMinutes, breakMinutes int64
	for _, s := range shifts {
		if worked := s.DurationMinutes - s.BreakMinutes; worked > 0 {
			workedMinutes += int64(worked)
		}
		breakMinutes += int64(s.BreakMinutes)
	}

	worked := decimal.NewFromInt(workedMinutes).Div(minutesPerHour).Round(2)
	rest := decimal.NewFromInt(breakMinutes).Div(minutesPerHour).Round(2)

	return Aggregate{
		TotalWorkedHours: worked.InexactFloat64(),
		TotalBreakHours:  rest.InexactFloat64(),
		PayableHours:     worked.InexactFloat64(),
	}
}
