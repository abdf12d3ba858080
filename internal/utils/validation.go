package utils

import (
	"fmt"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/rota"
)

const maxTotalWeeks = 52

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

func validClock(clock string, allowEndOfDay bool) bool {
	if clock == rota.EndOfDay {
		return allowEndOfDay
	}
	_, _, err := rota.ParseClock(clock)
	return err == nil
}

// ValidateRota checks a rota document before evaluation: duty codes unique
// and alphanumeric, clock strings well-formed, cycle length within bounds
// and the grid shaped to the declared cycle. Failures are reported as a
// field-annotated list; an empty result means evaluation may proceed.
// Grid cells naming unknown duty codes are not flagged here; the expander
// skips them.
func ValidateRota(r *domain.Rota) []domain.FieldError {
	errs := make([]domain.FieldError, 0)

	if r.Name == "" {
		errs = append(errs, domain.FieldError{Path: "name", Message: "name is required"})
	}

	if r.TotalWeeks < 1 || r.TotalWeeks > maxTotalWeeks {
		errs = append(errs, domain.FieldError{
			Path:    "scheduleTotalWeeks",
			Message: fmt.Sprintf("total weeks must be between 1 and %d", maxTotalWeeks),
		})
	}

	if r.ScheduleStartDate.IsZero() {
		errs = append(errs, domain.FieldError{Path: "scheduleStartDate", Message: "schedule start date is required"})
	}
	if r.EndDate != nil && r.EndDate.Before(r.ScheduleStartDate) {
		errs = append(errs, domain.FieldError{Path: "endDate", Message: "end date must not be before the schedule start date"})
	}

	seen := make(map[string]bool, len(r.Definitions))
	for i, def := range r.Definitions {
		path := func(field string) string { return fmt.Sprintf("shiftDefinitions[%d].%s", i, field) }

		switch {
		case def.DutyCode == "":
			errs = append(errs, domain.FieldError{Path: path("dutyCode"), Message: "duty code is required"})
		case !isAlphanumeric(def.DutyCode):
			errs = append(errs, domain.FieldError{Path: path("dutyCode"), Message: "duty code must be alphanumeric"})
		case seen[def.DutyCode]:
			errs = append(errs, domain.FieldError{Path: path("dutyCode"), Message: fmt.Sprintf("duty code %q is already in use", def.DutyCode)})
		default:
			seen[def.DutyCode] = true
		}

		if def.Name == "" {
			errs = append(errs, domain.FieldError{Path: path("name"), Message: "name is required"})
		}
		if def.Type != domain.DutyNormal && def.Type != domain.DutyOnCall {
			errs = append(errs, domain.FieldError{Path: path("type"), Message: "type must be normal or on-call"})
		}
		if !validClock(def.StartTime, false) {
			errs = append(errs, domain.FieldError{Path: path("startTime"), Message: "start time must be HH:MM between 00:00 and 23:59"})
		}
		if !validClock(def.FinishTime, true) {
			errs = append(errs, domain.FieldError{Path: path("finishTime"), Message: "finish time must be HH:MM, or 24:00 for end of day"})
		}
		if def.BreakMinutes < 0 || def.BreakMinutes > 1440 {
			errs = append(errs, domain.FieldError{Path: path("breakMinutes"), Message: "break minutes must be between 0 and 1440"})
		}
	}

	if len(r.Grid) != int(r.TotalWeeks) {
		errs = append(errs, domain.FieldError{
			Path:    "grid",
			Message: fmt.Sprintf("grid must have %d week rows, got %d", r.TotalWeeks, len(r.Grid)),
		})
	}
	for week, days := range r.Grid {
		if len(days) != 7 {
			errs = append(errs, domain.FieldError{
				Path:    fmt.Sprintf("grid[%d]", week),
				Message: fmt.Sprintf("week %d must have 7 day cells, got %d", week, len(days)),
			})
		}
	}

	return errs
}

// ValidateAdHocShifts checks the simple-form shift list: each shift is
// validated independently and every failure is reported with the index of
// the offending shift.
func ValidateAdHocShifts(shifts []rota.AdHocShift) []domain.FieldError {
	errs := make([]domain.FieldError, 0)

	if len(shifts) == 0 {
		errs = append(errs, domain.FieldError{Path: "shifts", Message: "at least one shift is required"})
		return errs
	}

	for i, s := range shifts {
		path := func(field string) string { return fmt.Sprintf("shifts[%d].%s", i, field) }

		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			errs = append(errs, domain.FieldError{Path: path("date"), Message: "date must be YYYY-MM-DD"})
		}
		if !validClock(s.StartTime, false) {
			errs = append(errs, domain.FieldError{Path: path("startTime"), Message: "start time must be HH:MM between 00:00 and 23:59"})
		}
		if !validClock(s.EndTime, true) {
			errs = append(errs, domain.FieldError{Path: path("endTime"), Message: "end time must be HH:MM, or 24:00 for end of day"})
		}
		if s.BreakMinutes < 0 || s.BreakMinutes > 1440 {
			errs = append(errs, domain.FieldError{Path: path("breakMinutes"), Message: "break minutes must be between 0 and 1440"})
		}
	}

	return errs
}
