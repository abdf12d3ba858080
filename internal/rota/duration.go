package rota

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EndOfDay is the sentinel finish time meaning exactly midnight of the
// following day.
const EndOfDay = "24:00"

// ParseClock parses an HH:MM clock string (00:00–23:59, or the 24:00
// sentinel) into hour and minute components.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q", clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q", clock)
	}

	if clock == EndOfDay {
		return 24, 0, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock time %q out of range", clock)
	}

	return hour, minute, nil
}

// ShiftInstants combines a calendar date with a start/end clock pair and
// returns the absolute start and end instants of the shift.
//
// A candidate end at or before the start means the shift crosses midnight
// and the end advances by one day, so a shift whose clock-end equals its
// clock-start is a full 24-hour shift, not a zero-length one. The 24:00
// sentinel is exactly midnight of the following day and bypasses that rule.
func ShiftInstants(date time.Time, startClock, endClock string) (start, end time.Time, err error) {
	sh, sm, err := ParseClock(startClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startClock == EndOfDay {
		return time.Time{}, time.Time{}, fmt.Errorf("clock time %q is not a valid start time", startClock)
	}

	eh, em, err := ParseClock(endClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start = day.Add(time.Duration(sh)*time.Hour + time.Duration(sm)*time.Minute)
	end = day.Add(time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute)

	if endClock != EndOfDay && !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return start, end, nil
}

// ShiftMinutes returns the elapsed minutes of a shift on the given date,
// handling shifts that cross midnight. The result is never negative for
// well-formed clock input; a negative value downstream signals an
// input-construction bug, not a user error.
func ShiftMinutes(date time.Time, startClock, endClock string) (int, error) {
	start, end, err := ShiftInstants(date, startClock, endClock)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start) / time.Minute), nil
}
