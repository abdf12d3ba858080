package rota

import (
	"fmt"
	"sort"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
)

// Expand produces every concrete shift occurrence of the rota's cycle up to
// and including rangeEnd, ascending by start instant.
//
// The cycle anchors at the rota's schedule start date: the first occurrence
// of each grid cell falls on scheduleStartDate + (week*7 + day) days and
// repeats every totalWeeks*7 days until its start passes rangeEnd.
// The anchor date is authoritative for phase alignment; there is no
// backfill of repetitions before it.
//
// Grid cells naming a duty code with no matching definition are skipped
// silently: the grid and the definitions may be edited independently, and a
// stale reference must not fail the whole expansion.
func Expand(r *domain.Rota, rangeEnd time.Time) ([]ShiftOccurrence, error) {
	if r.TotalWeeks < 1 {
		return nil, fmt.Errorf("rota %q has no weeks in its cycle", r.Name)
	}

	defsByCode := make(map[string]*domain.ShiftDefinition, len(r.Definitions))
	for i := range r.Definitions {
		defsByCode[r.Definitions[i].DutyCode] = &r.Definitions[i]
	}

	cycleDays := int(r.TotalWeeks) * 7

	occurrences := make([]ShiftOccurrence, 0)
	for week := range r.Grid {
		for day, code := range r.Grid[week] {
			if code == "" {
				continue
			}
			def, ok := defsByCode[code]
			if !ok {
				continue
			}

			firstDate := r.ScheduleStartDate.AddDate(0, 0, week*7+day)
			start, end, err := ShiftInstants(firstDate, def.StartTime, def.FinishTime)
			if err != nil {
				return nil, fmt.Errorf("duty %s: %w", code, err)
			}

			for !start.After(rangeEnd) {
				if !end.After(start) {
					// unreachable given the midnight-crossing rule; a fatal
					// input-construction bug rather than a user error
					return nil, fmt.Errorf("computed a non-positive duration for duty %s on %s", code, start.Format("2006-01-02"))
				}
				occurrences = append(occurrences, ShiftOccurrence{
					ID:       fmt.Sprintf("%d:%s:%s", r.ID, code, start.UTC().Format(time.RFC3339)),
					Title:    def.Name,
					Start:    start,
					End:      end,
					DutyCode: code,
					Type:     string(def.Type),
					RotaName: r.Name,
				})
				start = start.AddDate(0, 0, cycleDays)
				end = end.AddDate(0, 0, cycleDays)
			}
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if !occurrences[i].Start.Equal(occurrences[j].Start) {
			return occurrences[i].Start.Before(occurrences[j].Start)
		}
		return occurrences[i].DutyCode < occurrences[j].DutyCode
	})

	return occurrences, nil
}
