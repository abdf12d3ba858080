package domain

import "time"

type DutyType string

const (
	DutyNormal DutyType = "normal"
	DutyOnCall DutyType = "on-call"
)

// ShiftDefinition is a reusable duty template. Duty codes are unique within
// one rota; the evaluation engine never mutates definitions.
type ShiftDefinition struct {
	ID           int64    `json:"id"`
	DutyCode     string   `json:"dutyCode"`
	Name         string   `json:"name"`
	Type         DutyType `json:"type"`
	StartTime    string   `json:"startTime"`  // HH:MM
	FinishTime   string   `json:"finishTime"` // HH:MM, or 24:00 meaning end of day
	BreakMinutes int      `json:"breakMinutes"`
}

// Rota is a cyclic weekly-grid shift schedule: TotalWeeks rows of 7 day
// cells, each naming a duty code or empty for an off day. The cycle anchors
// at ScheduleStartDate and repeats until EndDate (or a caller-supplied
// bound when EndDate is nil).
type Rota struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Site              string            `json:"site"`
	Specialty         string            `json:"specialty"`
	ScheduleStartDate time.Time         `json:"scheduleStartDate"`
	EndDate           *time.Time        `json:"endDate"`
	TotalWeeks        int32             `json:"scheduleTotalWeeks"`
	LeaveEntitlement  int32             `json:"leaveEntitlement"` // days/year, reporting only
	OptedOut          bool              `json:"optedOut"`         // WTR opt-out flag, reporting only
	OwnerID           int64             `json:"ownerID"`
	Definitions       []ShiftDefinition `json:"shiftDefinitions"`
	Grid              [][]string        `json:"grid"` // [week][day] duty code, "" = off
	CreatedAt         time.Time         `json:"createdAt"`
	Version           int32             `json:"-"`
}

// FieldError is a single input-validation failure. Validation failures are
// reported as values, never as faults; computation does not proceed when any
// are present.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
