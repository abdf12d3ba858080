// Package rota is the rota evaluation engine: a pure computation that turns
// a cyclic shift schedule plus calendar bounds into concrete shift
// occurrences, aggregate worked/break hours, duty-hour compliance findings
// and a salary estimate. It has no dependencies on HTTP, the database or
// session state, which keeps every run deterministic and trivially safe to
// execute concurrently.
package rota

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type OverallStatus string

const (
	StatusCompliant    OverallStatus = "Compliant"
	StatusReviewNeeded OverallStatus = "Review Needed"
	StatusInformation  OverallStatus = "Information"
)

// ShiftOccurrence is one concrete instance of a duty within the evaluated
// range. Occurrences are derived on every evaluation and never persisted;
// the ID is reproducible from (rotaID, dutyCode, start instant) so repeated
// evaluations of unchanged input are stable for diffing.
type ShiftOccurrence struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"` // may fall on a later calendar date than Start
	DutyCode string    `json:"dutyCode"`
	Type     string    `json:"type"`
	RotaName string    `json:"rotaName"`
}

// ShiftStat carries the figures the aggregator and the compliance rules
// consume for a single shift.
type ShiftStat struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
	BreakMinutes    int
}

type Finding struct {
	Severity Severity `json:"type"`
	Message  string   `json:"text"`
}

type Aggregate struct {
	TotalWorkedHours float64 `json:"totalHours"`
	TotalBreakHours  float64 `json:"totalBreakHours"`
	PayableHours     float64 `json:"payableHours"`
}

// Report is the full evaluation result. Findings keep rule-evaluation
// order, with exactly one summary finding first.
type Report struct {
	OverallStatus    OverallStatus `json:"complianceSummary"`
	Findings         []Finding     `json:"complianceMessages"`
	TotalWorkedHours float64       `json:"totalHours"`
	TotalBreakHours  float64       `json:"totalBreakHours"`
	PayableHours     float64       `json:"payableHours"`
	EstimatedSalary  float64       `json:"estimatedSalary"`
}

// AdHocShift is the simple-form input variant: a flat list of independent
// shifts instead of a cyclic grid.
type AdHocShift struct {
	Date         string `json:"date"`      // YYYY-MM-DD
	StartTime    string `json:"startTime"` // HH:MM
	EndTime      string `json:"endTime"`   // HH:MM or 24:00
	BreakMinutes int    `json:"breakMinutes"`
}
