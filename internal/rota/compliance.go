package rota

import "fmt"

// Duty-hour rule thresholds. Illustrative simplifications of the Working
// Time Regulations, not contractual values.
const (
	maxAverageWeeklyHours = 48

	longShiftMinutes      = 12 * 60
	longShiftMinBreak     = 60
	moderateShiftMinutes  = 6 * 60
	moderateShiftMinBreak = 30
)

func shiftWindow(s ShiftStat) string {
	return fmt.Sprintf("%s %s–%s", s.Start.Format("Mon 02 Jan 2006"), s.Start.Format("15:04"), s.End.Format("15:04"))
}

// CheckCompliance applies the fixed rule set to the aggregated hours and to
// each individual shift, in order: the 48-hour average weekly hours rule,
// then the long-shift (12h) break rule, then the moderate-shift (6h) break
// rule. The two break rules are independent and can both fire for the same
// shift.
//
// Exactly one summary finding is prepended. Its severity is success when no
// rule fired and info otherwise, regardless of how many warnings follow.
func CheckCompliance(shifts []ShiftStat, totalWorkedHours float64) (OverallStatus, []Finding) {
	compliant := true
	findings := make([]Finding, 0)

	if totalWorkedHours > maxAverageWeeklyHours {
		compliant = false
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Total worked hours (%.2f) exceed the 48-hour average weekly limit set by the Working Time Regulations.", totalWorkedHours),
		})
	}

	for _, s := range shifts {
		if s.DurationMinutes > longShiftMinutes && s.BreakMinutes < longShiftMinBreak {
			compliant = false
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Shift %s is longer than 12 hours but has less than 60 minutes of break.", shiftWindow(s)),
			})
		}
	}

	for _, s := range shifts {
		if s.DurationMinutes > moderateShiftMinutes && s.BreakMinutes < moderateShiftMinBreak {
			compliant = false
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Shift %s is longer than 6 hours but has less than 30 minutes of break.", shiftWindow(s)),
			})
		}
	}

	if len(findings) == 0 {
		findings = append(findings, Finding{
			Severity: SeveritySuccess,
			Message:  "This rota appears compliant based on basic checks.",
		})
	}

	summary := Finding{
		Severity: SeveritySuccess,
		Message:  "Compliance check complete: no issues found.",
	}
	if !compliant {
		summary = Finding{
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Compliance check complete: %d finding(s) need review.", len(findings)),
		}
	}
	findings = append([]Finding{summary}, findings...)

	return overallStatus(compliant, findings), findings
}

func overallStatus(compliant bool, findings []Finding) OverallStatus {
	if compliant {
		for _, f := range findings {
			if f.Severity == SeveritySuccess {
				return StatusCompliant
			}
		}
	}
	for _, f := range findings {
		if f.Severity == SeverityWarning || f.Severity == SeverityError {
			return StatusReviewNeeded
		}
	}
	return StatusInformation
}
