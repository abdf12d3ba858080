package handler

import (
	"net/http"

	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/medrota/rota-checker/backend/internal/utils"
	"github.com/shopspring/decimal"
)

// EvaluateShifts is the simple-form calculator: a flat list of ad-hoc
// shifts, each validated independently, run through the same aggregation,
// compliance and salary pipeline as a stored rota.
func (h *Handler) EvaluateShifts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Shifts []rota.AdHocShift `json:"shifts"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if fieldErrors := utils.ValidateAdHocShifts(req.Shifts); len(fieldErrors) > 0 {
		h.fieldErrorsResponse(w, r, fieldErrors)
		return
	}

	rate := decimal.NewFromFloat(h.config.Pay.HourlyRate)
	report, err := rota.EvaluateAdHoc(req.Shifts, rate)
	if err != nil {
		h.errorResponse(w, r, "unable to process the shifts: "+err.Error())
		return
	}

	h.successResponse(w, r, "shifts evaluated", report)
}
