package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/medrota/rota-checker/backend/internal/domain"
	"github.com/medrota/rota-checker/backend/internal/rota"
	"github.com/medrota/rota-checker/backend/internal/utils"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

type rotaRequest struct {
	Name              string                   `json:"name" validate:"required"`
	Site              string                   `json:"site"`
	Specialty         string                   `json:"specialty"`
	ScheduleStartDate string                   `json:"scheduleStartDate" validate:"required"`
	EndDate           *string                  `json:"endDate"`
	TotalWeeks        int32                    `json:"scheduleTotalWeeks" validate:"required"`
	LeaveEntitlement  int32                    `json:"leaveEntitlement"`
	OptedOut          bool                     `json:"optedOut"`
	Definitions       []domain.ShiftDefinition `json:"shiftDefinitions"`
	Grid              [][]string               `json:"grid"`
	// GridCells is the legacy string-keyed grid form ("week_0_day_3" ->
	// duty code) still produced by older clients. It is converted to the
	// two-dimensional form at this boundary and never used internally.
	GridCells map[string]string `json:"gridCells"`
}

func parseLegacyGridCells(cells map[string]string, totalWeeks int32) ([][]string, []domain.FieldError) {
	// the struct tag only rejects a zero value, so a negative count can
	// still reach us here and must not size the grid
	if totalWeeks < 1 || totalWeeks > 52 {
		return nil, []domain.FieldError{{
			Path:    "scheduleTotalWeeks",
			Message: "total weeks must be between 1 and 52",
		}}
	}

	grid := make([][]string, totalWeeks)
	for week := range grid {
		grid[week] = make([]string, 7)
	}

	errs := make([]domain.FieldError, 0)
	for key, dutyCode := range cells {
		var week, day int
		if _, err := fmt.Sscanf(key, "week_%d_day_%d", &week, &day); err != nil {
			errs = append(errs, domain.FieldError{
				Path:    "gridCells." + key,
				Message: "cell keys must look like week_<n>_day_<m>",
			})
			continue
		}
		if week < 0 || week >= int(totalWeeks) || day < 0 || day > 6 {
			errs = append(errs, domain.FieldError{
				Path:    "gridCells." + key,
				Message: fmt.Sprintf("cell is outside the %d-week cycle", totalWeeks),
			})
			continue
		}
		grid[week][day] = dutyCode
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return grid, nil
}

func (h *Handler) rotaFromRequest(req *rotaRequest, ownerID int64) (*domain.Rota, []domain.FieldError) {
	startDate, err := time.Parse("2006-01-02", req.ScheduleStartDate)
	if err != nil {
		return nil, []domain.FieldError{{Path: "scheduleStartDate", Message: "schedule start date must be YYYY-MM-DD"}}
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, []domain.FieldError{{Path: "endDate", Message: "end date must be YYYY-MM-DD"}}
		}
		endDate = &parsed
	}

	grid := req.Grid
	if grid == nil && req.GridCells != nil {
		converted, errs := parseLegacyGridCells(req.GridCells, req.TotalWeeks)
		if len(errs) > 0 {
			return nil, errs
		}
		grid = converted
	}

	doc := &domain.Rota{
		Name:              req.Name,
		Site:              req.Site,
		Specialty:         req.Specialty,
		ScheduleStartDate: startDate,
		EndDate:           endDate,
		TotalWeeks:        req.TotalWeeks,
		LeaveEntitlement:  req.LeaveEntitlement,
		OptedOut:          req.OptedOut,
		OwnerID:           ownerID,
		Definitions:       req.Definitions,
		Grid:              grid,
	}

	if errs := utils.ValidateRota(doc); len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

func (h *Handler) CreateRota(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req rotaRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	doc, fieldErrors := h.rotaFromRequest(&req, myInfo.ID)
	if len(fieldErrors) > 0 {
		h.fieldErrorsResponse(w, r, fieldErrors)
		return
	}

	if err := h.repository.CreateRota(doc); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rota created", doc)
}

func (h *Handler) GetMyRotas(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var rotas []*domain.Rota
	var err error
	if myInfo.Role == domain.RoleDoctor {
		rotas, err = h.repository.GetRotasByOwner(myInfo.ID)
	} else {
		rotas, err = h.repository.GetAllRotas()
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rotas retrieved", rotas)
}

func (h *Handler) GetRota(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(RotaCtx).(*domain.Rota)
	h.successResponse(w, r, "rota retrieved", doc)
}

func (h *Handler) UpdateRota(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(RotaCtx).(*domain.Rota)

	var req rotaRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, fieldErrors := h.rotaFromRequest(&req, doc.OwnerID)
	if len(fieldErrors) > 0 {
		h.fieldErrorsResponse(w, r, fieldErrors)
		return
	}

	updated.ID = doc.ID
	updated.Version = doc.Version

	if err := h.repository.UpdateRota(updated); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rota updated", updated)
}

func (h *Handler) DeleteRota(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(RotaCtx).(*domain.Rota)

	if err := h.repository.DeleteRota(doc.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rota deleted", nil)
}

// evaluationRangeEnd resolves the inclusive end of the evaluated window:
// an explicit ?to= date wins, then the rota's own end date, then a single
// full cycle from the schedule start.
func evaluationRangeEnd(doc *domain.Rota, toParam string) (time.Time, *domain.FieldError) {
	var endDay time.Time
	switch {
	case toParam != "":
		parsed, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			return time.Time{}, &domain.FieldError{Path: "to", Message: "to must be YYYY-MM-DD"}
		}
		endDay = parsed
	case doc.EndDate != nil:
		endDay = *doc.EndDate
	default:
		endDay = doc.ScheduleStartDate.AddDate(0, 0, int(doc.TotalWeeks)*7-1)
	}

	// shifts starting late on the final day still belong to the window
	return endDay.AddDate(0, 0, 1).Add(-time.Second), nil
}

type rotaEvaluation struct {
	Report *rota.Report           `json:"report"`
	Shifts []rota.ShiftOccurrence `json:"shifts"`
}

func (h *Handler) evaluateRotaDocument(doc *domain.Rota, toParam string) (*rotaEvaluation, *domain.FieldError, error) {
	rangeEnd, fieldErr := evaluationRangeEnd(doc, toParam)
	if fieldErr != nil {
		return nil, fieldErr, nil
	}

	rate := decimal.NewFromFloat(h.config.Pay.HourlyRate)
	report, occurrences, err := rota.EvaluateRota(doc, rangeEnd, rate)
	if err != nil {
		return nil, nil, err
	}

	return &rotaEvaluation{Report: report, Shifts: occurrences}, nil, nil
}

func (h *Handler) EvaluateRota(w http.ResponseWriter, r *http.Request) {
	doc := r.Context().Value(RotaCtx).(*domain.Rota)

	evaluation, fieldErr, err := h.evaluateRotaDocument(doc, r.URL.Query().Get("to"))
	if fieldErr != nil {
		h.fieldErrorsResponse(w, r, []domain.FieldError{*fieldErr})
		return
	}
	if err != nil {
		// internal-consistency fault; the engine's message names the
		// offending duty and date without leaking a raw stack
		h.errorResponse(w, r, "unable to process the rota: "+err.Error())
		return
	}

	h.successResponse(w, r, "rota evaluated", evaluation)
}

func (h *Handler) EmailRotaReport(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	doc := r.Context().Value(RotaCtx).(*domain.Rota)

	evaluation, fieldErr, err := h.evaluateRotaDocument(doc, r.URL.Query().Get("to"))
	if fieldErr != nil {
		h.fieldErrorsResponse(w, r, []domain.FieldError{*fieldErr})
		return
	}
	if err != nil {
		h.errorResponse(w, r, "unable to process the rota: "+err.Error())
		return
	}

	mailMessage := domain.MailMessage{
		Type: "rota_report",
		To:   myInfo.Email,
		Data: domain.RotaReportMailData{
			FullName: myInfo.FullName,
			RotaName: doc.Name,
			Report:   evaluation.Report,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "the compliance report has been emailed to you", nil)
}
