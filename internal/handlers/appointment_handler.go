package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
	loc      *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		loc:      loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Data       string `json:"data"`
	BarbeiroID uint   `json:"barbeiroId"`
	ClienteID  uint   `json:"clienteId"`
}

type UpdateAppointmentRequest struct {
	ID         uint    `json:"id" binding:"required"`
	Data       *string `json:"data"`
	BarbeiroID *uint   `json:"barbeiroId"`
	ClienteID  *uint   `json:"clienteId"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	at, err := parseInstant(req.Data, h.loc, "data")
	if err != nil {
		_ = c.Error(err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarbershopID: middleware.PrincipalID(c),
		BarberID:     req.BarbeiroID,
		ClientID:     req.ClienteID,
		At:           at,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	changes := domain.Changes{
		BarberID: req.BarbeiroID,
		ClientID: req.ClienteID,
	}
	if req.Data != nil {
		at, err := parseInstant(*req.Data, h.loc, "data")
		if err != nil {
			_ = c.Error(err)
			return
		}
		if !at.IsZero() {
			changes.At = &at
		}
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), middleware.PrincipalID(c), req.ID, changes)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var req idRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), middleware.PrincipalID(c), req.ID); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Message(c, "Scheduler deleted.")
}

// ======================================================
// LIST
// ======================================================

// List accepts ?date=YYYY-MM-DD or ?month=YYYY-MM (also ?year=&month=).
// Without a filter every appointment of the barbershop is returned.
func (h *AppointmentHandler) List(c *gin.Context) {
	filter, err := h.listFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), middleware.PrincipalID(c), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) listFilter(c *gin.Context) (ucAppointment.ListFilter, error) {
	var filter ucAppointment.ListFilter

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseInstant(dateStr, h.loc, "date")
		if err != nil {
			return filter, err
		}
		filter.Date = &date
		return filter, nil
	}

	monthStr := strings.TrimSpace(c.Query("month"))
	if monthStr == "" {
		return filter, nil
	}

	if yearStr := c.Query("year"); yearStr != "" {
		monthStr = yearStr + "-" + monthStr
	}

	parts := strings.SplitN(monthStr, "-", 2)
	if len(parts) != 2 {
		return filter, httperr.InvalidDateRange("Invalid month.")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 2000 || year > 2100 {
		return filter, httperr.InvalidDateRange("Invalid year.")
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return filter, httperr.InvalidDateRange("Invalid month.")
	}

	filter.Year = year
	filter.Month = month
	return filter, nil
}
