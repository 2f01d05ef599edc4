package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	domainCashbox "github.com/BruksfildServices01/barber-manager/internal/domain/cashbox"
	domainReport "github.com/BruksfildServices01/barber-manager/internal/domain/report"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucCashbox "github.com/BruksfildServices01/barber-manager/internal/usecase/cashbox"
	ucReport "github.com/BruksfildServices01/barber-manager/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type CashboxHandler struct {
	repo    domainCashbox.Repository
	create  *ucCashbox.CreateEntry
	update  *ucCashbox.UpdateEntry
	remove  *ucCashbox.DeleteEntry
	reports *ucReport.Reports
}

func NewCashboxHandler(
	repo domainCashbox.Repository,
	create *ucCashbox.CreateEntry,
	update *ucCashbox.UpdateEntry,
	remove *ucCashbox.DeleteEntry,
	reports *ucReport.Reports,
) *CashboxHandler {
	return &CashboxHandler{
		repo:    repo,
		create:  create,
		update:  update,
		remove:  remove,
		reports: reports,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCashboxRequest struct {
	Valor          *float64       `json:"valor"`
	FormaPagamento string         `json:"forma_pagamento"`
	Produtos       datatypes.JSON `json:"produtos"`
	BarbeiroID     uint           `json:"barbeiroId"`
	ClienteID      uint           `json:"clienteId"`
	Data           string         `json:"data"`
}

type UpdateCashboxRequest struct {
	CashboxID      uint           `json:"cashboxID"`
	Valor          *float64       `json:"valor"`
	FormaPagamento *string        `json:"forma_pagamento"`
	Produtos       datatypes.JSON `json:"produtos"`
}

// items drops an explicit JSON null so it reads as "not sent".
func items(raw datatypes.JSON) datatypes.JSON {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return raw
}

// ======================================================
// ENTRIES
// ======================================================

func (h *CashboxHandler) Create(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req CreateCashboxRequest
	if !bindJSON(c, &req) {
		return
	}

	occurredAt, err := parseInstant(req.Data, h.reports.Location(), "data")
	if err != nil {
		_ = c.Error(err)
		return
	}

	tx, err := h.create.Execute(c.Request.Context(), ucCashbox.CreateEntryInput{
		BarbershopID:  barbershopID,
		BarberID:      req.BarbeiroID,
		ClientID:      req.ClienteID,
		Amount:        req.Valor,
		PaymentMethod: req.FormaPagamento,
		Products:      items(req.Produtos),
		OccurredAt:    occurredAt,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cashbox":    tx,
		"setLastCut": tx.Client,
	})
}

func (h *CashboxHandler) Update(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req UpdateCashboxRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.update.Execute(c.Request.Context(), barbershopID, req.CashboxID, domainCashbox.Patch{
		Amount:        req.Valor,
		PaymentMethod: req.FormaPagamento,
		Products:      items(req.Produtos),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cashbox": tx})
}

func (h *CashboxHandler) Delete(c *gin.Context) {
	var req idRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.PrincipalID(c), req.ID); err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Message(c, "Cashbox entry deleted.")
}

func (h *CashboxHandler) List(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.repo.ListEntries(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// TODAY
// ======================================================

func (h *CashboxHandler) TotalToday(c *gin.Context) {
	total, err := h.reports.TotalForToday(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalToday": total})
}

func (h *CashboxHandler) SalesPerDay(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	count, err := h.reports.SalesCount(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salesPerDay": count})
}

func (h *CashboxHandler) MiddleTicket(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	summary, err := h.reports.AverageTicket(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"middleTicket": summary.Average,
		"count":        summary.Count,
	})
}

// ======================================================
// PERIOD
// ======================================================

func (h *CashboxHandler) periodTotals(c *gin.Context, requireBarber bool) (*ucReport.PeriodTotals, bool) {
	var req periodRequest
	if !bindJSON(c, &req) {
		return nil, false
	}

	if requireBarber && (req.BarbeiroID == nil || *req.BarbeiroID == 0) {
		_ = c.Error(httperr.MissingField("Insert barbeiroId."))
		return nil, false
	}

	period, err := domainReport.NewPeriod(req.DataInicial, req.DataFinal, h.reports.Location())
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}

	totals, err := h.reports.PeriodTotals(c.Request.Context(), middleware.PrincipalID(c), period, req.BarbeiroID)
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return totals, true
}

func (h *CashboxHandler) Period(c *gin.Context) {
	if totals, ok := h.periodTotals(c, false); ok {
		c.JSON(http.StatusOK, totals)
	}
}

func (h *CashboxHandler) BarberPeriod(c *gin.Context) {
	if totals, ok := h.periodTotals(c, true); ok {
		c.JSON(http.StatusOK, totals)
	}
}

func (h *CashboxHandler) MiddleTicketPeriod(c *gin.Context) {
	if totals, ok := h.periodTotals(c, false); ok {
		c.JSON(http.StatusOK, gin.H{
			"middleTicket": totals.Average,
			"count":        totals.Count,
		})
	}
}

func (h *CashboxHandler) AmountPeriod(c *gin.Context) {
	if totals, ok := h.periodTotals(c, false); ok {
		c.JSON(http.StatusOK, gin.H{
			"amount": totals.Sum,
			"count":  totals.Count,
		})
	}
}
