package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucReport "github.com/BruksfildServices01/barber-manager/internal/usecase/report"
)

type ReportHandler struct {
	reports *ucReport.Reports
}

func NewReportHandler(reports *ucReport.Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// TopBarber answers with a null barber when nothing was sold today.
func (h *ReportHandler) TopBarber(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	top, err := h.reports.TopBarber(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, top)
}
