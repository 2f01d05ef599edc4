package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	action := c.Query("action")
	entity := c.Query("entity")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Always scoped to the caller's barbershop
	// --------------------------------------------------

	q := h.db.
		Model(&models.AuditLog{}).
		Where("barbershop_id = ?", barbershopID)

	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	from, err := parseInstant(c.Query("from"), h.loc, "from")
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from.UTC())
	}

	// A date-only "to" covers its whole day.
	to, dateOnly, err := parseDate(c.Query("to"), h.loc, "to")
	if err != nil {
		_ = c.Error(err)
		return
	}
	switch {
	case to.IsZero():
	case dateOnly:
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1).UTC())
	default:
		q = q.Where("created_at <= ?", to.UTC())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		_ = c.Error(err)
		return
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
