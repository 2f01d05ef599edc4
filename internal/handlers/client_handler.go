package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainReport "github.com/BruksfildServices01/barber-manager/internal/domain/report"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	ucReport "github.com/BruksfildServices01/barber-manager/internal/usecase/report"
	"github.com/BruksfildServices01/barber-manager/internal/validators"
)

type ClientHandler struct {
	db      *gorm.DB
	reports *ucReport.Reports
	email   validators.EmailPolicy
}

func NewClientHandler(
	db *gorm.DB,
	reports *ucReport.Reports,
	email validators.EmailPolicy,
) *ClientHandler {
	return &ClientHandler{db: db, reports: reports, email: email}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Telefone  string `json:"telefone" binding:"required"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
}

type UpdateClientRequest struct {
	ID        uint    `json:"id" binding:"required"`
	Nome      *string `json:"nome"`
	Telefone  *string `json:"telefone"`
	Birthdate *string `json:"birthdate"`
	Email     *string `json:"email"`
}

type BirthdatesForMonthRequest struct {
	Date string `json:"date"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Nome)
	phone := strings.TrimSpace(req.Telefone)

	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		_ = c.Error(err)
		return
	}
	email, err := h.email.Normalize(req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var count int64
	if err := h.db.Model(&models.Client{}).
		Where("barbershop_id = ? AND name = ? AND phone = ?", barbershopID, name, phone).
		Count(&count).Error; err != nil {
		_ = c.Error(err)
		return
	}
	if count > 0 {
		_ = c.Error(httperr.AlreadyExists("There is already a customer with the same name and telephone number."))
		return
	}

	client := models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Birthdate:    birthdate,
	}
	if err := h.db.Create(&client).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", req.ID, barbershopID).
		First(&client).Error; err != nil {
		_ = c.Error(notFound(err, msgClientNotFound))
		return
	}

	if req.Nome != nil {
		name := strings.TrimSpace(*req.Nome)
		if name == "" {
			_ = c.Error(httperr.MissingField("Insert nome."))
			return
		}
		client.Name = name
	}
	if req.Telefone != nil {
		client.Phone = strings.TrimSpace(*req.Telefone)
	}
	if req.Birthdate != nil {
		b, err := parseBirthdate(*req.Birthdate)
		if err != nil {
			_ = c.Error(err)
			return
		}
		client.Birthdate = b
	}
	if req.Email != nil {
		email, err := h.email.Normalize(*req.Email)
		if err != nil {
			_ = c.Error(err)
			return
		}
		client.Email = email
	}

	if err := h.db.Save(&client).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req idRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.db.
		Where("id = ? AND barbershop_id = ?", req.ID, barbershopID).
		Delete(&models.Client{})
	if res.Error != nil {
		_ = c.Error(res.Error)
		return
	}
	if res.RowsAffected == 0 {
		_ = c.Error(httperr.NotFound(msgClientNotFound))
		return
	}

	httpresp.Message(c, "Client deleted.")
}

// List returns the caller's clients. ?query= filters by name, phone or email.
func (h *ClientHandler) List(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	q := h.db.Where("barbershop_id = ?", barbershopID)

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	clients := make([]models.Client, 0)
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&clients).Error; err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// REPORTS
// ======================================================

func (h *ClientHandler) RegisteredInPeriod(c *gin.Context) {
	var req periodRequest
	if !bindJSON(c, &req) {
		return
	}

	period, err := domainReport.NewPeriod(req.DataInicial, req.DataFinal, h.reports.Location())
	if err != nil {
		_ = c.Error(err)
		return
	}

	clients, err := h.reports.ClientsRegistered(c.Request.Context(), middleware.PrincipalID(c), period)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, clients)
}

// BirthdatesForMonth matches the month of the given date. No date means
// the current month.
func (h *ClientHandler) BirthdatesForMonth(c *gin.Context) {
	var req BirthdatesForMonthRequest
	if !bindJSON(c, &req) {
		return
	}

	ref, err := parseInstant(req.Date, time.UTC, "date")
	if err != nil {
		_ = c.Error(err)
		return
	}

	clients, err := h.reports.BirthdaysThisMonth(c.Request.Context(), middleware.PrincipalID(c), ref)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) BirthdayToday(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	clients, err := h.reports.BirthdayToday(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) PerBarber(c *gin.Context) {
	barbershopID, err := middleware.ScopedBarbershopID(c, "barbershopId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.reports.ClientsPerBarber(c.Request.Context(), barbershopID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}
