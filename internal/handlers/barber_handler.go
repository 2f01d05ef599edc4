package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	domainReport "github.com/BruksfildServices01/barber-manager/internal/domain/report"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	ucReport "github.com/BruksfildServices01/barber-manager/internal/usecase/report"
	"github.com/BruksfildServices01/barber-manager/internal/validators"
)

type BarberHandler struct {
	db         *gorm.DB
	reports    *ucReport.Reports
	email      validators.EmailPolicy
	bcryptCost int
}

func NewBarberHandler(
	db *gorm.DB,
	reports *ucReport.Reports,
	email validators.EmailPolicy,
	bcryptCost int,
) *BarberHandler {
	return &BarberHandler{
		db:         db,
		reports:    reports,
		email:      email,
		bcryptCost: bcryptCost,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Birthdate string `json:"birthdate"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UpdateBarberRequest struct {
	ID        uint    `json:"id"`
	Nome      *string `json:"nome"`
	Birthdate *string `json:"birthdate"`
	Telefone  *string `json:"telefone"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// firstName is the first whitespace separated token of name.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// --------- Barbershop side ---------

// Create adds a barber to the caller's barbershop. The login is the first
// name followed by the id, so it is written after the insert.
func (h *BarberHandler) Create(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Nome)
	first := firstName(name)
	if first == "" {
		_ = c.Error(httperr.MissingField("Insert nome."))
		return
	}

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
	if err := h.db.Model(&models.Barber{}).
		Where("barbershop_id = ? AND name = ?", barbershopID, name).
		Count(&count).Error; err != nil {
		_ = c.Error(err)
		return
	}
	if count > 0 {
		_ = c.Error(httperr.AlreadyExists("There is already a barber with that name, check or enter a different one."))
		return
	}

	password := req.Password
	if password == "" {
		password = first
	}
	hash, err := auth.HashPassword(password, h.bcryptCost)
	if err != nil {
		_ = c.Error(httperr.Internal(err))
		return
	}

	barber := models.Barber{
		BarbershopID: barbershopID,
		Name:         name,
		Login:        "tmp-" + uuid.NewString(),
		PasswordHash: hash,
		Birthdate:    birthdate,
		Phone:        strings.TrimSpace(req.Telefone),
		Email:        email,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}
		barber.Login = BarberLogin(first, barber.ID)
		return tx.Model(&barber).Update("login", barber.Login).Error
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// BarberLogin derives the login of a barber: first name plus id.
func BarberLogin(first string, id uint) string {
	return first + strconv.FormatUint(uint64(id), 10)
}

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	barbers := make([]models.Barber, 0)
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req UpdateBarberRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID == 0 {
		_ = c.Error(httperr.MissingField("Insert id."))
		return
	}

	h.update(c, barbershopID, req.ID, req)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req idRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.db.
		Where("id = ? AND barbershop_id = ?", req.ID, barbershopID).
		Delete(&models.Barber{})
	if res.Error != nil {
		_ = c.Error(res.Error)
		return
	}
	if res.RowsAffected == 0 {
		_ = c.Error(httperr.NotFound(msgBarberNotFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted."})
}

// --------- Barber side ---------

func (h *BarberHandler) Me(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, middleware.PrincipalID(c)).Error; err != nil {
		_ = c.Error(notFound(err, msgBarberNotFound))
		return
	}
	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) UpdateMe(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, middleware.PrincipalID(c)).Error; err != nil {
		_ = c.Error(notFound(err, msgBarberNotFound))
		return
	}

	var req UpdateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	h.update(c, barber.BarbershopID, barber.ID, req)
}

// MyCashboxPeriod is the period report narrowed to the calling barber.
func (h *BarberHandler) MyCashboxPeriod(c *gin.Context) {
	var barber models.Barber
	if err := h.db.First(&barber, middleware.PrincipalID(c)).Error; err != nil {
		_ = c.Error(notFound(err, msgBarberNotFound))
		return
	}

	var req periodRequest
	if !bindJSON(c, &req) {
		return
	}

	period, err := domainReport.NewPeriod(req.DataInicial, req.DataFinal, h.reports.Location())
	if err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.reports.PeriodTotals(c.Request.Context(), barber.BarbershopID, period, &barber.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// --------- shared ---------

func (h *BarberHandler) update(c *gin.Context, barbershopID, id uint, req UpdateBarberRequest) {
	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {
		_ = c.Error(notFound(err, msgBarberNotFound))
		return
	}

	if req.Nome != nil {
		name := strings.TrimSpace(*req.Nome)
		if name == "" {
			_ = c.Error(httperr.MissingField("Insert nome."))
			return
		}
		barber.Name = name
	}
	if req.Birthdate != nil {
		b, err := parseBirthdate(*req.Birthdate)
		if err != nil {
			_ = c.Error(err)
			return
		}
		barber.Birthdate = b
	}
	if req.Telefone != nil {
		barber.Phone = strings.TrimSpace(*req.Telefone)
	}
	if req.Email != nil {
		email, err := h.email.Normalize(*req.Email)
		if err != nil {
			_ = c.Error(err)
			return
		}
		barber.Email = email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password, h.bcryptCost)
		if err != nil {
			_ = c.Error(httperr.Internal(err))
			return
		}
		barber.PasswordHash = hash
	}

	if err := h.db.Save(&barber).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, barber)
}
