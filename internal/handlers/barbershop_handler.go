package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type BarbershopHandler struct {
	db         *gorm.DB
	bcryptCost int
}

func NewBarbershopHandler(db *gorm.DB, bcryptCost int) *BarbershopHandler {
	return &BarbershopHandler{db: db, bcryptCost: bcryptCost}
}

type CreateBarbershopRequest struct {
	Name     string `json:"name" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Status   *bool  `json:"status"`
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if !bindJSON(c, &req) {
		return
	}

	login := strings.TrimSpace(req.Login)

	var count int64
	if err := h.db.Model(&models.Barbershop{}).Where("login = ?", login).Count(&count).Error; err != nil {
		_ = c.Error(err)
		return
	}
	if count > 0 {
		_ = c.Error(httperr.AlreadyExists("Barbershop already exists."))
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		_ = c.Error(httperr.Internal(err))
		return
	}

	shop := models.Barbershop{
		Name:         strings.TrimSpace(req.Name),
		Login:        login,
		PasswordHash: hash,
		Status:       true,
	}
	if req.Status != nil {
		shop.Status = *req.Status
	}

	if err := h.db.Create(&shop).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// Find returns the caller's barbershop with its barbers, products and
// clients.
func (h *BarbershopHandler) Find(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var shop models.Barbershop
	if err := h.db.
		Preload("Barbers").
		Preload("Products").
		Preload("Clients").
		First(&shop, barbershopID).Error; err != nil {
		_ = c.Error(notFound(err, msgBarbershopNotFound))
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Delete removes the caller's barbershop and everything it owns.
func (h *BarbershopHandler) Delete(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Appointment{},
			&models.Transaction{},
			&models.Product{},
			&models.Client{},
			&models.Barber{},
			&models.AuditLog{},
		} {
			if err := tx.Where("barbershop_id = ?", barbershopID).Delete(model).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Barbershop{}, barbershopID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.NotFound(msgBarbershopNotFound)
		}
		return nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barbershop deleted."})
}
