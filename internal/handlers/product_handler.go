package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// A nil Estoque means the product is a service with unlimited stock.
type CreateProductRequest struct {
	Nome    string   `json:"nome" binding:"required"`
	Valor   *float64 `json:"valor" binding:"required"`
	Estoque *int     `json:"estoque"`
	Servico bool     `json:"servico"`
}

type UpdateProductRequest struct {
	ID      uint     `json:"id" binding:"required"`
	Nome    *string  `json:"nome"`
	Valor   *float64 `json:"valor"`
	Estoque *int     `json:"estoque"`
	Servico *bool    `json:"servico"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Nome)
	if name == "" {
		_ = c.Error(httperr.MissingField("Insert nome."))
		return
	}
	if *req.Valor < 0 {
		_ = c.Error(httperr.MissingField("Insert a valid valor."))
		return
	}

	product := models.Product{
		BarbershopID: barbershopID,
		Name:         name,
		Price:        *req.Valor,
		Stock:        req.Estoque,
		Service:      req.Servico || req.Estoque == nil,
	}

	if err := h.db.Create(&product).Error; err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.Created(c, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	products := make([]models.Product, 0)
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Update(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", req.ID, barbershopID).
		First(&product).Error; err != nil {
		_ = c.Error(notFound(err, msgProductNotFound))
		return
	}

	if req.Nome != nil {
		name := strings.TrimSpace(*req.Nome)
		if name == "" {
			_ = c.Error(httperr.MissingField("Insert nome."))
			return
		}
		product.Name = name
	}
	if req.Valor != nil {
		if *req.Valor < 0 {
			_ = c.Error(httperr.MissingField("Insert a valid valor."))
			return
		}
		product.Price = *req.Valor
	}
	if req.Estoque != nil {
		product.Stock = req.Estoque
	}
	if req.Servico != nil {
		product.Service = *req.Servico
		if product.Service {
			product.Stock = nil
		}
	}

	if err := h.db.
		Select("name", "price", "stock", "service").
		Save(&product).Error; err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	barbershopID := middleware.PrincipalID(c)

	var req idRequest
	if !bindJSON(c, &req) {
		return
	}

	res := h.db.
		Where("id = ? AND barbershop_id = ?", req.ID, barbershopID).
		Delete(&models.Product{})
	if res.Error != nil {
		_ = c.Error(res.Error)
		return
	}
	if res.RowsAffected == 0 {
		_ = c.Error(httperr.NotFound(msgProductNotFound))
		return
	}

	httpresp.Message(c, "Product deleted.")
}
