package cashbox

import (
	"strings"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Patch holds the mutable fields of an entry. Nil fields are left alone.
type Patch struct {
	Amount        *float64
	PaymentMethod *string
	Products      datatypes.JSON
}

func (p Patch) Empty() bool {
	return p.Amount == nil && p.PaymentMethod == nil && len(p.Products) == 0
}

// Apply validates p and writes it onto tx.
func Apply(tx *models.Transaction, p Patch) error {
	if p.Empty() {
		return httperr.MissingField("Insert at least one field to update.")
	}

	if p.Amount != nil {
		if *p.Amount < 0 {
			return httperr.MissingField("Insert a valid valor.")
		}
		tx.Amount = *p.Amount
	}
	if p.PaymentMethod != nil {
		method := strings.TrimSpace(*p.PaymentMethod)
		if method == "" {
			return httperr.MissingField("Insert forma_pagamento.")
		}
		tx.PaymentMethod = method
	}
	if len(p.Products) > 0 {
		tx.Products = p.Products
	}
	return nil
}
