package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

// findScoped loads one row of T by id inside a barbershop. A missing row
// becomes NotFound with message.
func findScoped[T any](
	ctx context.Context,
	db *gorm.DB,
	barbershopID uint,
	id uint,
	message string,
) (*T, error) {

	var out T
	err := db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFound(message)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// deleteScoped removes one row of T inside a barbershop. NotFound when no
// row matched.
func deleteScoped[T any](
	ctx context.Context,
	db *gorm.DB,
	barbershopID uint,
	id uint,
	message string,
) error {

	var model T
	res := db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound(message)
	}
	return nil
}

const (
	msgBarbershopNotFound  = "Barbershop not found."
	msgBarberNotFound      = "Barber not found."
	msgClientNotFound      = "Client not found."
	msgCashboxNotFound     = "Cashbox not found."
	msgAppointmentNotFound = "Scheduler not found."
)
