package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/identity"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// principalModel maps each principal type to its own table.
func principalModel(pt auth.PrincipalType) (any, error) {
	switch pt {
	case auth.PrincipalBarbershop:
		return &models.Barbershop{}, nil
	case auth.PrincipalBarber:
		return &models.Barber{}, nil
	default:
		return nil, fmt.Errorf("unknown principal type %d", pt)
	}
}

func notFoundMessage(pt auth.PrincipalType) string {
	if pt == auth.PrincipalBarber {
		return msgBarberNotFound
	}
	return msgBarbershopNotFound
}

func (r *IdentityGormRepository) find(
	ctx context.Context,
	pt auth.PrincipalType,
	query string,
	arg any,
) (*domain.Principal, error) {

	var err error
	p := &domain.Principal{Type: pt}

	switch pt {
	case auth.PrincipalBarbershop:
		var shop models.Barbershop
		err = r.db.WithContext(ctx).Where(query, arg).First(&shop).Error
		p.ID, p.Name, p.PasswordHash = shop.ID, shop.Name, shop.PasswordHash
	case auth.PrincipalBarber:
		var barber models.Barber
		err = r.db.WithContext(ctx).Where(query, arg).First(&barber).Error
		p.ID, p.Name, p.PasswordHash = barber.ID, barber.Name, barber.PasswordHash
	default:
		return nil, fmt.Errorf("unknown principal type %d", pt)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.NotFound(notFoundMessage(pt))
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *IdentityGormRepository) FindByLogin(
	ctx context.Context,
	pt auth.PrincipalType,
	login string,
) (*domain.Principal, error) {
	return r.find(ctx, pt, "login = ?", login)
}

func (r *IdentityGormRepository) FindByID(
	ctx context.Context,
	pt auth.PrincipalType,
	id uint,
) (*domain.Principal, error) {
	return r.find(ctx, pt, "id = ?", id)
}

func (r *IdentityGormRepository) UpdatePassword(
	ctx context.Context,
	pt auth.PrincipalType,
	id uint,
	passwordHash string,
) error {

	model, err := principalModel(pt)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound(notFoundMessage(pt))
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*IdentityGormRepository)(nil)
