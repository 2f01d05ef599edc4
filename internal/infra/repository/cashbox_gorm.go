package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/cashbox"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type CashboxGormRepository struct {
	db *gorm.DB
}

func NewCashboxGormRepository(db *gorm.DB) *CashboxGormRepository {
	return &CashboxGormRepository{db: db}
}

// --------------------------------------------------
// Owners
// --------------------------------------------------

func (r *CashboxGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.Barber, error) {
	return findScoped[models.Barber](ctx, r.db, barbershopID, barberID, msgBarberNotFound)
}

func (r *CashboxGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {
	return findScoped[models.Client](ctx, r.db, barbershopID, clientID, msgClientNotFound)
}

// --------------------------------------------------
// Entries
// --------------------------------------------------

func (r *CashboxGormRepository) CreateEntry(
	ctx context.Context,
	tx *models.Transaction,
) error {

	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Create(tx).Error; err != nil {
			return err
		}

		return db.Model(&models.Client{}).
			Where("id = ? AND barbershop_id = ?", tx.ClientID, tx.BarbershopID).
			Update("last_visit_at", tx.OccurredAt.UTC()).Error
	})
}

func (r *CashboxGormRepository) GetEntry(
	ctx context.Context,
	barbershopID uint,
	id uint,
) (*models.Transaction, error) {
	return findScoped[models.Transaction](ctx, r.db, barbershopID, id, msgCashboxNotFound)
}

func (r *CashboxGormRepository) UpdateEntry(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).
		Model(tx).
		Select("amount", "payment_method", "products").
		Updates(tx).Error
}

func (r *CashboxGormRepository) DeleteEntry(
	ctx context.Context,
	barbershopID uint,
	id uint,
) error {
	return deleteScoped[models.Transaction](ctx, r.db, barbershopID, id, msgCashboxNotFound)
}

func (r *CashboxGormRepository) ListEntries(
	ctx context.Context,
	barbershopID uint,
) ([]models.Transaction, error) {

	txs := make([]models.Transaction, 0)
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barbershop_id = ?", barbershopID).
		Order("occurred_at DESC, id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Compile-time check
var _ domain.Repository = (*CashboxGormRepository)(nil)
