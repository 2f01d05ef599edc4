package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/report"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

// ListCreatedBetween returns entries created in [start, end), oldest first.
func (r *ReportGormRepository) ListCreatedBetween(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Transaction, error) {

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND created_at >= ? AND created_at < ?",
			barbershopID, start.UTC(), end.UTC(),
		).
		Order("created_at ASC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListInPeriod filters on the business date, both ends inclusive.
func (r *ReportGormRepository) ListInPeriod(
	ctx context.Context,
	barbershopID uint,
	barberID *uint,
	period domain.Period,
) ([]models.Transaction, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"barbershop_id = ? AND occurred_at >= ? AND occurred_at <= ?",
			barbershopID, period.From.UTC(), period.To.UTC(),
		)

	if barberID != nil {
		q = q.Where("barber_id = ?", *barberID)
	}

	var txs []models.Transaction
	if err := q.
		Order("occurred_at ASC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *ReportGormRepository) SumAndCount(
	ctx context.Context,
	barbershopID uint,
) (float64, int64, error) {

	var row struct {
		Total float64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("barbershop_id = ?", barbershopID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *ReportGormRepository) GetBarbers(
	ctx context.Context,
	barbershopID uint,
	ids []uint,
) ([]models.Barber, error) {

	barbers := make([]models.Barber, 0)
	if len(ids) == 0 {
		return barbers, nil
	}
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND id IN ?", barbershopID, ids).
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *ReportGormRepository) ListClients(
	ctx context.Context,
	barbershopID uint,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ReportGormRepository) ListClientsCreatedInPeriod(
	ctx context.Context,
	barbershopID uint,
	period domain.Period,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND created_at >= ? AND created_at <= ?",
			barbershopID, period.From.UTC(), period.To.UTC(),
		).
		Order("created_at ASC, id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
