package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Owners
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.Barber, error) {
	return findScoped[models.Barber](ctx, r.db, barbershopID, barberID, msgBarberNotFound)
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {
	return findScoped[models.Client](ctx, r.db, barbershopID, clientID, msgClientNotFound)
}

// --------------------------------------------------
// Appointment (conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) HasSlotConflict(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	at time.Time,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barbershop_id = ? AND barber_id = ? AND scheduled_at = ?",
			barbershopID, barberID, domain.Slot(at),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointment (CRUD)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	barbershopID uint,
	id uint,
) (*models.Appointment, error) {
	return findScoped[models.Appointment](ctx, r.db, barbershopID, id, msgAppointmentNotFound)
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("barber_id", "client_id", "scheduled_at").
		Updates(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	barbershopID uint,
	id uint,
) error {
	return deleteScoped[models.Appointment](ctx, r.db, barbershopID, id, msgAppointmentNotFound)
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client").
		Where("barbershop_id = ?", barbershopID)

	if !start.IsZero() {
		q = q.Where("scheduled_at >= ?", start.UTC())
	}
	if !end.IsZero() {
		q = q.Where("scheduled_at < ?", end.UTC())
	}

	apps := make([]models.Appointment, 0)
	if err := q.
		Order("scheduled_at ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
