package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type Repository interface {
	// -------- Owners --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	GetClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	// -------- Appointment (conflict) --------

	// HasSlotConflict reports whether barberID already holds an appointment
	// at exactly `at` in the barbershop. excludeID skips one appointment,
	// used when rescheduling.
	HasSlotConflict(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		at time.Time,
		excludeID uint,
	) (bool, error)

	// -------- Appointment (CRUD) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) error

	// ListAppointments returns the shop's appointments with barber and
	// client preloaded, ordered by time. A zero start or end is unbounded.
	ListAppointments(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
