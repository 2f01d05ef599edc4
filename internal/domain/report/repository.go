package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Repository is the read side of the transaction log and client registry,
// always scoped to one barbershop.
type Repository interface {
	// -------- Transactions --------
	ListCreatedBetween(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Transaction, error)

	ListInPeriod(
		ctx context.Context,
		barbershopID uint,
		barberID *uint,
		period Period,
	) ([]models.Transaction, error)

	SumAndCount(
		ctx context.Context,
		barbershopID uint,
	) (float64, int64, error)

	// -------- Barbers --------
	GetBarbers(
		ctx context.Context,
		barbershopID uint,
		ids []uint,
	) ([]models.Barber, error)

	// -------- Clients --------
	ListClients(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Client, error)

	ListClientsCreatedInPeriod(
		ctx context.Context,
		barbershopID uint,
		period Period,
	) ([]models.Client, error)
}
