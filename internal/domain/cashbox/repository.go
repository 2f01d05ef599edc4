package cashbox

import (
	"context"

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

	// -------- Entries --------

	// CreateEntry inserts tx and stamps the client's last visit with
	// tx.OccurredAt in the same store transaction.
	CreateEntry(
		ctx context.Context,
		tx *models.Transaction,
	) error

	GetEntry(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) (*models.Transaction, error)

	UpdateEntry(
		ctx context.Context,
		tx *models.Transaction,
	) error

	DeleteEntry(
		ctx context.Context,
		barbershopID uint,
		id uint,
	) error

	ListEntries(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Transaction, error)
}
