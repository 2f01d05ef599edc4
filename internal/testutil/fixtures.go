package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Hash returns a cheap bcrypt hash for fixtures.
func Hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func CreateBarbershop(t *testing.T, db *gorm.DB, login, password string) *models.Barbershop {
	t.Helper()
	shop := &models.Barbershop{
		Name:         "Shop " + login,
		Login:        login,
		PasswordHash: Hash(t, password),
		Status:       true,
	}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func CreateBarber(t *testing.T, db *gorm.DB, shopID uint, name, login, password string) *models.Barber {
	t.Helper()
	barber := &models.Barber{
		BarbershopID: shopID,
		Name:         name,
		Login:        login,
		PasswordHash: Hash(t, password),
	}
	require.NoError(t, db.Create(barber).Error)
	return barber
}

func CreateClient(t *testing.T, db *gorm.DB, shopID uint, name string, birthdate *time.Time) *models.Client {
	t.Helper()
	client := &models.Client{
		BarbershopID: shopID,
		Name:         name,
		Phone:        "555-" + name,
		Birthdate:    birthdate,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

// CreateTransaction inserts an entry. createdAt also becomes the business
// date when occurredAt is zero.
func CreateTransaction(
	t *testing.T,
	db *gorm.DB,
	shopID, barberID, clientID uint,
	amount float64,
	createdAt, occurredAt time.Time,
) *models.Transaction {
	t.Helper()
	if occurredAt.IsZero() {
		occurredAt = createdAt
	}
	tx := &models.Transaction{
		BarbershopID:  shopID,
		BarberID:      barberID,
		ClientID:      clientID,
		Amount:        amount,
		PaymentMethod: "pix",
		OccurredAt:    occurredAt.UTC(),
		CreatedAt:     createdAt.UTC(),
	}
	require.NoError(t, db.Create(tx).Error)
	return tx
}
