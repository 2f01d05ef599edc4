package identity

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
)

// Principal is the credential view of a barbershop or a barber.
type Principal struct {
	ID           uint
	Type         auth.PrincipalType
	Name         string
	PasswordHash string
}

// Repository is the credential store. Lookups never cross principal types:
// a barber login is only searched among barbers.
type Repository interface {
	FindByLogin(
		ctx context.Context,
		pt auth.PrincipalType,
		login string,
	) (*Principal, error)

	FindByID(
		ctx context.Context,
		pt auth.PrincipalType,
		id uint,
	) (*Principal, error)

	UpdatePassword(
		ctx context.Context,
		pt auth.PrincipalType,
		id uint,
		passwordHash string,
	) error
}
