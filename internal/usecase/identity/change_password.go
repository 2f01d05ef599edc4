package identity

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/auth"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/identity"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

type ChangePasswordInput struct {
	Login       string
	Password    string
	NewPassword string
}

// ChangePassword replaces a barbershop password after checking the
// current one.
type ChangePassword struct {
	repo  domain.Repository
	audit audit.Recorder
	cost  int
}

func NewChangePassword(
	repo domain.Repository,
	recorder audit.Recorder,
	bcryptCost int,
) *ChangePassword {
	return &ChangePassword{
		repo:  repo,
		audit: recorder,
		cost:  bcryptCost,
	}
}

func (uc *ChangePassword) Execute(ctx context.Context, in ChangePasswordInput) error {
	login := strings.TrimSpace(in.Login)
	switch {
	case login == "":
		return httperr.MissingField("Insert your login.")
	case in.Password == "":
		return httperr.MissingField("Insert your password.")
	case in.NewPassword == "":
		return httperr.MissingField("Insert your new password.")
	}

	p, err := uc.repo.FindByLogin(ctx, auth.PrincipalBarbershop, login)
	if httperr.Is(err, httperr.KindNotFound) {
		auth.BurnComparison(in.Password)
		return httperr.CredentialMismatch(msgCredentialMismatch)
	}
	if err != nil {
		return err
	}

	if err := auth.ComparePassword(p.PasswordHash, in.Password); err != nil {
		return httperr.CredentialMismatch(msgCredentialMismatch)
	}

	hash, err := auth.HashPassword(in.NewPassword, uc.cost)
	if err != nil {
		return httperr.Internal(err)
	}

	if err := uc.repo.UpdatePassword(ctx, auth.PrincipalBarbershop, p.ID, hash); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: p.ID,
		Action:       audit.ActionPasswordChanged,
		Entity:       "barbershop",
		EntityID:     &p.ID,
	})

	return nil
}
