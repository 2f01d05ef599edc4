package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, barbershopID uint, id uint) error {
	if id == 0 {
		return httperr.MissingField("Insert id.")
	}

	if err := uc.repo.DeleteAppointment(ctx, barbershopID, id); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: barbershopID,
		Action:       audit.ActionSchedulerDeleted,
		Entity:       "scheduler",
		EntityID:     &id,
	})
	return nil
}
