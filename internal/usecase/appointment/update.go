package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: recorder,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	id uint,
	changes domain.Changes,
) (*models.Appointment, error) {

	if id == 0 {
		return nil, httperr.MissingField("Insert id.")
	}

	ap, err := uc.repo.GetAppointment(ctx, barbershopID, id)
	if err != nil {
		return nil, err
	}

	if changes.BarberID != nil {
		if _, err := uc.repo.GetBarber(ctx, barbershopID, *changes.BarberID); err != nil {
			return nil, err
		}
	}
	if changes.ClientID != nil {
		if _, err := uc.repo.GetClient(ctx, barbershopID, *changes.ClientID); err != nil {
			return nil, err
		}
	}

	moved, err := domain.Reschedule(ap, changes)
	if err != nil {
		return nil, err
	}

	if moved {
		if err := assertSlotFree(ctx, uc.repo, barbershopID, ap.BarberID, ap.ScheduledAt, ap.ID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, errSlotTaken()
		}
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: barbershopID,
		Action:       audit.ActionSchedulerUpdated,
		Entity:       "scheduler",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
