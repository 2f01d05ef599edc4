package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint
	ClientID     uint
	At           time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: recorder,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	switch {
	case in.At.IsZero():
		return nil, httperr.MissingField("Insert data.")
	case in.BarberID == 0:
		return nil, httperr.MissingField("Insert barbeiroId.")
	case in.ClientID == 0:
		return nil, httperr.MissingField("Insert clienteId.")
	}

	// --------------------------------------------------
	// Barber and client of this barbershop
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, err
	}
	client, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Slot conflict
	// --------------------------------------------------
	at := domain.Slot(in.At)
	if err := assertSlotFree(ctx, uc.repo, in.BarbershopID, in.BarberID, at, 0); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     in.ClientID,
		ScheduledAt:  at,
	}

	// the unique index still catches a concurrent booking
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, errSlotTaken()
		}
		return nil, err
	}

	ap.Barber = barber
	ap.Client = client

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       audit.ActionSchedulerCreated,
		Entity:       "scheduler",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

func errSlotTaken() error {
	return httperr.AlreadyExists("Barber already has a scheduler at this time.")
}

func assertSlotFree(
	ctx context.Context,
	repo domain.Repository,
	barbershopID uint,
	barberID uint,
	at time.Time,
	excludeID uint,
) error {
	taken, err := repo.HasSlotConflict(ctx, barbershopID, barberID, at, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errSlotTaken()
	}
	return nil
}
