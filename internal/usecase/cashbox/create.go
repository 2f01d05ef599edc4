package cashbox

import (
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/cashbox"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateEntryInput struct {
	BarbershopID  uint
	BarberID      uint
	ClientID      uint
	Amount        *float64
	PaymentMethod string
	Products      datatypes.JSON

	// OccurredAt is the business date. Zero means now.
	OccurredAt time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateEntry struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewCreateEntry(repo domain.Repository, recorder audit.Recorder) *CreateEntry {
	return &CreateEntry{repo: repo, audit: recorder, now: time.Now}
}

func (uc *CreateEntry) Execute(ctx context.Context, in CreateEntryInput) (*models.Transaction, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	switch {
	case in.Amount == nil:
		return nil, httperr.MissingField("Insert valor.")
	case *in.Amount < 0:
		return nil, httperr.MissingField("Insert a valid valor.")
	case strings.TrimSpace(in.PaymentMethod) == "":
		return nil, httperr.MissingField("Insert forma_pagamento.")
	case in.BarberID == 0:
		return nil, httperr.MissingField("Insert barbeiroId.")
	case in.ClientID == 0:
		return nil, httperr.MissingField("Insert clienteId.")
	}

	// --------------------------------------------------
	// Owners must belong to the barbershop
	// --------------------------------------------------
	if _, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, err
	}

	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = uc.now()
	}

	tx := &models.Transaction{
		BarbershopID:  in.BarbershopID,
		BarberID:      in.BarberID,
		ClientID:      in.ClientID,
		Amount:        *in.Amount,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Products:      in.Products,
		OccurredAt:    occurredAt.UTC(),
	}

	if err := uc.repo.CreateEntry(ctx, tx); err != nil {
		return nil, err
	}

	visit := tx.OccurredAt
	client.LastVisitAt = &visit
	tx.Client = client

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       audit.ActionCashboxCreated,
		Entity:       "cashbox",
		EntityID:     &tx.ID,
		Metadata: map[string]any{
			"valor":           tx.Amount,
			"forma_pagamento": tx.PaymentMethod,
			"barbeiroId":      tx.BarberID,
		},
	})

	return tx, nil
}
