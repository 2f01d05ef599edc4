package cashbox

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/cashbox"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

type UpdateEntry struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateEntry(repo domain.Repository, recorder audit.Recorder) *UpdateEntry {
	return &UpdateEntry{repo: repo, audit: recorder}
}

func (uc *UpdateEntry) Execute(
	ctx context.Context,
	barbershopID uint,
	id uint,
	patch domain.Patch,
) (*models.Transaction, error) {

	if id == 0 {
		return nil, httperr.MissingField("Insert cashboxID.")
	}
	if patch.Empty() {
		return nil, httperr.MissingField("Insert at least one field to update.")
	}

	tx, err := uc.repo.GetEntry(ctx, barbershopID, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Apply(tx, patch); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEntry(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: barbershopID,
		Action:       audit.ActionCashboxUpdated,
		Entity:       "cashbox",
		EntityID:     &tx.ID,
	})

	return tx, nil
}
