package cashbox

import (
	"context"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/cashbox"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

type DeleteEntry struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteEntry(repo domain.Repository, recorder audit.Recorder) *DeleteEntry {
	return &DeleteEntry{repo: repo, audit: recorder}
}

func (uc *DeleteEntry) Execute(ctx context.Context, barbershopID uint, id uint) error {
	if id == 0 {
		return httperr.MissingField("Insert id.")
	}

	if err := uc.repo.DeleteEntry(ctx, barbershopID, id); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		BarbershopID: barbershopID,
		Action:       audit.ActionCashboxDeleted,
		Entity:       "cashbox",
		EntityID:     &id,
	})
	return nil
}
