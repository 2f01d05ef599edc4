package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-manager/internal/dto"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// ListFilter narrows the listing to one day or one month in the reference
// zone. Both empty lists everything.
type ListFilter struct {
	Date  *time.Time
	Year  int
	Month int
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	barbershopID uint,
	filter ListFilter,
) ([]dto.AppointmentListDTO, error) {

	var start, end time.Time
	switch {
	case filter.Date != nil:
		start, end = timezone.DayBounds(*filter.Date, uc.loc)
	case filter.Year > 0 && filter.Month >= 1 && filter.Month <= 12:
		start = time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, uc.loc)
		end = start.AddDate(0, 1, 0)
	}

	appointments, err := uc.repo.ListAppointments(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt.In(uc.loc),
			BarberID:    ap.BarberID,
			ClientID:    ap.ClientID,
		}
		if ap.Barber != nil {
			item.BarberName = ap.Barber.Name
		}
		if ap.Client != nil {
			item.ClientName = ap.Client.Name
		}
		out = append(out, item)
	}

	return out, nil
}
