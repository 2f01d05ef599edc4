package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/report"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// Reports computes the barbershop metrics. "Today" is the calendar day in
// loc, never the server or client zone.
type Reports struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewReports(repo domain.Repository, loc *time.Location) *Reports {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &Reports{repo: repo, loc: loc, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (r *Reports) WithClock(now func() time.Time) *Reports {
	r.now = now
	return r
}

func (r *Reports) Location() *time.Location {
	return r.loc
}

func (r *Reports) Now() time.Time {
	return r.now().In(r.loc)
}

func (r *Reports) today(ctx context.Context, barbershopID uint) ([]models.Transaction, error) {
	start, end := timezone.DayBounds(r.now(), r.loc)
	return r.repo.ListCreatedBetween(ctx, barbershopID, start, end)
}

func requireScope(barbershopID uint) error {
	if barbershopID == 0 {
		return httperr.InvalidToken()
	}
	return nil
}

// ======================================================
// TOTALS
// ======================================================

// TotalForToday sums the entries created today.
func (r *Reports) TotalForToday(ctx context.Context, barbershopID uint) (float64, error) {
	if err := requireScope(barbershopID); err != nil {
		return 0, err
	}
	txs, err := r.today(ctx, barbershopID)
	if err != nil {
		return 0, err
	}
	return domain.Round2(domain.SumAmounts(txs)), nil
}

// SalesCount counts the entries created today.
func (r *Reports) SalesCount(ctx context.Context, barbershopID uint) (int, error) {
	if err := requireScope(barbershopID); err != nil {
		return 0, err
	}
	txs, err := r.today(ctx, barbershopID)
	if err != nil {
		return 0, err
	}
	return len(txs), nil
}

// AverageTicket is over every entry of the barbershop. No entries yields a
// zero summary.
func (r *Reports) AverageTicket(ctx context.Context, barbershopID uint) (domain.Summary, error) {
	if err := requireScope(barbershopID); err != nil {
		return domain.Summary{}, err
	}
	sum, count, err := r.repo.SumAndCount(ctx, barbershopID)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(sum, count), nil
}

type PeriodTotals struct {
	Items []models.Transaction `json:"items"`
	domain.Summary
}

// PeriodTotals filters on the business date. barberID narrows to one barber.
func (r *Reports) PeriodTotals(
	ctx context.Context,
	barbershopID uint,
	period domain.Period,
	barberID *uint,
) (*PeriodTotals, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}

	txs, err := r.repo.ListInPeriod(ctx, barbershopID, barberID, period)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = make([]models.Transaction, 0)
	}

	return &PeriodTotals{
		Items:   txs,
		Summary: domain.Summarize(domain.SumAmounts(txs), int64(len(txs))),
	}, nil
}

// ======================================================
// BARBERS
// ======================================================

type TopBarber struct {
	Barber *models.Barber `json:"barber"`
	Count  int            `json:"count"`
}

// liveTally tallies today's entries per barber in first-seen order, keeping
// only barbers that still belong to the shop.
func (r *Reports) liveTally(ctx context.Context, barbershopID uint) ([]domain.BarberCount, map[uint]models.Barber, error) {
	txs, err := r.today(ctx, barbershopID)
	if err != nil {
		return nil, nil, err
	}

	counts := domain.Tally(txs)
	ids := make([]uint, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.BarberID)
	}

	barbers, err := r.repo.GetBarbers(ctx, barbershopID, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[uint]models.Barber, len(barbers))
	for _, b := range barbers {
		byID[b.ID] = b
	}

	live := make([]domain.BarberCount, 0, len(counts))
	for _, c := range counts {
		if _, ok := byID[c.BarberID]; ok {
			live = append(live, c)
		}
	}
	return live, byID, nil
}

// TopBarber returns the barber with the most entries created today among
// the shop's current barbers. Nil Barber when there were none.
func (r *Reports) TopBarber(ctx context.Context, barbershopID uint) (*TopBarber, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}
	counts, barbers, err := r.liveTally(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	top, ok := domain.Top(counts)
	if !ok {
		return &TopBarber{}, nil
	}

	barber := barbers[top.BarberID]
	return &TopBarber{Barber: &barber, Count: top.Count}, nil
}

type BarberClients struct {
	BarberID     uint   `json:"barberId"`
	BarberName   string `json:"barberName"`
	ClientsCount int    `json:"clientsCount"`
}

type ClientsPerBarber struct {
	Rows  []BarberClients `json:"rows"`
	Chart [][]any         `json:"chart"`
}

var chartHeader = []any{"Barbeiros", "Clientes atendidos"}

// ClientsPerBarber tallies today's entries per barber, in first-seen order,
// plus a chart table led by a header row. Barbers no longer in the shop are
// left out.
func (r *Reports) ClientsPerBarber(ctx context.Context, barbershopID uint) (*ClientsPerBarber, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}
	counts, barbers, err := r.liveTally(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	out := &ClientsPerBarber{
		Rows:  make([]BarberClients, 0, len(counts)),
		Chart: [][]any{chartHeader},
	}
	for _, c := range counts {
		name := barbers[c.BarberID].Name
		if name == "" {
			continue
		}
		out.Rows = append(out.Rows, BarberClients{
			BarberID:     c.BarberID,
			BarberName:   name,
			ClientsCount: c.Count,
		})
		out.Chart = append(out.Chart, []any{name, c.Count})
	}
	return out, nil
}

// ======================================================
// CLIENTS
// ======================================================

// BirthdaysThisMonth matches the month of ref. A zero ref means today.
func (r *Reports) BirthdaysThisMonth(ctx context.Context, barbershopID uint, ref time.Time) ([]models.Client, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = r.Now()
	}
	clients, err := r.repo.ListClients(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	return domain.BirthdaysInMonth(clients, ref), nil
}

// BirthdayToday matches month and day of today in the report zone.
func (r *Reports) BirthdayToday(ctx context.Context, barbershopID uint) ([]models.Client, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}
	clients, err := r.repo.ListClients(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	return domain.BirthdaysOn(clients, r.Now()), nil
}

func (r *Reports) ClientsRegistered(ctx context.Context, barbershopID uint, period domain.Period) ([]models.Client, error) {
	if err := requireScope(barbershopID); err != nil {
		return nil, err
	}
	clients, err := r.repo.ListClientsCreatedInPeriod(ctx, barbershopID, period)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = make([]models.Client, 0)
	}
	return clients, nil
}
