package report

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// Period is an inclusive range of instants, stored in UTC.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod parses the start and end of a report range. A date-only end
// covers its whole day in loc.
func NewPeriod(start, end string, loc *time.Location) (Period, error) {
	if start == "" {
		return Period{}, httperr.MissingField("Insert a dataInicial of the period.")
	}
	if end == "" {
		return Period{}, httperr.MissingField("Insert a dataFinal of the period.")
	}

	from, _, err := timezone.ParseDate(start, loc)
	if err != nil {
		return Period{}, httperr.InvalidDateRange("Invalid dataInicial.")
	}
	to, dateOnly, err := timezone.ParseDate(end, loc)
	if err != nil {
		return Period{}, httperr.InvalidDateRange("Invalid dataFinal.")
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1).Add(-time.Microsecond)
	}

	if from.After(to) {
		return Period{}, httperr.InvalidDateRange("dataInicial must not be after dataFinal.")
	}

	return Period{From: from.UTC(), To: to.UTC()}, nil
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}
