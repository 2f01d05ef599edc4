package report

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// BirthdaysInMonth keeps clients whose birth month (UTC) equals ref's month.
func BirthdaysInMonth(clients []models.Client, ref time.Time) []models.Client {
	out := make([]models.Client, 0)
	for _, c := range clients {
		if c.Birthdate == nil {
			continue
		}
		if c.Birthdate.UTC().Month() == ref.Month() {
			out = append(out, c)
		}
	}
	return out
}

// BirthdaysOn keeps clients whose birth month and day match day. Year is ignored.
func BirthdaysOn(clients []models.Client, day time.Time) []models.Client {
	out := make([]models.Client, 0)
	for _, c := range clients {
		if c.Birthdate == nil {
			continue
		}
		b := c.Birthdate.UTC()
		if b.Month() == day.Month() && b.Day() == day.Day() {
			out = append(out, c)
		}
	}
	return out
}
