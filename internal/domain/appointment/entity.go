package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// ===============================
// Slot
// ===============================

// Slot normalizes an appointment instant so that equal wall times compare
// equal in the store: UTC, whole seconds.
func Slot(at time.Time) time.Time {
	return at.UTC().Truncate(time.Second)
}

// ===============================
// Domain Actions
// ===============================

// Changes lists the fields a reschedule may touch. Nil means unchanged.
type Changes struct {
	At       *time.Time
	BarberID *uint
	ClientID *uint
}

func (c Changes) Empty() bool {
	return c.At == nil && c.BarberID == nil && c.ClientID == nil
}

// Reschedule applies c onto ap and reports whether the slot (barber or
// time) moved, which requires a new conflict check.
func Reschedule(ap *models.Appointment, c Changes) (slotMoved bool, err error) {
	if c.Empty() {
		return false, httperr.MissingField("Insert at least one field to update.")
	}

	if c.At != nil {
		at := Slot(*c.At)
		if !at.Equal(ap.ScheduledAt) {
			ap.ScheduledAt = at
			slotMoved = true
		}
	}
	if c.BarberID != nil && *c.BarberID != ap.BarberID {
		ap.BarberID = *c.BarberID
		ap.Barber = nil
		slotMoved = true
	}
	if c.ClientID != nil && *c.ClientID != ap.ClientID {
		ap.ClientID = *c.ClientID
		ap.Client = nil
	}
	return slotMoved, nil
}
