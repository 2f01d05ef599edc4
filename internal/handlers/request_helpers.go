package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// --------------------------------------------------
// Request helpers
// --------------------------------------------------

// bindJSON decodes the body and records a MissingField error on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(httperr.FromBinding(err))
		return false
	}
	return true
}

// notFound turns gorm.ErrRecordNotFound into a NotFound with message.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFound(message)
	}
	return err
}

// parseInstant reads an optional date or timestamp in the reference zone.
func parseInstant(value string, loc *time.Location, field string) (time.Time, error) {
	t, _, err := parseDate(value, loc, field)
	return t, err
}

// parseDate is parseInstant that also reports whether value had no time
// component.
func parseDate(value string, loc *time.Location, field string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, dateOnly, err := timezone.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, false, httperr.InvalidDateRange("Invalid " + field + ".")
	}
	return t, dateOnly, nil
}

func parseBirthdate(value string) (*time.Time, error) {
	b, err := timezone.ParseBirthdate(value)
	if err != nil {
		return nil, httperr.InvalidDateRange("Invalid birthdate.")
	}
	return b, nil
}

type idRequest struct {
	ID uint `json:"id" binding:"required"`
}

type periodRequest struct {
	DataInicial string `json:"dataInicial"`
	DataFinal   string `json:"dataFinal"`
	BarbeiroID  *uint  `json:"barbeiroId"`
}

const (
	msgBarbershopNotFound = "Barbershop not found."
	msgBarberNotFound     = "Barber not found."
	msgClientNotFound     = "Client not found."
	msgProductNotFound    = "Product not found."
)
