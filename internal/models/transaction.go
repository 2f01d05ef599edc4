package models

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction is a cashbox entry.
type Transaction struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbeariaId"`
	BarberID     uint `gorm:"index;not null" json:"barbeiroId"`
	ClientID     uint `gorm:"index;not null" json:"clienteId"`

	Client *Client `gorm:"constraint:OnDelete:CASCADE;" json:"cliente,omitempty"`

	Amount        float64        `gorm:"not null" json:"valor"`
	PaymentMethod string         `gorm:"size:30;not null" json:"forma_pagamento"`
	Products      datatypes.JSON `json:"produtos"`

	// OccurredAt is the business date used by period reports.
	OccurredAt time.Time `gorm:"index;not null" json:"data"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
