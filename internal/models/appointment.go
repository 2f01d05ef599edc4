package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint `gorm:"uniqueIndex:idx_appointment_slot;not null" json:"barbeariaId"`
	BarberID     uint `gorm:"uniqueIndex:idx_appointment_slot;not null" json:"barbeiroId"`
	ClientID     uint `gorm:"index;not null" json:"clienteId"`

	Barber *Barber `gorm:"constraint:OnDelete:CASCADE;" json:"barbeiro,omitempty"`
	Client *Client `gorm:"constraint:OnDelete:CASCADE;" json:"cliente,omitempty"`

	ScheduledAt time.Time `gorm:"uniqueIndex:idx_appointment_slot;not null" json:"data"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
