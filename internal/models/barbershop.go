package models

import "time"

type Barbershop struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Login        string `gorm:"size:100;uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Status       bool   `gorm:"not null" json:"status"`

	Barbers  []Barber  `gorm:"constraint:OnDelete:CASCADE;" json:"barbeiros,omitempty"`
	Products []Product `gorm:"constraint:OnDelete:CASCADE;" json:"produtos,omitempty"`
	Clients  []Client  `gorm:"constraint:OnDelete:CASCADE;" json:"clientes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
