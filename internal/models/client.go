package models

import "time"

// Cliente sem login, vinculado à barbearia
type Client struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbeariaId"`

	Name      string     `gorm:"size:100;not null" json:"nome"`
	Phone     string     `gorm:"size:20" json:"telefone"`
	Email     string     `gorm:"size:100" json:"email"`
	Birthdate *time.Time `json:"birthdate"`

	LastVisitAt *time.Time `json:"ultimo_corte"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
