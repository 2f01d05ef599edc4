package models

import "time"

type Barber struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbeariaId"`

	Name         string     `gorm:"size:100;not null" json:"nome"`
	Login        string     `gorm:"size:120;uniqueIndex;not null" json:"login"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Birthdate    *time.Time `json:"birthdate"`
	Phone        string     `gorm:"size:20" json:"telefone"`
	Email        string     `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
