package models

import "time"

type Product struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbeariaId"`

	Name    string  `gorm:"size:100;not null" json:"nome"`
	Price   float64 `gorm:"not null" json:"valor"`
	Stock   *int    `json:"estoque"` // nil = ilimitado (serviço)
	Service bool    `gorm:"default:false" json:"servico"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
