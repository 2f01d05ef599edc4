package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"data"`
	BarberID    uint      `json:"barbeiroId"`
	BarberName  string    `json:"barbeiro"`
	ClientID    uint      `json:"clienteId"`
	ClientName  string    `json:"cliente"`
}
