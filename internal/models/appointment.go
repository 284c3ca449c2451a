package models

import "time"

// Appointment is a client booking. It is never deleted; terminal states
// are CANCELADO and CONCLUIDO.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"index;not null" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ProfessionalID uint         `gorm:"uniqueIndex:idx_appointment_slot,where:status <> 'CANCELADO';index:idx_appointment_day;not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional,omitempty"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	DateTime time.Time `gorm:"uniqueIndex:idx_appointment_slot,where:status <> 'CANCELADO';not null" json:"date_time"`
	Date     string    `gorm:"size:10;index:idx_appointment_day;not null" json:"date"`

	Status       string `gorm:"size:20;default:'PENDENTE'" json:"status"`
	Observations string `gorm:"size:255" json:"observations"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
