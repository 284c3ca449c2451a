package appointment

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint
	Date         time.Time
}

type TimeSlot struct {
	ProfessionalID   uint      `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
}
