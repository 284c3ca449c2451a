package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	DateTime         time.Time `json:"date_time"`
	Date             string    `json:"date"`
	Status           string    `json:"status"`
	ProfessionalID   uint      `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	ClientName       string    `json:"client_name"`
	ServiceName      string    `json:"service_name"`
	Observations     string    `json:"observations,omitempty"`
}

// AppointmentList maps preloaded appointments, rendering instants in loc.
func AppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:               ap.ID,
			DateTime:         ap.DateTime.In(loc),
			Date:             ap.Date,
			Status:           ap.Status,
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: ap.Professional.Name,
			ClientName:       ap.Client.Name,
			ServiceName:      ap.Service.Name,
			Observations:     ap.Observations,
		})
	}
	return out
}
