package models

import "time"

const (
	ExceptionClosed       = "CLOSED"
	ExceptionSpecialHours = "SPECIAL_HOURS"
)

// ScheduleException overrides the weekly hours of a professional on one date.
// At most one exception per (professional, date) is active.
type ScheduleException struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"uniqueIndex:idx_exception_day,where:active = true;not null" json:"professional_id"`
	Date           string `gorm:"size:10;uniqueIndex:idx_exception_day,where:active = true;not null" json:"date"`

	Kind      string `gorm:"size:20;not null" json:"kind"`
	OpenTime  string `gorm:"size:5" json:"open_time,omitempty"`
	CloseTime string `gorm:"size:5" json:"close_time,omitempty"`
	Reason    string `gorm:"size:255" json:"reason"`
	CreatedBy string `gorm:"size:20;not null" json:"created_by"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
