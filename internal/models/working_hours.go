package models

import "time"

// WorkingHours is the recurring weekly window of a professional.
// Weekday follows ISO numbering: 1 = Monday ... 7 = Sunday.
type WorkingHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"professional_id"`
	Weekday        int  `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"weekday"`

	OpenTime   string `gorm:"size:5;not null" json:"open_time"`
	CloseTime  string `gorm:"size:5;not null" json:"close_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
