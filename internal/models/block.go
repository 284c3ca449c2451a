package models

import (
	"time"

	"gorm.io/gorm"
)

// Block is an ad-hoc unavailable interval of a professional on one date.
// Removed blocks are soft deleted and no longer count as active.
type Block struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"index:idx_block_day;not null" json:"professional_id"`
	Date           string `gorm:"size:10;index:idx_block_day;not null" json:"date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`
	CreatedBy string `gorm:"size:20;not null" json:"created_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
