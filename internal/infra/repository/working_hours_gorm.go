package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type WorkingHoursGormRepository struct {
	db *gorm.DB
}

func NewWorkingHoursGormRepository(db *gorm.DB) *WorkingHoursGormRepository {
	return &WorkingHoursGormRepository{db: db}
}

func (r *WorkingHoursGormRepository) FindActiveWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ? AND active = ?", professionalID, weekday, true).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find working hours: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// FindActiveWorkingHoursForTenant only matches professionals of tenantID.
func (r *WorkingHoursGormRepository) FindActiveWorkingHoursForTenant(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Joins("JOIN professionals p ON p.id = working_hours.professional_id").
		Where(
			"p.barbershop_id = ? AND working_hours.professional_id = ? AND working_hours.weekday = ? AND working_hours.active = ?",
			tenantID, professionalID, weekday, true,
		).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find tenant working hours: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *WorkingHoursGormRepository) ListWorkingHours(
	ctx context.Context,
	professionalID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, fmt.Errorf("list working hours: %w", err)
	}
	return hours, nil
}

// UpsertWorkingHours keeps one row per (professional, weekday).
func (r *WorkingHoursGormRepository) UpsertWorkingHours(
	ctx context.Context,
	wh *models.WorkingHours,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "professional_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"open_time", "close_time", "lunch_start", "lunch_end", "active", "updated_at",
			}),
		}).
		Create(wh).Error
	if err != nil {
		return fmt.Errorf("upsert working hours: %w", err)
	}
	return nil
}

func (r *WorkingHoursGormRepository) DeactivateWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.WorkingHours{}).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate working hours: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("working_hours_not_found", "no working hours for this weekday")
	}
	return nil
}

// Compile-time check
var _ schedule.WorkingHoursRepository = (*WorkingHoursGormRepository)(nil)
