package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type ExceptionGormRepository struct {
	db *gorm.DB
}

func NewExceptionGormRepository(db *gorm.DB) *ExceptionGormRepository {
	return &ExceptionGormRepository{db: db}
}

func (r *ExceptionGormRepository) FindActiveException(
	ctx context.Context,
	professionalID uint,
	date string,
) (*models.ScheduleException, error) {

	var rows []models.ScheduleException
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ? AND active = ?", professionalID, date, true).
		Order("id DESC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find schedule exception: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *ExceptionGormRepository) GetException(
	ctx context.Context,
	id uint,
) (*models.ScheduleException, error) {

	var exc models.ScheduleException
	if err := r.db.WithContext(ctx).First(&exc, id).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("exception_not_found", "schedule exception not found")
		}
		return nil, fmt.Errorf("get schedule exception: %w", err)
	}
	return &exc, nil
}

func (r *ExceptionGormRepository) CreateException(
	ctx context.Context,
	exc *models.ScheduleException,
) error {
	if err := r.db.WithContext(ctx).Create(exc).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("exception_exists", "an active exception already exists for this date")
		}
		return fmt.Errorf("create schedule exception: %w", err)
	}
	return nil
}

func (r *ExceptionGormRepository) DeactivateException(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.ScheduleException{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if res.Error != nil {
		return fmt.Errorf("deactivate schedule exception: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("exception_not_found", "schedule exception not found")
	}
	return nil
}

// Compile-time check
var _ schedule.ExceptionRepository = (*ExceptionGormRepository)(nil)
