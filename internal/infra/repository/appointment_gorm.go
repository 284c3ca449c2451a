package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment relies on the partial unique index over
// (professional_id, date_time) so that two concurrent inserts for the
// same slot cannot both succeed.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.DateTime = ap.DateTime.UTC()
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("booking_conflict", "professional already has a booking at this time")
		}
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) ExistsAtDateTime(
	ctx context.Context,
	professionalID uint,
	dateTime time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"professional_id = ? AND date_time = ? AND status <> ?",
			professionalID,
			dateTime.UTC(),
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check appointment conflict: %w", err)
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("appointment_not_found", "appointment not found")
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	return &ap, nil
}

// UpdateAppointment stores a transition read while the booking was in
// status from. The write only applies if the row still holds from, so of
// two concurrent transitions exactly one wins and the other gets a
// ConflictError.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {
	ap.UpdatedAt = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"observations": ap.Observations,
			"updated_at":   ap.UpdatedAt,
		})
	if res.Error != nil {
		// reviving a cancelled booking whose slot was taken meanwhile
		if isUniqueViolation(res.Error) {
			return httperr.ErrConflict("booking_conflict", "professional already has a booking at this time")
		}
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrConflict("status_changed", "booking status changed concurrently, reload and retry")
	}
	return nil
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "date_time", "date", "status").
		Where(
			"professional_id = ? AND date = ? AND status <> ?",
			professionalID, date, string(domain.StatusCancelled),
		).
		Order("date_time ASC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for day: %w", err)
	}

	return apps, nil
}

// ListAppointmentsForPeriod lists every appointment of the tenant in
// [start, end). A zero professionalID means all professionals.
func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Professional").
		Where(
			"barbershop_id = ? AND date_time >= ? AND date_time < ?",
			tenantID,
			start.UTC(),
			end.UTC(),
		)
	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	if err := q.Order("date_time ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for period: %w", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
