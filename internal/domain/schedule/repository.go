package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Catalog is the read-only lookup of tenant entities owned by other
// parts of the system.
type Catalog interface {
	GetService(ctx context.Context, tenantID, serviceID uint) (*models.Service, error)
	GetServiceByID(ctx context.Context, serviceID uint) (*models.Service, error)
	GetProfessional(ctx context.Context, professionalID uint) (*models.Professional, error)
	GetClient(ctx context.Context, clientID uint) (*models.Client, error)

	// ListQualifiedProfessionals returns the active professionals of the
	// tenant qualified for the service, ordered by id.
	ListQualifiedProfessionals(ctx context.Context, tenantID, serviceID uint) ([]models.Professional, error)
	IsQualified(ctx context.Context, professionalID, serviceID uint) (bool, error)
}

type WorkingHoursRepository interface {
	// FindActiveWorkingHours returns nil, nil when no active row exists.
	FindActiveWorkingHours(ctx context.Context, professionalID uint, weekday int) (*models.WorkingHours, error)
	FindActiveWorkingHoursForTenant(ctx context.Context, tenantID, professionalID uint, weekday int) (*models.WorkingHours, error)
	ListWorkingHours(ctx context.Context, professionalID uint) ([]models.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, wh *models.WorkingHours) error
	DeactivateWorkingHours(ctx context.Context, professionalID uint, weekday int) error
}

type ExceptionRepository interface {
	// FindActiveException returns nil, nil when no active exception exists.
	FindActiveException(ctx context.Context, professionalID uint, date string) (*models.ScheduleException, error)
	GetException(ctx context.Context, id uint) (*models.ScheduleException, error)
	CreateException(ctx context.Context, exc *models.ScheduleException) error
	DeactivateException(ctx context.Context, id uint) error
}

type BlockRepository interface {
	ListActiveBlocks(ctx context.Context, professionalID uint, date string) ([]models.Block, error)
	ExistsOverlap(ctx context.Context, professionalID uint, date, start, end string) (bool, error)
	GetBlock(ctx context.Context, id uint) (*models.Block, error)
	CreateBlock(ctx context.Context, b *models.Block) error
	// CreateBlocks writes all blocks or none.
	CreateBlocks(ctx context.Context, blocks []*models.Block) error
	DeleteBlock(ctx context.Context, id uint) error
}
