package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBlockInput struct {
	TenantID       uint
	ProfessionalID uint

	Date      string
	StartTime string
	EndTime   string
	Reason    string

	CreatedBy schedule.Actor
}

// ======================================================
// USE CASE
// ======================================================

type CreateBlock struct {
	catalog schedule.Catalog
	blocks  schedule.BlockRepository
	locker  lock.Locker
	audit   *audit.Dispatcher
}

func NewCreateBlock(
	catalog schedule.Catalog,
	blocks schedule.BlockRepository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		catalog: catalog,
		blocks:  blocks,
		locker:  locker,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.Block, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if !in.CreatedBy.Valid() {
		return nil, httperr.ErrValidation("invalid_creator", "created_by must be TENANT or PROFESSIONAL")
	}
	if err := validDate(in.Date); err != nil {
		return nil, err
	}
	iv, err := parseInterval(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := ownedProfessional(ctx, uc.catalog, in.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Overlap check + write under the agenda lock
	// --------------------------------------------------
	unlock, err := uc.locker.Lock(ctx, lock.ProfessionalDayKey(in.ProfessionalID, in.Date))
	if err != nil {
		return nil, err
	}
	defer unlock()

	start, end := iv.Start.String(), iv.End.String()

	overlap, err := uc.blocks.ExistsOverlap(ctx, in.ProfessionalID, in.Date, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, httperr.ErrConflict("block_overlap", "block overlaps an existing block")
	}

	b := &models.Block{
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		StartTime:      start,
		EndTime:        end,
		Reason:         in.Reason,
		CreatedBy:      string(in.CreatedBy),
	}
	if err := uc.blocks.CreateBlock(ctx, b); err != nil {
		return nil, err
	}

	dispatch(uc.audit, in.TenantID, in.CreatedBy, in.ProfessionalID, "block_created", "block", b.ID, map[string]any{
		"date":  b.Date,
		"start": b.StartTime,
		"end":   b.EndTime,
	})

	return b, nil
}
