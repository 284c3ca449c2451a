package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type BlockItem struct {
	Date      string
	StartTime string
	EndTime   string
	Reason    string
}

type CreateBlocksBatchInput struct {
	TenantID       uint
	ProfessionalID uint
	CreatedBy      schedule.Actor
	Items          []BlockItem
}

// CreateBlocksBatch writes every item or none. Items are checked against
// stored blocks and against each other before anything is written.
type CreateBlocksBatch struct {
	catalog schedule.Catalog
	blocks  schedule.BlockRepository
	locker  lock.Locker
	audit   *audit.Dispatcher
}

func NewCreateBlocksBatch(
	catalog schedule.Catalog,
	blocks schedule.BlockRepository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *CreateBlocksBatch {
	return &CreateBlocksBatch{
		catalog: catalog,
		blocks:  blocks,
		locker:  locker,
		audit:   audit,
	}
}

func (uc *CreateBlocksBatch) Execute(
	ctx context.Context,
	in CreateBlocksBatchInput,
) ([]*models.Block, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrValidation("empty_batch", "at least one block is required")
	}
	if !in.CreatedBy.Valid() {
		return nil, httperr.ErrValidation("invalid_creator", "created_by must be TENANT or PROFESSIONAL")
	}

	// --------------------------------------------------
	// Validate items and the batch as a whole
	// --------------------------------------------------
	byDate := map[string][]schedule.Interval{}
	blocks := make([]*models.Block, 0, len(in.Items))

	for i, item := range in.Items {
		if err := validDate(item.Date); err != nil {
			return nil, itemError(i, err)
		}
		iv, err := parseInterval(item.StartTime, item.EndTime)
		if err != nil {
			return nil, itemError(i, err)
		}
		if schedule.OverlapsAny(iv, byDate[item.Date]) {
			return nil, httperr.ErrConflict("block_overlap", fmt.Sprintf("item %d overlaps another item of the batch", i))
		}
		byDate[item.Date] = append(byDate[item.Date], iv)

		blocks = append(blocks, &models.Block{
			ProfessionalID: in.ProfessionalID,
			Date:           item.Date,
			StartTime:      iv.Start.String(),
			EndTime:        iv.End.String(),
			Reason:         item.Reason,
			CreatedBy:      string(in.CreatedBy),
		})
	}

	if _, err := ownedProfessional(ctx, uc.catalog, in.TenantID, in.ProfessionalID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Lock every touched date in a fixed order
	// --------------------------------------------------
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		unlock, err := uc.locker.Lock(ctx, lock.ProfessionalDayKey(in.ProfessionalID, d))
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	for i, b := range blocks {
		overlap, err := uc.blocks.ExistsOverlap(ctx, b.ProfessionalID, b.Date, b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		if overlap {
			return nil, httperr.ErrConflict("block_overlap", fmt.Sprintf("item %d overlaps an existing block", i))
		}
	}

	if err := uc.blocks.CreateBlocks(ctx, blocks); err != nil {
		return nil, err
	}

	for _, b := range blocks {
		dispatch(uc.audit, in.TenantID, in.CreatedBy, in.ProfessionalID, "block_created", "block", b.ID, map[string]any{
			"date":  b.Date,
			"start": b.StartTime,
			"end":   b.EndTime,
			"batch": true,
		})
	}

	return blocks, nil
}

// itemError prefixes the message of a validation error with the item index.
func itemError(i int, err error) error {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return httperr.ErrValidation(be.Code, fmt.Sprintf("item %d: %s", i, be.Message))
	}
	return err
}
