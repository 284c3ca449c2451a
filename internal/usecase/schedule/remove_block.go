package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
)

type RemoveBlock struct {
	catalog schedule.Catalog
	blocks  schedule.BlockRepository
	locker  lock.Locker
	audit   *audit.Dispatcher
}

func NewRemoveBlock(
	catalog schedule.Catalog,
	blocks schedule.BlockRepository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *RemoveBlock {
	return &RemoveBlock{
		catalog: catalog,
		blocks:  blocks,
		locker:  locker,
		audit:   audit,
	}
}

func (uc *RemoveBlock) Execute(
	ctx context.Context,
	blockID uint,
	requester schedule.Requester,
) error {

	b, err := uc.blocks.GetBlock(ctx, blockID)
	if err != nil {
		return err
	}

	owner, err := uc.catalog.GetProfessional(ctx, b.ProfessionalID)
	if err != nil {
		return err
	}

	if err := schedule.AuthorizeRemoval(
		requester,
		b.ProfessionalID,
		owner.BarbershopID,
		schedule.Actor(b.CreatedBy),
	); err != nil {
		return err
	}

	unlock, err := uc.locker.Lock(ctx, lock.ProfessionalDayKey(b.ProfessionalID, b.Date))
	if err != nil {
		return err
	}
	defer unlock()

	if err := uc.blocks.DeleteBlock(ctx, b.ID); err != nil {
		return err
	}

	dispatch(uc.audit, owner.BarbershopID, requester.Role, requester.ProfessionalID, "block_removed", "block", b.ID, nil)
	return nil
}
