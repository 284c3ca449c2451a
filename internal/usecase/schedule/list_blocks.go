package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type ListBlocks struct {
	catalog schedule.Catalog
	blocks  schedule.BlockRepository
}

func NewListBlocks(catalog schedule.Catalog, blocks schedule.BlockRepository) *ListBlocks {
	return &ListBlocks{catalog: catalog, blocks: blocks}
}

func (uc *ListBlocks) Execute(
	ctx context.Context,
	tenantID uint,
	professionalID uint,
	date string,
) ([]models.Block, error) {

	if err := validDate(date); err != nil {
		return nil, err
	}
	if _, err := ownedProfessional(ctx, uc.catalog, tenantID, professionalID); err != nil {
		return nil, err
	}

	return uc.blocks.ListActiveBlocks(ctx, professionalID, date)
}
