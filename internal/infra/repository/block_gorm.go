package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type BlockGormRepository struct {
	db *gorm.DB
}

func NewBlockGormRepository(db *gorm.DB) *BlockGormRepository {
	return &BlockGormRepository{db: db}
}

func (r *BlockGormRepository) ListActiveBlocks(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}

// ExistsOverlap compares zero-padded HH:MM strings, which order the
// same way as the times they encode.
func (r *BlockGormRepository) ExistsOverlap(
	ctx context.Context,
	professionalID uint,
	date string,
	start string,
	end string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where(
			"professional_id = ? AND date = ? AND start_time < ? AND end_time > ?",
			professionalID, date, end, start,
		).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check block overlap: %w", err)
	}
	return count > 0, nil
}

func (r *BlockGormRepository) GetBlock(
	ctx context.Context,
	id uint,
) (*models.Block, error) {

	var b models.Block
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("block_not_found", "block not found")
		}
		return nil, fmt.Errorf("get block: %w", err)
	}
	return &b, nil
}

func (r *BlockGormRepository) CreateBlock(
	ctx context.Context,
	b *models.Block,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create block: %w", err)
	}
	return nil
}

func (r *BlockGormRepository) CreateBlocks(
	ctx context.Context,
	blocks []*models.Block,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range blocks {
			if err := tx.Create(b).Error; err != nil {
				return fmt.Errorf("create block batch: %w", err)
			}
		}
		return nil
	})
}

func (r *BlockGormRepository) DeleteBlock(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Block{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete block: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("block_not_found", "block not found")
	}
	return nil
}

// Compile-time check
var _ schedule.BlockRepository = (*BlockGormRepository)(nil)
