package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *CatalogGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&shop).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("barbershop_not_found", "barbershop not found")
		}
		return nil, fmt.Errorf("get barbershop: %w", err)
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	tenantID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, tenantID).
		First(&svc).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("service_not_found", "service not found")
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &svc, nil
}

func (r *CatalogGormRepository) GetServiceByID(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("service_not_found", "service not found")
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &svc, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *CatalogGormRepository) GetProfessional(
	ctx context.Context,
	professionalID uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, professionalID).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("professional_not_found", "professional not found")
		}
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return &p, nil
}

func (r *CatalogGormRepository) ListQualifiedProfessionals(
	ctx context.Context,
	tenantID uint,
	serviceID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Joins("JOIN professional_services ps ON ps.professional_id = professionals.id").
		Where("ps.service_id = ? AND professionals.barbershop_id = ? AND professionals.active = ?", serviceID, tenantID, true).
		Order("professionals.id ASC").
		Find(&pros).Error; err != nil {
		return nil, fmt.Errorf("list qualified professionals: %w", err)
	}
	return pros, nil
}

func (r *CatalogGormRepository) IsQualified(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Table("professional_services").
		Where("professional_id = ? AND service_id = ?", professionalID, serviceID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check qualification: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *CatalogGormRepository) GetClient(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, clientID).Error; err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrNotFound("client_not_found", "client not found")
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &client, nil
}

// Compile-time check
var _ schedule.Catalog = (*CatalogGormRepository)(nil)
