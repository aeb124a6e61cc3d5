package repositories

import (
	"context"
	"fmt"

	"credlytics/internal/models"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListTemplates(ctx context.Context) ([]models.CardTemplate, error) {
	var templates []models.CardTemplate
	if err := r.db.WithContext(ctx).Order("name asc").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list card templates: %w", err)
	}
	return templates, nil
}

func (r *catalogRepository) ListAllBenefits(ctx context.Context) ([]models.CardTemplateBenefit, error) {
	var benefits []models.CardTemplateBenefit
	if err := r.db.WithContext(ctx).Find(&benefits).Error; err != nil {
		return nil, fmt.Errorf("failed to list template benefits: %w", err)
	}
	return benefits, nil
}

func (r *catalogRepository) ListBenefitsByTemplate(ctx context.Context, templateID uint) ([]models.CardTemplateBenefit, error) {
	var benefits []models.CardTemplateBenefit
	if err := r.db.WithContext(ctx).
		Where("card_template_id = ?", templateID).
		Find(&benefits).Error; err != nil {
		return nil, fmt.Errorf("failed to list benefits for template %d: %w", templateID, err)
	}
	return benefits, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id uint) (*models.CardTemplate, error) {
	var template models.CardTemplate
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *catalogRepository) GetByKey(ctx context.Context, key string) (*models.CardTemplate, error) {
	var template models.CardTemplate
	if err := r.db.WithContext(ctx).Where("card_key = ?", key).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &template, nil
}
