package repositories

import (
	"context"
	"errors"

	"credlytics/internal/models"
)

var ErrTemplateNotFound = errors.New("card template not found")

// CatalogRepository defines read access to the seeded card-template catalog.
type CatalogRepository interface {
	// ListTemplates retrieves all card templates ordered by name,
	// without their benefit children.
	ListTemplates(ctx context.Context) ([]models.CardTemplate, error)

	// ListAllBenefits retrieves every template benefit in the catalog.
	ListAllBenefits(ctx context.Context) ([]models.CardTemplateBenefit, error)

	// ListBenefitsByTemplate retrieves the benefits of one template.
	ListBenefitsByTemplate(ctx context.Context, templateID uint) ([]models.CardTemplateBenefit, error)

	// GetByID retrieves a template by its numeric identifier.
	GetByID(ctx context.Context, id uint) (*models.CardTemplate, error)

	// GetByKey retrieves a template by its catalog key (e.g. "acme-gold").
	GetByKey(ctx context.Context, key string) (*models.CardTemplate, error)
}
