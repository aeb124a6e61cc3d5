// Package catalog reads the seeded card-template catalog.
package catalog

import (
	"context"
	"fmt"
	"log"

	"credlytics/internal/models"
	"credlytics/internal/repositories"
)

// Cache abstracts the template cache so the service can be tested
// without Redis.
type Cache interface {
	GetTemplates(ctx context.Context) ([]models.CardTemplate, bool, error)
	CacheTemplates(ctx context.Context, templates []models.CardTemplate) error
}

// Service exposes read access to the card-template catalog.
type Service interface {
	// ListTemplates returns all templates ordered by name, each
	// populated with its full benefit list.
	ListTemplates(ctx context.Context) ([]models.CardTemplate, error)
}

type service struct {
	repo  repositories.CatalogRepository
	cache Cache
}

// NewService creates a new catalog service. The cache is optional.
func NewService(repo repositories.CatalogRepository, cache Cache) Service {
	if repo == nil {
		panic("catalog repo is required")
	}
	return &service{repo: repo, cache: cache}
}

// ListTemplates joins templates with their benefits in memory. The
// two reads either both succeed or the whole call fails; a partial
// result (templates without benefits) is never returned.
func (s *service) ListTemplates(ctx context.Context) ([]models.CardTemplate, error) {
	if s.cache != nil {
		if templates, found, err := s.cache.GetTemplates(ctx); err == nil && found {
			return templates, nil
		} else if err != nil {
			log.Printf("Catalog cache read failed: %v", err)
		}
	}

	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	benefits, err := s.repo.ListAllBenefits(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	byTemplate := make(map[uint][]models.CardTemplateBenefit, len(templates))
	for _, b := range benefits {
		byTemplate[b.CardTemplateID] = append(byTemplate[b.CardTemplateID], b)
	}
	for i := range templates {
		templates[i].Benefits = byTemplate[templates[i].ID]
	}

	if s.cache != nil {
		if err := s.cache.CacheTemplates(ctx, templates); err != nil {
			log.Printf("Failed to cache catalog: %v", err)
		}
	}

	return templates, nil
}
