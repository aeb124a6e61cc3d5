package catalog

import (
	"context"
	"errors"
	"testing"

	"credlytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListTemplates(ctx context.Context) ([]models.CardTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CardTemplate), args.Error(1)
}

func (m *MockCatalogRepository) ListAllBenefits(ctx context.Context) ([]models.CardTemplateBenefit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CardTemplateBenefit), args.Error(1)
}

func (m *MockCatalogRepository) ListBenefitsByTemplate(ctx context.Context, templateID uint) ([]models.CardTemplateBenefit, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CardTemplateBenefit), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id uint) (*models.CardTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardTemplate), args.Error(1)
}

func (m *MockCatalogRepository) GetByKey(ctx context.Context, key string) (*models.CardTemplate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardTemplate), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetTemplates(ctx context.Context) ([]models.CardTemplate, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.CardTemplate), args.Bool(1), args.Error(2)
}

func (m *MockCache) CacheTemplates(ctx context.Context, templates []models.CardTemplate) error {
	args := m.Called(ctx, templates)
	return args.Error(0)
}

func TestCatalogService_ListTemplates(t *testing.T) {
	templates := []models.CardTemplate{
		{ID: 1, CardKey: "acme-gold", Name: "Acme Gold", Issuer: "Acme Bank"},
		{ID: 2, CardKey: "voyager-basic", Name: "Voyager Basic", Issuer: "Voyager"},
	}
	benefits := []models.CardTemplateBenefit{
		{ID: 10, CardTemplateID: 1, Title: "Annual travel credit", Category: models.CategoryTravel},
		{ID: 11, CardTemplateID: 1, Title: "Dining rewards", Category: models.CategoryDining},
	}

	t.Run("joins benefits onto their templates", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListTemplates", mock.Anything).Return(templates, nil)
		repo.On("ListAllBenefits", mock.Anything).Return(benefits, nil)

		svc := NewService(repo, nil)
		got, err := svc.ListTemplates(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Len(t, got[0].Benefits, 2)
		assert.Equal(t, "Annual travel credit", got[0].Benefits[0].Title)
		assert.Empty(t, got[1].Benefits)
	})

	t.Run("template read failure returns no partial result", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListTemplates", mock.Anything).Return(nil, errors.New("db down"))

		svc := NewService(repo, nil)
		got, err := svc.ListTemplates(context.Background())

		assert.ErrorIs(t, err, ErrCatalogUnavailable)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "ListAllBenefits", mock.Anything)
	})

	t.Run("benefit read failure returns no partial result", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListTemplates", mock.Anything).Return(templates, nil)
		repo.On("ListAllBenefits", mock.Anything).Return(nil, errors.New("db down"))

		svc := NewService(repo, nil)
		got, err := svc.ListTemplates(context.Background())

		assert.ErrorIs(t, err, ErrCatalogUnavailable)
		assert.Nil(t, got)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		cache := new(MockCache)
		cache.On("GetTemplates", mock.Anything).Return(templates, true, nil)

		svc := NewService(repo, cache)
		got, err := svc.ListTemplates(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, templates, got)
		repo.AssertNotCalled(t, "ListTemplates", mock.Anything)
	})

	t.Run("cache miss fills the cache after the read", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListTemplates", mock.Anything).Return(templates, nil)
		repo.On("ListAllBenefits", mock.Anything).Return(benefits, nil)
		cache := new(MockCache)
		cache.On("GetTemplates", mock.Anything).Return(nil, false, nil)
		cache.On("CacheTemplates", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(repo, cache)
		_, err := svc.ListTemplates(context.Background())

		assert.NoError(t, err)
		cache.AssertCalled(t, "CacheTemplates", mock.Anything, mock.Anything)
	})

	t.Run("cache errors fall through to the database", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListTemplates", mock.Anything).Return(templates, nil)
		repo.On("ListAllBenefits", mock.Anything).Return(benefits, nil)
		cache := new(MockCache)
		cache.On("GetTemplates", mock.Anything).Return(nil, false, errors.New("redis down"))
		cache.On("CacheTemplates", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		svc := NewService(repo, cache)
		got, err := svc.ListTemplates(context.Background())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
