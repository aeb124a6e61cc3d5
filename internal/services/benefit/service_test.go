package benefit

import (
	"context"
	"errors"
	"testing"
	"time"

	"credlytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBenefitRepository struct {
	mock.Mock
}

func (m *MockBenefitRepository) BulkInsert(ctx context.Context, benefits []models.UserBenefit) error {
	args := m.Called(ctx, benefits)
	return args.Error(0)
}

func (m *MockBenefitRepository) ListByCardIDs(ctx context.Context, cardIDs []uint) ([]models.UserBenefit, error) {
	args := m.Called(ctx, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserBenefit), args.Error(1)
}

func (m *MockBenefitRepository) SetUsed(ctx context.Context, userID, benefitID uint, used bool, usedAt *time.Time) (int64, error) {
	args := m.Called(ctx, userID, benefitID, used, usedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBenefitRepository) Delete(ctx context.Context, userID, benefitID uint) error {
	args := m.Called(ctx, userID, benefitID)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.UserCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserCardView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserCardView), args.Error(1)
}

func (m *MockCardRepository) GetOwned(ctx context.Context, userID, cardID uint) (*models.UserCard, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserCard), args.Error(1)
}

func (m *MockCardRepository) DeleteWithBenefits(ctx context.Context, cardID uint) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, cardID uint) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func TestBenefitService_ListBenefits(t *testing.T) {
	t.Run("no cards short-circuits without a benefit query", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		cardRepo.On("ListByUser", mock.Anything, uint(1)).Return([]models.UserCardView{}, nil)

		svc := NewService(benefitRepo, cardRepo)
		got, err := svc.ListBenefits(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, got)
		benefitRepo.AssertNotCalled(t, "ListByCardIDs", mock.Anything, mock.Anything)
	})

	t.Run("benefits are decorated with card name and color", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)

		cards := []models.UserCardView{
			{ID: 10, TemplateName: "Acme Gold", Color: "#10B981"},
		}
		benefits := []models.UserBenefit{
			{ID: 1, UserCardID: 10, Title: "Annual travel credit"},
		}
		cardRepo.On("ListByUser", mock.Anything, uint(1)).Return(cards, nil)
		benefitRepo.On("ListByCardIDs", mock.Anything, []uint{10}).Return(benefits, nil)

		svc := NewService(benefitRepo, cardRepo)
		got, err := svc.ListBenefits(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Acme Gold", got[0].CardName)
		assert.Equal(t, "#10B981", got[0].CardColor)
	})

	t.Run("benefit with missing card stays visible", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)

		cards := []models.UserCardView{{ID: 10, TemplateName: "Acme Gold", Color: "#10B981"}}
		benefits := []models.UserBenefit{{ID: 1, UserCardID: 99}}
		cardRepo.On("ListByUser", mock.Anything, uint(1)).Return(cards, nil)
		benefitRepo.On("ListByCardIDs", mock.Anything, []uint{10}).Return(benefits, nil)

		svc := NewService(benefitRepo, cardRepo)
		got, err := svc.ListBenefits(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Empty(t, got[0].CardName)
	})
}

func TestBenefitService_ToggleUsed(t *testing.T) {
	t.Run("marking used sets a timestamp", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		benefitRepo.On("SetUsed", mock.Anything, uint(1), uint(5), true,
			mock.MatchedBy(func(usedAt *time.Time) bool { return usedAt != nil })).
			Return(int64(1), nil)

		svc := NewService(benefitRepo, cardRepo)
		err := svc.ToggleUsed(context.Background(), 1, 5, false)

		assert.NoError(t, err)
		benefitRepo.AssertExpectations(t)
	})

	t.Run("marking unused clears the timestamp", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		benefitRepo.On("SetUsed", mock.Anything, uint(1), uint(5), false, (*time.Time)(nil)).
			Return(int64(1), nil)

		svc := NewService(benefitRepo, cardRepo)
		err := svc.ToggleUsed(context.Background(), 1, 5, true)

		assert.NoError(t, err)
		benefitRepo.AssertExpectations(t)
	})

	t.Run("unknown or foreign benefit is not found", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		benefitRepo.On("SetUsed", mock.Anything, uint(1), uint(5), true, mock.Anything).
			Return(int64(0), nil)

		svc := NewService(benefitRepo, cardRepo)
		err := svc.ToggleUsed(context.Background(), 1, 5, false)

		assert.ErrorIs(t, err, ErrBenefitNotFound)
	})

	t.Run("store errors bubble up", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		benefitRepo.On("SetUsed", mock.Anything, uint(1), uint(5), true, mock.Anything).
			Return(int64(0), errors.New("connection reset"))

		svc := NewService(benefitRepo, cardRepo)
		err := svc.ToggleUsed(context.Background(), 1, 5, false)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrBenefitNotFound)
	})
}

func TestBenefitService_DeleteBenefit(t *testing.T) {
	t.Run("deleting twice succeeds both times", func(t *testing.T) {
		benefitRepo := new(MockBenefitRepository)
		cardRepo := new(MockCardRepository)
		benefitRepo.On("Delete", mock.Anything, uint(1), uint(5)).Return(nil).Twice()

		svc := NewService(benefitRepo, cardRepo)

		assert.NoError(t, svc.DeleteBenefit(context.Background(), 1, 5))
		assert.NoError(t, svc.DeleteBenefit(context.Background(), 1, 5))
		benefitRepo.AssertExpectations(t)
	})
}
