package repositories

import (
	"context"
	"fmt"
	"time"

	"credlytics/internal/models"

	"gorm.io/gorm"
)

type benefitRepository struct {
	db *gorm.DB
}

// NewBenefitRepository creates a new instance of BenefitRepository
func NewBenefitRepository(db *gorm.DB) BenefitRepository {
	return &benefitRepository{db: db}
}

func (r *benefitRepository) BulkInsert(ctx context.Context, benefits []models.UserBenefit) error {
	if len(benefits) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&benefits).Error; err != nil {
		return fmt.Errorf("failed to bulk insert %d benefits: %w", len(benefits), err)
	}
	return nil
}

func (r *benefitRepository) ListByCardIDs(ctx context.Context, cardIDs []uint) ([]models.UserBenefit, error) {
	var benefits []models.UserBenefit
	err := r.db.WithContext(ctx).
		Where("user_card_id IN ?", cardIDs).
		Order("created_at DESC").
		Find(&benefits).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	return benefits, nil
}

// ownedBenefits scopes a query to benefits reachable through the user's cards.
func (r *benefitRepository) ownedBenefits(ctx context.Context, userID uint) *gorm.DB {
	ownedCards := r.db.Model(&models.UserCard{}).Select("id").Where("user_id = ?", userID)
	return r.db.WithContext(ctx).
		Model(&models.UserBenefit{}).
		Where("user_card_id IN (?)", ownedCards)
}

func (r *benefitRepository) SetUsed(ctx context.Context, userID, benefitID uint, used bool, usedAt *time.Time) (int64, error) {
	result := r.ownedBenefits(ctx, userID).
		Where("id = ?", benefitID).
		Updates(map[string]interface{}{
			"used":    used,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update benefit %d: %w", benefitID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *benefitRepository) Delete(ctx context.Context, userID, benefitID uint) error {
	ownedCards := r.db.Model(&models.UserCard{}).Select("id").Where("user_id = ?", userID)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_card_id IN (?)", benefitID, ownedCards).
		Delete(&models.UserBenefit{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete benefit %d: %w", benefitID, result.Error)
	}
	// Zero rows affected means the benefit was already gone; deletes
	// are idempotent.
	return nil
}
