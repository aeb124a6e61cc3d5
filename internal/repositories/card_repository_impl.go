package repositories

import (
	"context"
	"fmt"

	"credlytics/internal/models"

	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.UserCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create user card: %w", err)
	}
	return nil
}

func (r *cardRepository) ListByUser(ctx context.Context, userID uint) ([]models.UserCardView, error) {
	var views []models.UserCardView
	err := r.db.WithContext(ctx).
		Table("user_cards").
		Select(`user_cards.id, user_cards.card_template_id, user_cards.last_four_digits,
			user_cards.color, user_cards.nickname, user_cards.created_at,
			card_templates.name AS template_name, card_templates.issuer,
			card_templates.annual_fee, card_templates.network, card_templates.country`).
		Joins("JOIN card_templates ON card_templates.id = user_cards.card_template_id").
		Where("user_cards.user_id = ?", userID).
		Order("user_cards.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for user %d: %w", userID, err)
	}
	return views, nil
}

func (r *cardRepository) GetOwned(ctx context.Context, userID, cardID uint) (*models.UserCard, error) {
	var card models.UserCard
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&card).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) DeleteWithBenefits(ctx context.Context, cardID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_card_id = ?", cardID).
			Delete(&models.UserBenefit{}).Error; err != nil {
			return fmt.Errorf("failed to delete benefits for card %d: %w", cardID, err)
		}
		if err := tx.Delete(&models.UserCard{}, cardID).Error; err != nil {
			return fmt.Errorf("failed to delete card %d: %w", cardID, err)
		}
		return nil
	})
}

func (r *cardRepository) Delete(ctx context.Context, cardID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.UserCard{}, cardID).Error; err != nil {
		return fmt.Errorf("failed to delete card %d: %w", cardID, err)
	}
	return nil
}
