package repositories

import (
	"context"
	"errors"

	"credlytics/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

// CardRepository defines database operations on user-owned cards.
// Every read and write is scoped to the owning user; ownership is
// enforced here at the store boundary, not in handlers.
type CardRepository interface {
	// Create inserts a new user card. The generated identifier is
	// written back to card.ID before returning.
	Create(ctx context.Context, card *models.UserCard) error

	// ListByUser retrieves the user's cards joined with template
	// display fields, newest first.
	ListByUser(ctx context.Context, userID uint) ([]models.UserCardView, error)

	// GetOwned retrieves a card only if it belongs to the user.
	GetOwned(ctx context.Context, userID, cardID uint) (*models.UserCard, error)

	// DeleteWithBenefits removes the card and its benefits in one
	// transaction. The two-step delete does not rely on a store-level
	// cascade.
	DeleteWithBenefits(ctx context.Context, cardID uint) error

	// Delete removes just the card row. Used as the compensating
	// action when a benefit import fails after card creation.
	Delete(ctx context.Context, cardID uint) error
}
