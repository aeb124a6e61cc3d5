package repositories

import (
	"context"
	"errors"
	"time"

	"credlytics/internal/models"
)

var ErrBenefitNotFound = errors.New("benefit not found")

// BenefitRepository defines database operations on user benefit records.
// Writes are scoped to the owning user through the card join.
type BenefitRepository interface {
	// BulkInsert writes all benefits in a single batch call.
	BulkInsert(ctx context.Context, benefits []models.UserBenefit) error

	// ListByCardIDs retrieves benefits whose owning card is in the
	// given set, newest first. Callers must not pass an empty set.
	ListByCardIDs(ctx context.Context, cardIDs []uint) ([]models.UserBenefit, error)

	// SetUsed updates the used flag and used-at timestamp of a benefit
	// the user owns. Returns the number of rows updated; zero means
	// the benefit does not exist or belongs to someone else.
	SetUsed(ctx context.Context, userID, benefitID uint, used bool, usedAt *time.Time) (int64, error)

	// Delete removes a benefit the user owns. Deleting a nonexistent
	// benefit is not an error.
	Delete(ctx context.Context, userID, benefitID uint) error
}
