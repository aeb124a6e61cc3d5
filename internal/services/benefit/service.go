// Package benefit implements the ledger over a user's benefit
// records: listing, toggling used state and deleting.
package benefit

import (
	"context"
	"fmt"
	"log"
	"time"

	"credlytics/internal/models"
	"credlytics/internal/repositories"
)

// Service defines operations over a user's benefit records.
type Service interface {
	// ListBenefits returns all of the user's benefits, newest first,
	// each decorated with the owning card's name and color.
	ListBenefits(ctx context.Context, userID uint) ([]models.UserBenefitView, error)

	// ToggleUsed flips the used flag. The caller supplies the state
	// it believes is current; the service does not re-read before
	// writing, so concurrent toggles are last-write-wins.
	ToggleUsed(ctx context.Context, userID, benefitID uint, currentUsed bool) error

	// DeleteBenefit removes a benefit. Idempotent: deleting an
	// already-deleted benefit succeeds.
	DeleteBenefit(ctx context.Context, userID, benefitID uint) error
}

type service struct {
	benefitRepo repositories.BenefitRepository
	cardRepo    repositories.CardRepository
	now         func() time.Time
}

// NewService creates a new benefit ledger service
func NewService(benefitRepo repositories.BenefitRepository, cardRepo repositories.CardRepository) Service {
	if benefitRepo == nil {
		panic("benefit repo is required")
	}
	if cardRepo == nil {
		panic("card repo is required")
	}
	return &service{
		benefitRepo: benefitRepo,
		cardRepo:    cardRepo,
		now:         time.Now,
	}
}

func (s *service) ListBenefits(ctx context.Context, userID uint) ([]models.UserBenefitView, error) {
	cards, err := s.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	// No cards means no benefits; skip the store round-trip entirely.
	if len(cards) == 0 {
		return []models.UserBenefitView{}, nil
	}

	cardsByID := make(map[uint]models.UserCardView, len(cards))
	cardIDs := make([]uint, 0, len(cards))
	for _, c := range cards {
		cardsByID[c.ID] = c
		cardIDs = append(cardIDs, c.ID)
	}

	benefits, err := s.benefitRepo.ListByCardIDs(ctx, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	views := make([]models.UserBenefitView, 0, len(benefits))
	for _, b := range benefits {
		view := models.UserBenefitView{UserBenefit: b}
		if owner, ok := cardsByID[b.UserCardID]; ok {
			view.CardName = owner.TemplateName
			view.CardColor = owner.Color
		} else {
			// A benefit whose card cannot be resolved is a store
			// inconsistency; keep it visible rather than hiding it.
			log.Printf("Benefit %d references missing card %d", b.ID, b.UserCardID)
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) ToggleUsed(ctx context.Context, userID, benefitID uint, currentUsed bool) error {
	newUsed := !currentUsed
	var usedAt *time.Time
	if newUsed {
		now := s.now()
		usedAt = &now
	}

	rows, err := s.benefitRepo.SetUsed(ctx, userID, benefitID, newUsed, usedAt)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBenefitNotFound
	}
	return nil
}

func (s *service) DeleteBenefit(ctx context.Context, userID, benefitID uint) error {
	return s.benefitRepo.Delete(ctx, userID, benefitID)
}
