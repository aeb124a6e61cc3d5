// Package card implements the card acquisition service: creating a
// user card from a catalog template and cloning the template's
// benefits into user-owned records.
package card

import (
	"context"
	"errors"
	"fmt"
	"log"

	"credlytics/internal/models"
	"credlytics/internal/repositories"
)

// Service defines card acquisition and management operations.
type Service interface {
	// AddCard creates a user card from a template and imports the
	// template's benefits. Returns the new card's identifier.
	AddCard(ctx context.Context, userID uint, input AddCardInput) (uint, error)

	// ListCards returns the user's cards with template display fields.
	ListCards(ctx context.Context, userID uint) ([]models.UserCardView, error)

	// DeleteCard removes a card the user owns together with its
	// benefits.
	DeleteCard(ctx context.Context, userID, cardID uint) error
}

type service struct {
	cardRepo    repositories.CardRepository
	benefitRepo repositories.BenefitRepository
	catalogRepo repositories.CatalogRepository
}

// NewService creates a new card service
func NewService(
	cardRepo repositories.CardRepository,
	benefitRepo repositories.BenefitRepository,
	catalogRepo repositories.CatalogRepository,
) Service {
	if cardRepo == nil {
		panic("card repo is required")
	}
	if benefitRepo == nil {
		panic("benefit repo is required")
	}
	if catalogRepo == nil {
		panic("catalog repo is required")
	}
	return &service{
		cardRepo:    cardRepo,
		benefitRepo: benefitRepo,
		catalogRepo: catalogRepo,
	}
}

// AddCard runs the import pipeline:
//  1. resolve the template by key or numeric id
//  2. insert the user card (generated id is read back synchronously)
//  3. fetch the template's benefits
//  4. clone each one into a user benefit, fields copied verbatim
//  5. bulk-insert the clones in one batch
//
// A card-insert failure aborts the whole operation. A failure after
// the card exists triggers a compensating delete of the orphan card
// and surfaces as ErrPartialImport so the caller can retry the import
// without recreating the card.
func (s *service) AddCard(ctx context.Context, userID uint, input AddCardInput) (uint, error) {
	// Resolve the template up front; a bad id or key must fail before
	// any card row exists.
	var template *models.CardTemplate
	var err error
	if input.TemplateKey != "" {
		template, err = s.catalogRepo.GetByKey(ctx, input.TemplateKey)
	} else {
		template, err = s.catalogRepo.GetByID(ctx, input.CardTemplateID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			return 0, ErrTemplateNotFound
		}
		return 0, fmt.Errorf("failed to resolve card template: %w", err)
	}
	templateID := template.ID

	newCard := &models.UserCard{
		UserID:         userID,
		CardTemplateID: templateID,
		LastFourDigits: nilIfEmpty(input.LastFourDigits),
		Color:          input.Color,
		Nickname:       input.Nickname,
	}
	if err := s.cardRepo.Create(ctx, newCard); err != nil {
		return 0, fmt.Errorf("failed to create card: %w", err)
	}
	if newCard.ID == 0 {
		// The import must not proceed without a real card id.
		return 0, fmt.Errorf("store did not return a card identifier")
	}

	templateBenefits, err := s.catalogRepo.ListBenefitsByTemplate(ctx, templateID)
	if err != nil {
		s.compensate(ctx, newCard.ID)
		return 0, fmt.Errorf("%w: %v", ErrPartialImport, err)
	}

	// Some templates legitimately have no catalog benefits yet.
	if len(templateBenefits) == 0 {
		return newCard.ID, nil
	}

	clones := make([]models.UserBenefit, 0, len(templateBenefits))
	for _, tb := range templateBenefits {
		benefitID := tb.ID
		clones = append(clones, models.UserBenefit{
			UserCardID:            newCard.ID,
			CardTemplateBenefitID: &benefitID,
			Title:                 tb.Title,
			Description:           tb.Description,
			Category:              tb.Category,
			BenefitType:           tb.BenefitType,
			Value:                 tb.Value,
			Terms:                 tb.Terms,
			ResetPeriod:           tb.ResetPeriod,
			IsCustom:              false,
		})
	}

	if err := s.benefitRepo.BulkInsert(ctx, clones); err != nil {
		s.compensate(ctx, newCard.ID)
		return 0, fmt.Errorf("%w: %v", ErrPartialImport, err)
	}

	return newCard.ID, nil
}

// compensate deletes the orphan card after a failed import. A failed
// compensation leaves the orphan in place; it is logged, not hidden.
func (s *service) compensate(ctx context.Context, cardID uint) {
	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		log.Printf("Compensating delete of card %d failed: %v", cardID, err)
	}
}

func (s *service) ListCards(ctx context.Context, userID uint) ([]models.UserCardView, error) {
	return s.cardRepo.ListByUser(ctx, userID)
}

func (s *service) DeleteCard(ctx context.Context, userID, cardID uint) error {
	// Ownership check first; deleting someone else's card reads the
	// same as a missing card.
	if _, err := s.cardRepo.GetOwned(ctx, userID, cardID); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to look up card %d: %w", cardID, err)
	}
	return s.cardRepo.DeleteWithBenefits(ctx, cardID)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
