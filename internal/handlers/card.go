package handlers

import (
	"errors"

	"credlytics/internal/models"
	"credlytics/internal/services/card"
	"credlytics/internal/utils/response"
	"credlytics/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// GetCards returns the user's cards with template display fields.
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	cards, err := h.cardService.ListCards(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}

	return response.Success(c, "Cards retrieved successfully", cards)
}

// AddCard creates a card from a catalog template and imports its
// benefits.
func (h *CardHandler) AddCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input card.AddCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v := validation.New()
	if input.CardTemplateID == 0 && input.TemplateKey == "" {
		v.AddError("card_template_id", "a template id or key is required")
	}
	v.LastFourDigits("last_four_digits", input.LastFourDigits)
	v.CardColor("color", input.Color)
	if input.Nickname != nil {
		v.MaxLength("nickname", *input.Nickname, validation.MaxNicknameLength)
	}
	if !v.Valid() {
		for _, msg := range v.Errors {
			return response.ValidationError(c, msg)
		}
	}

	cardID, err := h.cardService.AddCard(c.Context(), claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrTemplateNotFound):
			return response.NotFound(c, "Card template not found")
		case errors.Is(err, card.ErrPartialImport):
			// Distinct from a plain failure: the import did not
			// complete and the caller should retry it, not add the
			// card again.
			return response.Conflict(c, "Card benefits could not be imported, please retry")
		default:
			return response.ServerError(c, "Failed to add card")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Card added successfully, benefits imported",
		"data":    fiber.Map{"card_id": cardID},
	})
}

// DeleteCard removes a card and all of its benefits.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	cardID, err := c.ParamsInt("id")
	if err != nil || cardID <= 0 {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.DeleteCard(c.Context(), claims.UserID, uint(cardID)); err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.ServerError(c, "Failed to delete card")
	}

	return response.Success(c, "Card deleted successfully", nil)
}
