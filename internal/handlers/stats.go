package handlers

import (
	"credlytics/internal/models"
	"credlytics/internal/services/benefit"
	"credlytics/internal/services/card"
	"credlytics/internal/services/stats"
	"credlytics/internal/utils"
	"credlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	cardService    card.Service
	benefitService benefit.Service
}

func NewStatsHandler(cardService card.Service, benefitService benefit.Service) *StatsHandler {
	return &StatsHandler{
		cardService:    cardService,
		benefitService: benefitService,
	}
}

// GetStats returns the dashboard summary. The potential-savings
// figure is a heuristic estimate over unused benefit values, not an
// exact amount.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	cards, err := h.cardService.ListCards(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}

	views, err := h.benefitService.ListBenefits(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch benefits")
	}

	benefits := make([]models.UserBenefit, 0, len(views))
	for _, v := range views {
		benefits = append(benefits, v.UserBenefit)
	}

	summary := stats.Compute(len(cards), benefits)

	return response.Success(c, "Stats computed successfully", summary)
}
