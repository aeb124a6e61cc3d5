package handlers

import (
	"errors"

	"credlytics/internal/services/benefit"
	"credlytics/internal/utils"
	"credlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type BenefitHandler struct {
	benefitService benefit.Service
}

func NewBenefitHandler(benefitService benefit.Service) *BenefitHandler {
	return &BenefitHandler{benefitService: benefitService}
}

// GetBenefits returns the user's benefits. Query parameters narrow
// the view: category (exact or "all"), card (card id or "all") and
// show_used ("false" hides used benefits). The response carries both
// the flat filtered list and the category-grouped view.
func (h *BenefitHandler) GetBenefits(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	benefits, err := h.benefitService.ListBenefits(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch benefits")
	}

	opts := benefit.FilterOptions{
		Category: c.Query("category", "all"),
		CardID:   uint(c.QueryInt("card", 0)),
		ShowUsed: c.Query("show_used", "true") != "false",
	}

	filtered := benefit.Filter(benefits, opts)
	grouped := benefit.GroupByCategory(filtered)

	return response.Success(c, "Benefits retrieved successfully", fiber.Map{
		"benefits": filtered,
		"grouped":  grouped,
		"total":    len(filtered),
	})
}

// ToggleUsed flips a benefit's used flag. The body carries the state
// the client last saw.
func (h *BenefitHandler) ToggleUsed(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	benefitID, err := c.ParamsInt("id")
	if err != nil || benefitID <= 0 {
		return response.BadRequest(c, "Invalid benefit ID")
	}

	var input struct {
		CurrentUsed bool `json:"current_used"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.benefitService.ToggleUsed(c.Context(), claims.UserID, uint(benefitID), input.CurrentUsed); err != nil {
		if errors.Is(err, benefit.ErrBenefitNotFound) {
			return response.NotFound(c, "Benefit not found")
		}
		return response.ServerError(c, "Failed to update benefit")
	}

	return response.Success(c, "Benefit updated successfully", nil)
}

// DeleteBenefit removes a benefit independently of its card.
func (h *BenefitHandler) DeleteBenefit(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	benefitID, err := c.ParamsInt("id")
	if err != nil || benefitID <= 0 {
		return response.BadRequest(c, "Invalid benefit ID")
	}

	if err := h.benefitService.DeleteBenefit(c.Context(), claims.UserID, uint(benefitID)); err != nil {
		return response.ServerError(c, "Failed to delete benefit")
	}

	return response.Success(c, "Benefit deleted", nil)
}
