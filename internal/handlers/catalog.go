package handlers

import (
	"credlytics/internal/services/catalog"
	"credlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService catalog.Service
}

func NewCatalogHandler(catalogService catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetTemplates returns the full card catalog with benefits.
func (h *CatalogHandler) GetTemplates(c *fiber.Ctx) error {
	templates, err := h.catalogService.ListTemplates(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to load card catalog")
	}

	return response.Success(c, "Templates retrieved successfully", templates)
}
