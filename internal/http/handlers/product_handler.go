package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "vibecart/internal/log"
	"vibecart/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List returns the whole catalog, unfiltered and unpaginated.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}
