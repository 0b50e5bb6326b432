package handlers

import (
	"github.com/gofiber/fiber/v2"

	"chiragbattery/internal/domain"
	"chiragbattery/internal/services"
)

type MetaHandler struct {
	Catalog *services.CatalogService
}

func (h *MetaHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"shop": domain.ShopName, "location": domain.HomeCity, "message": "Welcome to the API"})
}

func (h *MetaHandler) Brands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"brands": h.Catalog.Brands()})
}

func (h *MetaHandler) Types(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"types": h.Catalog.Types()})
}

// Schema lists the record fields as declared, not as found in the store.
func (h *MetaHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"collections": domain.Schemas()})
}
