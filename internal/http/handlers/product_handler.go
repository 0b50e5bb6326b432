package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "chiragbattery/internal/log"
	"chiragbattery/internal/repos"
	"chiragbattery/internal/services"
	"chiragbattery/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products?brand=&type=&q=&limit=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, ok := validate.Limit(c.Query("limit"))
	if !ok {
		return validationError(c, &validate.Error{Fields: []validate.FieldError{{Field: "limit", Message: "must be an integer"}}})
	}
	items, err := h.Catalog.ListProducts(c.UserContext(), repos.ProductQuery{
		Brand: c.Query("brand"),
		Type:  c.Query("type"),
		Q:     c.Query("q"),
		Limit: limit,
	})
	if err != nil {
		return storeError(c, "products.list.fail", err)
	}
	// total counts what is returned, not every match
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, err := validate.Product(c.Body())
	if err != nil {
		return validationError(c, err)
	}
	id, err := h.Catalog.AddProduct(c.UserContext(), p)
	if err != nil {
		return storeError(c, "products.create.fail", err)
	}
	applog.Audit(c, "products.create", map[string]any{"id": id, "brand": p.Brand, "type": p.Type})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "Product added"})
}
