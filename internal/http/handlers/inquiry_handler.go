package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "chiragbattery/internal/log"
	"chiragbattery/internal/services"
	"chiragbattery/internal/validate"
)

const inquiryAck = "Thanks! We will contact you shortly."

type InquiryHandler struct {
	Inquiries *services.InquiryService
}

// POST /api/inquiries
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	in, err := validate.Inquiry(c.Body())
	if err != nil {
		return validationError(c, err)
	}
	id, err := h.Inquiries.Submit(c.UserContext(), in)
	if err != nil {
		return storeError(c, "inquiries.create.fail", err)
	}
	applog.Audit(c, "inquiries.create", map[string]any{"id": id, "preferred_contact": in.PreferredContact})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": inquiryAck})
}

// LimitReached answers the inquiry rate limiter.
func (h *InquiryHandler) LimitReached(c *fiber.Ctx) error {
	applog.Warn(c, "rate.inquiry.hit", nil)
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"detail": "Too many inquiries, please retry shortly."})
}
