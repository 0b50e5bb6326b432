package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "chiragbattery/internal/log"
	"chiragbattery/internal/repos"
	"chiragbattery/internal/validate"
)

// storeError answers 500 without leaking driver text.
func storeError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	detail := "Database error"
	if errors.Is(err, repos.ErrUnavailable) {
		detail = "Database not connected"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": detail})
}

func validationError(c *fiber.Ctx, err error) error {
	var verr *validate.Error
	if !errors.As(err, &verr) {
		verr = &validate.Error{Fields: []validate.FieldError{{Field: "body", Message: err.Error()}}}
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	applog.Warn(c, "validation.fail", map[string]any{"fields": names})
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": verr.Fields})
}
