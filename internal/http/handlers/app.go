package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	applog "chiragbattery/internal/log"
)

const maxBody = 1 << 20 // 1 MiB

// NewApp builds the fiber app with middleware and every route.
// accessLog, when non-nil, receives one fiber logger line per request.
func NewApp(d *Deps, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "chiragbattery",
		BodyLimit:    maxBody,
		ErrorHandler: errorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	if accessLog != nil {
		app.Use(logger.New(logger.Config{Output: accessLog}))
	}
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(reflectPreflightMethod)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "", // reflect whatever the preflight asks for
	}))

	rate := d.InquiryRateLimit
	if rate <= 0 {
		rate = 10
	}
	inquiryLimiter := limiter.New(limiter.Config{
		Max:        rate,
		Expiration: time.Minute,
		Storage:    d.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|inquiry"
		},
		LimitReached: d.InquiryHandler.LimitReached,
	})

	// ---------- Routes ----------
	app.Get("/", d.MetaHandler.Root)
	app.Get("/schema", d.MetaHandler.Schema)
	app.Get("/test", d.DiagHandler.Test)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api")
	api.Get("/brands", d.MetaHandler.Brands)
	api.Get("/types", d.MetaHandler.Types)
	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", d.ProductHandler.Create)
	api.Post("/inquiries", inquiryLimiter, d.InquiryHandler.Create)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not Found"})
	})
	return app
}

// reflectPreflightMethod allows whatever method a preflight asks for. cors
// answers preflights itself, so the header is rewritten after it returns.
func reflectPreflightMethod(c *fiber.Ctx) error {
	err := c.Next()
	if c.Method() == fiber.MethodOptions {
		if m := c.Get(fiber.HeaderAccessControlRequestMethod); m != "" && c.Get(fiber.HeaderOrigin) != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, m)
		}
	}
	return err
}

// errorHandler keeps fiber status codes but never echoes internals on 5xx.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return c.Status(code).JSON(fiber.Map{"detail": msg})
}
