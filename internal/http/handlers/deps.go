package handlers

import (
	"github.com/gofiber/fiber/v2"

	"chiragbattery/internal/config"
	"chiragbattery/internal/repos"
	"chiragbattery/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	InquiryHandler *InquiryHandler
	MetaHandler    *MetaHandler
	DiagHandler    *DiagHandler

	// LimiterStorage backs the inquiry rate limiter; nil keeps counters in memory.
	LimiterStorage   fiber.Storage
	InquiryRateLimit int
}

// NewDeps wires handlers to st. st may be nil when the store could not be
// reached at startup; data routes then answer 500.
func NewDeps(st repos.Store, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(st)
	inqRepo := repos.NewInquiryRepo(st)

	catalogSvc := services.NewCatalogService(prodRepo)
	inquirySvc := services.NewInquiryService(inqRepo)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		InquiryHandler:   &InquiryHandler{Inquiries: inquirySvc},
		MetaHandler:      &MetaHandler{Catalog: catalogSvc},
		DiagHandler:      &DiagHandler{Store: st},
		InquiryRateLimit: cfg.InquiryRateLimit,
	}
}
