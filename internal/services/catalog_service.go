package services

import (
	"context"

	"chiragbattery/internal/domain"
	"chiragbattery/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Brands() []string { return domain.Brands }
func (s *CatalogService) Types() []string  { return domain.Types }

// ListProducts applies the optional filters. Brand and type are matched as
// given, so values outside the enumerations simply find nothing.
func (s *CatalogService) ListProducts(ctx context.Context, q repos.ProductQuery) ([]domain.Product, error) {
	return s.Prods.Search(ctx, q)
}

func (s *CatalogService) AddProduct(ctx context.Context, p domain.Product) (string, error) {
	return s.Prods.Insert(ctx, p)
}
