package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"chiragbattery/internal/domain"
)

// ProductQuery holds the optional listing filters. Empty strings are ignored.
type ProductQuery struct {
	Brand string
	Type  string
	Q     string
	Limit int
}

func (q ProductQuery) filter() Filter {
	var f Filter
	if q.Brand != "" {
		f = append(f, Eq("brand", q.Brand))
	}
	if q.Type != "" {
		f = append(f, Eq("type", q.Type))
	}
	if q.Q != "" {
		f = append(f, ContainsFold("name", q.Q))
	}
	return f
}

type ProductRepo struct{ st Store }

func NewProductRepo(st Store) *ProductRepo { return &ProductRepo{st: st} }

func (r *ProductRepo) Insert(ctx context.Context, p domain.Product) (string, error) {
	if r.st == nil {
		return "", ErrUnavailable
	}
	return r.st.Insert(ctx, domain.ProductCollection, p)
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	if r.st == nil {
		return 0, ErrUnavailable
	}
	return r.st.Count(ctx, domain.ProductCollection)
}

func (r *ProductRepo) Search(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	if r.st == nil {
		return nil, ErrUnavailable
	}
	docs, err := r.st.Find(ctx, domain.ProductCollection, q.filter(), q.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		var p domain.Product
		if err := decode(d, &p); err != nil {
			return nil, fmt.Errorf("product document: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// decode maps a loosely typed document onto a record struct through its json tags.
func decode(d Document, dst any) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
