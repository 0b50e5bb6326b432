package repos

import (
	"context"
	"fmt"

	"chiragbattery/internal/domain"
)

// SeedIfEmpty inserts the sample catalog when no product exists yet and
// reports how many records it wrote.
func SeedIfEmpty(ctx context.Context, products *ProductRepo) (int, error) {
	n, err := products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	inserted := 0
	for _, p := range domain.SampleProducts() {
		if _, err := products.Insert(ctx, p); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
