package services

import (
	"context"

	applog "chiragbattery/internal/log"
	"chiragbattery/internal/repos"
)

// SeedCatalog fills an empty catalog with the sample products.
// It is best effort: failures are logged and startup continues.
func SeedCatalog(ctx context.Context, st repos.Store) {
	if st == nil {
		applog.Warn(nil, "seed.skip", map[string]any{"reason": "store not connected"})
		return
	}
	n, err := repos.SeedIfEmpty(ctx, repos.NewProductRepo(st))
	if err != nil {
		applog.Error(nil, "seed.fail", err, map[string]any{"inserted": n})
		return
	}
	applog.Info(nil, "seed.done", map[string]any{"inserted": n})
}
