package main

import (
	"context"
	"io"
	"log"
	"os"

	"chiragbattery/internal/cache"
	"chiragbattery/internal/config"
	"chiragbattery/internal/http/handlers"
	applog "chiragbattery/internal/log"
	"chiragbattery/internal/repos"
	"chiragbattery/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// The API still starts without a store; data routes then answer 500.
	ctx := context.Background()
	var st repos.Store
	if s, err := repos.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.DatabaseTimeout); err != nil {
		applog.Error(nil, "store.connect.fail", err, nil)
	} else {
		st = s
		defer st.Close()
		applog.Info(nil, "store.connect", map[string]any{"name": st.Name()})
	}

	services.SeedCatalog(ctx, st)

	deps := handlers.NewDeps(st, cfg)
	if cfg.RedisURL != "" {
		rc, err := cache.InitRedis(cfg.RedisURL)
		if err != nil {
			applog.Error(nil, "redis.connect.fail", err, map[string]any{"fallback": "memory"})
		} else {
			storage := cache.NewStorage(rc, "chiragbattery:limiter:")
			defer storage.Close()
			deps.LimiterStorage = storage
		}
	}

	app := handlers.NewApp(deps, log.Writer())
	log.Printf("[http] listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
