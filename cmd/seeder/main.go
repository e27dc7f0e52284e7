package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"realty_listings/internal/adapters/observability"
	redisad "realty_listings/internal/adapters/redis"
	"realty_listings/internal/app"
	"realty_listings/internal/domain"
	"realty_listings/internal/seed"
	"realty_listings/internal/shared"
	"realty_listings/internal/storage"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	records, err := seed.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load seed dataset failed")
	}
	log.Info().
		Str("backend", cfg.StorageBackend).
		Int("workers", cfg.SeedWorkers).
		Int("records", len(records)).
		Msg("seeder starting")

	repo := storage.MustOpen(ctx, cfg)
	defer repo.Close()

	// writes bump the listing cache version so a running API does not serve stale pages
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	n, err := seed.Run(ctx, app.NewPropertyService(repo, cache), records, cfg.SeedWorkers)
	if err != nil {
		log.Error().Err(err).Int("created", n).Msg("seeding stopped early")
		return
	}
	log.Info().Int("created", n).Int("records", len(records)).Msg("seeding completed")
}
