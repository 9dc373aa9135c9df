package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carterbs/brad-os-sub006/internal/config"
	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docstore/memory"
	"github.com/carterbs/brad-os-sub006/internal/docstore/miniostore"
	"github.com/carterbs/brad-os-sub006/internal/docstore/postgres"
	"github.com/carterbs/brad-os-sub006/internal/logging"
	"github.com/carterbs/brad-os-sub006/internal/seed"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stderr)
	ctx := context.Background()

	var store docstore.Store
	switch cfg.Seed.Backend {
	case "postgres":
		db, err := postgres.Open(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure documents schema")
		}
		store = postgres.New(db)
	case "minio":
		s, err := miniostore.New(cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
		store = s
	case "memory":
		// Dry run: exercises the full seed path, writes nothing durable.
		store = memory.New()
	default:
		log.Fatal().Str("backend", cfg.Seed.Backend).Msg("unknown seed backend")
	}

	seeder := seed.New(store, cfg.Seed.MaxBatchSize, seed.WithLogger(log))
	if err := seeder.AddAll(ctx, seed.StarterDocs()); err != nil {
		log.Fatal().Err(err).Msg("failed to stage seed documents")
	}
	if err := seeder.Flush(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to commit seed documents")
	}

	log.Info().
		Str("backend", cfg.Seed.Backend).
		Int("documents", seeder.Seeded()).
		Msg("seeding complete")
}
