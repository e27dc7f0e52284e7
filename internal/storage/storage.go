// Package storage selects the listing repository backend from configuration.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"realty_listings/internal/domain"
	"realty_listings/internal/shared"
	"realty_listings/internal/storage/mongostore"
	"realty_listings/internal/storage/sqlstore"
)

// Repository is a PropertyRepository holding a connection that must be closed.
type Repository interface {
	domain.PropertyRepository
	io.Closer
}

// Open connects to the backend named by cfg.StorageBackend.
func Open(ctx context.Context, cfg shared.Config) (Repository, error) {
	switch cfg.StorageBackend {
	case "mysql":
		r, err := sqlstore.Open(ctx, "mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); cfg.SQLitePath != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		r, err := sqlstore.Open(ctx, "sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "mongo":
		r, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want mysql, sqlite or mongo)", cfg.StorageBackend)
	}
}

// MustOpen is Open for binaries: it exits on failure.
func MustOpen(ctx context.Context, cfg shared.Config) Repository {
	repo, err := Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("open storage failed")
	}
	log.Info().Str("backend", cfg.StorageBackend).Msg("storage connection ok")
	return repo
}
