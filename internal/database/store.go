package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/repository"
)

// OpenStore connects to the backend named by cfg.DatabaseURL, brings its
// schema up to date and returns the curriculum repository over it.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CurriculumRepository, error) {
	switch DriverFor(cfg.DatabaseURL) {
	case DriverPostgres:
		if err := MigratePostgres(cfg.DatabaseURL, log); err != nil {
			return nil, err
		}
		pool, err := NewPostgresPool(ctx, cfg.DatabaseURL, cfg.MaxDBConns, log)
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresCurriculumRepository(pool), nil

	default:
		db, err := NewSQLite(ctx, SQLitePath(cfg.DatabaseURL), log)
		if err != nil {
			return nil, err
		}
		if err := MigrateSQLite(db, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repository.NewSQLiteCurriculumRepository(db), nil
	}
}
