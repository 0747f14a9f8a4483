package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/Gthulhu/scenario-controller/config"
	"github.com/Gthulhu/scenario-controller/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.json
var migrationFS embed.FS

// RunMongoMigration applies the pending run history migrations
func RunMongoMigration(cfg config.MongoDBConfig) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migration source, err: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, mongoURI(cfg, cfg.Database))
	if err != nil {
		return fmt.Errorf("init mongodb migration, err: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply mongodb migration, err: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Logger(context.Background()).Info().Uint("version", version).Bool("dirty", dirty).Msg("mongodb migration done")
	return nil
}
