package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/jhoicas/personnel-api/pkg/config"
	"github.com/jhoicas/personnel-api/pkg/logger"
)

// RunMigrations ejecuta las migraciones de esquema si están habilitadas en
// la configuración.
func RunMigrations(cfg *config.Config, log *logger.Logger) error {
	if cfg == nil || !cfg.Migrations.Enabled {
		return nil
	}

	sqlDB, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión de migraciones: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping DB: %w", err)
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("driver de migraciones: %w", err)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(cfg.Migrations.Path))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, cfg.DB.DBName, driver)
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	if log != nil {
		log.Info().Str("path", cfg.Migrations.Path).Msg("migraciones aplicadas")
	}
	return nil
}
