package db

import (
	"errors"
	"fmt"
	"time"

	"auth-api/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MigrateOptions selects where the SQL comes from and how far to go
type MigrateOptions struct {
	Dir     string // read migrations from disk instead of the embedded set
	Version uint   // 0 means latest
	Force   bool   // clear a dirty state left by a failed run before migrating
}

// openSource returns the embedded migrations, or the ones under dir when set
func openSource(dir string) (source.Driver, string, error) {
	if dir == "" {
		driver, err := iofs.New(migrations.FS, ".")
		return driver, "iofs", err
	}

	driver, err := (&file.File{}).Open("file://" + dir)
	return driver, "file", err
}

// Migrate applies the SQL migrations with golang-migrate
func Migrate(database *gorm.DB, opts MigrateOptions, log logrus.FieldLogger) error {
	if database == nil {
		return fmt.Errorf("database not initialized")
	}

	src, srcName, err := openSource(opts.Dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance(srcName, src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if opts.Force {
		if err := clearDirty(m, log); err != nil {
			return err
		}
	}

	start := time.Now()
	if opts.Version > 0 {
		err = m.Migrate(opts.Version)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	log.WithFields(logrus.Fields{
		"version":  version,
		"dirty":    dirty,
		"source":   srcName,
		"duration": time.Since(start),
	}).Info("Migrations applied")
	return nil
}

// clearDirty re-marks the current version as clean so the next run can proceed
func clearDirty(m *migrate.Migrate, log logrus.FieldLogger) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) || (err == nil && !dirty) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	log.WithField("version", version).Warn("Forcing dirty migration version")
	if err := m.Force(int(version)); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}
	return nil
}

// AutoMigrate creates or alters tables from the gorm models. Development only.
func AutoMigrate(database *gorm.DB, log logrus.FieldLogger, models ...any) error {
	if database == nil {
		return fmt.Errorf("database not initialized")
	}

	start := time.Now()
	if err := database.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.WithField("duration", time.Since(start)).Info("Auto-migration completed")
	return nil
}
