package database

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Dan9191/thingful-users/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Connect opens the PostgreSQL pool and verifies it is reachable
func Connect(cfg *config.Config, log *logrus.Logger) (*sqlx.DB, error) {
	start := time.Now()

	db, err := sqlx.Connect("postgres", cfg.DBConn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("PostgreSQL connection established")
	return db, nil
}

// Migrate applies every pending migration from src to the database at dsn.
// The migrator opens and closes its own connection, leaving the app pool untouched.
func Migrate(dsn string, src fs.FS, log *logrus.Logger) (err error) {
	source, err := iofs.New(src, ".")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Database schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.WithField("version", version).Info("Migrations applied")
	return nil
}
