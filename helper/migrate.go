package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"kidstrainer/config"
	"kidstrainer/migrations"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

func getDatabaseURL(cfg *config.Config) string {
	query := url.Values{}
	query.Set("x-migrations-table", cfg.DB.MigrationTable)

	if cfg.DB.Driver == config.DriverPostgres {
		query.Set("sslmode", cfg.DB.Postgres.SSLMode)

		return fmt.Sprintf("postgres://%s:%s@%s/%s?%s",
			cfg.DB.Postgres.Username,
			cfg.DB.Postgres.Password,
			net.JoinHostPort(cfg.DB.Postgres.Host, cfg.DB.Postgres.Port),
			cfg.DB.Postgres.Name,
			query.Encode(),
		)
	}

	return fmt.Sprintf("sqlite://%s?%s", cfg.DB.SQLite.Path, query.Encode())
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	driver := cfg.DB.Driver
	if driver != config.DriverPostgres {
		driver = config.DriverSQLite
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, getDatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Error().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", cfg.DB.Driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

// Up brings the schema to the latest version. Running it against an
// up-to-date store is a no-op, so it is safe on every startup.
func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
