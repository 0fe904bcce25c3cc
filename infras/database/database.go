package database

//nolint:revive
import (
	"context"
	"database/sql"
	"fmt"
	"kidstrainer/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Handle is the storage handle every repository and service operation runs
// against. A per-request *sqlx.Conn, a *sqlx.Tx opened on it, or the pool
// itself all satisfy it.
type Handle interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

type Connection struct {
	DB     *sqlx.DB
	Driver string
}

func New(cfg *config.Config) *Connection {
	driver, dsn := DataSource(cfg)

	db := CreateConnection(driver, dsn, cfg.DB.MaxRetry, cfg.DB.RetryWaitTime)
	if db == nil {
		log.Fatal().Str("driver", driver).Msg("Could not connect to database")
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}

	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}

	return &Connection{
		DB:     db,
		Driver: driver,
	}
}

// DataSource returns the driver name and DSN for the configured store.
func DataSource(cfg *config.Config) (string, string) {
	if cfg.DB.Driver == config.DriverPostgres {
		return config.DriverPostgres, fmt.Sprintf(
			"postgres://%s:%s@%s/%s?sslmode=%s",
			cfg.DB.Postgres.Username,
			cfg.DB.Postgres.Password,
			net.JoinHostPort(cfg.DB.Postgres.Host, cfg.DB.Postgres.Port),
			cfg.DB.Postgres.Name,
			cfg.DB.Postgres.SSLMode,
		)
	}

	// Foreign keys stay off: bookings may reference a trainer id that does
	// not exist.
	return config.DriverSQLite, fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(0)",
		cfg.DB.SQLite.Path, cfg.DB.SQLite.BusyTimeoutMs)
}

// CreateConnection opens the pool and pings it, retrying maxRetry times.
func CreateConnection(driver, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := 0; retry < max(maxRetry, 1); retry++ {
		sqlDB, err := sqlx.Connect(driver, dsn)
		if err == nil {
			log.
				Info().
				Str("driver", driver).
				Msg("Connected to database")

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("driver", driver).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

// Acquire checks out one connection for the lifetime of a request. Callers
// must hand it back with Release on every path.
func (c *Connection) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := c.DB.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	return conn, nil
}

func (c *Connection) Release(conn *sqlx.Conn) {
	if err := conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to release connection")
	}
}

func (c *Connection) Close() error {
	return c.DB.Close() //nolint:wrapcheck
}

// InTx runs fn inside a transaction on conn, committing when fn succeeds.
func InTx(ctx context.Context, conn *sqlx.Conn, fn func(tx Handle) error) (err error) {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
