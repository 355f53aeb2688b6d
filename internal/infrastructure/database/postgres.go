package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"github.com/rs/zerolog/log"
)

// DBConfig groups everything needed to connect to PostgreSQL.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the database handle together with its configuration.
type PostgresDB struct {
	DB     *sql.DB
	Config *DBConfig
}

func (db *PostgresDB) connectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
		db.Config.SSLMode,
	)
}

// Connect opens the pool and verifies connectivity, retrying with a fixed
// delay up to MaxRetries times so the service survives a database that is
// still starting up.
func Connect(ctx context.Context, cfg *DBConfig) (*PostgresDB, error) {
	pg := &PostgresDB{Config: cfg}

	db, err := sql.Open("pgx", pg.connectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	var pingErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		pingErr = db.PingContext(pingCtx)
		cancel()

		if pingErr == nil {
			pg.DB = db
			log.Info().
				Str("host", cfg.Host).
				Int("port", cfg.Port).
				Str("database", cfg.DBName).
				Msg("connected to PostgreSQL")
			return pg, nil
		}

		log.Warn().
			Err(pingErr).
			Int("attempt", attempt+1).
			Msg("database not reachable, retrying")

		select {
		case <-time.After(cfg.RetryDelay):
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.MaxRetries+1, pingErr)
}

// HealthCheck pings the database with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying pool.
func (db *PostgresDB) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}
