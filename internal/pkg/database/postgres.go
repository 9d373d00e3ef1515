package database

import (
	"fmt"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/models"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresClient wraps a sqlx handle over the pgx stdlib driver.
type PostgresClient struct {
	db *sqlx.DB
}

// NewPostgresClient opens a connection pool with the restricted credentials.
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	return newClient(config, config.Username, config.Password)
}

// NewPrivilegedPostgresClient opens a pool with the privileged credentials,
// used for provisioning and for fallback lookups when the restricted path is
// denied by row-level security.
func NewPrivilegedPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	return newClient(config, config.AdminUsername, config.AdminPassword)
}

func newClient(config models.DatabaseConfig, username, password string) (*PostgresClient, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		username,
		password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return &PostgresClient{db: db}, nil
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Close closes the connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
