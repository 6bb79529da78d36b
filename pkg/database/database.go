// Package database provides PostgreSQL connection management with lifecycle
// coordination.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/attest-io/attest/pkg/lifecycle"
)

// System manages the connection pool and its lifecycle hooks.
type System interface {
	// Connection returns the underlying connection pool.
	Connection() *sql.DB
	// Ping verifies connectivity within the configured connection timeout.
	Ping(ctx context.Context) error
	// Start registers startup and shutdown hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
}

// New opens the pool for the given configuration. sql.Open validates the
// DSN and applies pool limits; no connection is dialed until first use or
// the startup ping.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &system{
		conn:        db,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (s *system) Connection() *sql.DB {
	return s.conn
}

func (s *system) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.connTimeout)
	defer cancel()
	return s.conn.PingContext(pingCtx)
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting database connection")

	lc.OnStartup(func() {
		if err := s.Ping(lc.Context()); err != nil {
			s.logger.Error("database ping failed", "error", err)
			return
		}
		s.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("closing database connection")

		if err := s.conn.Close(); err != nil {
			s.logger.Error("database close failed", "error", err)
			return
		}
		s.logger.Info("database connection closed")
	})

	return nil
}
