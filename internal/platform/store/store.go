// Package store provides the Postgres client used by the history service.
// It wraps pgxpool with config parsing and a bounded readiness ping
package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	perr "protscan/internal/platform/errors"
	"protscan/internal/platform/logger"
)

// Config configures the Postgres pool
type Config struct {
	URL      string
	MaxConns int32
}

// Store is a postgres client with a shared pool
type Store struct {
	Pool *pgxpool.Pool
	Log  logger.Logger
}

// Queryer is the minimal query surface repos depend on.
// Both *pgxpool.Pool and pgx.Tx satisfy it
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Open creates a pool and pings it with retry/backoff before returning
func Open(ctx context.Context, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "store: parse pg url")
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "store: open pool")
	}

	const (
		maxAttempts    = 10
		pingTimeout    = 3 * time.Second
		backoffStart   = 150 * time.Millisecond
		backoffCeiling = 2 * time.Second
	)

	var lastErr error
	backoff := backoffStart
	for i := 0; i < maxAttempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			s := &Store{Pool: pool, Log: *logger.Named("store")}
			s.Log.Info().Int("attempts", i+1).Msg("postgres ready")
			return s, nil
		}
		if ctx.Err() != nil {
			pool.Close()
			return nil, ctx.Err()
		}
		time.Sleep(backoff)
		if backoff < backoffCeiling {
			backoff *= 2
			if backoff > backoffCeiling {
				backoff = backoffCeiling
			}
		}
	}
	pool.Close()
	return nil, perr.Wrapf(lastErr, perr.ErrorCodeDB, "store: pg unreachable after %d attempts", maxAttempts)
}

// Close closes the pool
func (s *Store) Close() {
	if s != nil && s.Pool != nil {
		s.Pool.Close()
		s.Log.Debug().Msg("pg pool closed")
	}
}
