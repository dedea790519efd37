// Package database contains the logic for reaching the PostgreSQL
// store.
//
// There is no pool. Every operation acquires its own connection, runs
// its statements and releases the connection on every exit path
// (WithConn / WithTx).
//
// It handles:
//   - building a DSN from config
//   - opening single pgx connections on demand
//   - wiring query tracing/logging (pgx tracelog, slow query log)
//   - applying the embedded schema migrations (Migrate)
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/deppfellow/products/internal/config"
	loggerConfig "github.com/deppfellow/products/internal/logger"
)

// Database holds the parsed connection descriptor and a logger.
// It is cheap to create; nothing is dialed until an operation runs.
type Database struct {
	connConfig *pgx.ConnConfig
	log        *zerolog.Logger
}

// BuildDSN builds a postgres:// URL from the descriptor.
// User and password are escaped and IPv6 hosts are bracketed.
func BuildDSN(cfg config.DatabaseConfig) string {
	user := url.User(cfg.User)
	if cfg.Password != "" {
		user = url.UserPassword(cfg.User, cfg.Password)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// New parses the descriptor and attaches tracers.
//
// In local env every statement is logged through pgx tracelog; in every
// env statements slower than the configured threshold are logged at warn.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	connConfig, err := pgx.ParseConfig(BuildDSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx connection config: %w", err)
	}

	if cfg.Database.ConnectTimeout > 0 {
		connConfig.ConnectTimeout = cfg.Database.ConnectTimeout
	}

	var tracers []pgx.QueryTracer

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{
			threshold: cfg.Observability.Logging.SlowQueryThreshold,
			log:       logger,
		})
	}

	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		})
	}

	switch len(tracers) {
	case 0:
	case 1:
		connConfig.Tracer = tracers[0]
	default:
		connConfig.Tracer = &multiTracer{tracers: tracers}
	}

	return &Database{
		connConfig: connConfig,
		log:        logger,
	}, nil
}

// Connect opens a new connection. The caller owns it and must close it.
func (db *Database) Connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.ConnectConfig(ctx, db.connConfig.Copy())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.log.Debug().
		Str("host", db.connConfig.Host).
		Str("database", db.connConfig.Database).
		Msg("connected to the database")

	return conn, nil
}

// WithConn acquires a connection, runs fn and closes the connection,
// whatever fn returns.
func (db *Database) WithConn(ctx context.Context, fn func(conn *pgx.Conn) error) error {
	conn, err := db.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(ctx); cerr != nil {
			db.log.Warn().Err(cerr).Msg("failed to close database connection")
		}
		db.log.Debug().Msg("closed database connection")
	}()

	return fn(conn)
}

// WithTx runs fn inside a transaction on a fresh connection. The
// transaction is committed when fn returns nil and rolled back otherwise.
func (db *Database) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return db.WithConn(ctx, func(conn *pgx.Conn) error {
		return pgx.BeginFunc(ctx, conn, fn)
	})
}
