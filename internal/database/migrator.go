package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
)

// Embed all SQL files under migrations/ at compile time so the binary
// carries its schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// VersionTable is where tern records the applied schema version.
const VersionTable = "schema_version"

// Migrate ensures the markets and products tables exist.
//
// It runs on every invocation. tern serializes concurrent runs with an
// advisory lock and skips migrations already recorded in VersionTable;
// the statements themselves use IF NOT EXISTS so stores created before
// the version table existed are accepted as they are.
func (db *Database) Migrate(ctx context.Context) error {
	return db.WithConn(ctx, func(conn *pgx.Conn) error {
		m, err := tern.NewMigrator(ctx, conn, VersionTable)
		if err != nil {
			return fmt.Errorf("constructing database migrator: %w", err)
		}

		subtree, err := fs.Sub(migrations, "migrations")
		if err != nil {
			return fmt.Errorf("retrieving database migrations subtree: %w", err)
		}

		if err := m.LoadMigrations(subtree); err != nil {
			return fmt.Errorf("loading database migrations: %w", err)
		}

		from, err := m.GetCurrentVersion(ctx)
		if err != nil {
			return fmt.Errorf("retrieving current database migration version: %w", err)
		}

		if err := m.Migrate(ctx); err != nil {
			return fmt.Errorf("applying database migrations: %w", err)
		}

		if from == int32(len(m.Migrations)) {
			db.log.Debug().Msgf("database schema up to date, version %d", len(m.Migrations))
		} else {
			db.log.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
		}
		return nil
	})
}
