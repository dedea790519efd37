// Package repository handles all interactions with the database.
//
// It contains the raw SQL for markets and products. Repositories do
// not open connections themselves: callers pass a *pgx.Conn or a
// pgx.Tx, which keeps connection scope and commit decisions in the
// service layer.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
