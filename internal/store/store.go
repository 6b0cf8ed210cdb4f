// Package store persists rule profiles and an audit trail of evaluated
// scenarios to Postgres. It is a separate collaborator from the engine's
// in-memory EV cache (internal/blackjack): nothing here is consulted during
// a computation, only recorded after one.
package store

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB wraps a pgx connection pool.
type DB struct{ *pgxpool.Pool }

// Open creates a connection pool for dsn. It does not verify connectivity;
// call Ping for that.
func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

// Migrate applies the embedded schema. It is idempotent: every statement
// uses CREATE ... IF NOT EXISTS.
func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}
