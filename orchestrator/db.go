// Package orchestrator is the external collaborator spec.md describes only
// through the interfaces the core parsing engine consumes: it walks a job
// manifest, streams lines, calls fwparse.ParseSingle/ParseGraph, batches
// the resulting entities, and persists them. None of this package is part
// of the parsing engine's contract; it exists to exercise it end to end.
package orchestrator

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
)

// DB is the narrow slice of *sql.DB that InsertBatch writes through, kept
// small like the teacher's own persistence interface so test doubles are
// trivial to write.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Conn(ctx context.Context) (*sql.Conn, error)
}

// NewPostgresDB opens a Postgres connection pool through pgx's database/sql
// compatibility shim.
func NewPostgresDB(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewSQLServerDB opens a SQL Server connection pool through the
// microsoft/go-mssqldb driver.
func NewSQLServerDB(dsn string) (*sql.DB, error) {
	return sql.Open("sqlserver", dsn)
}
