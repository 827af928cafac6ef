package orchestrator

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Dialect selects the placeholder syntax InsertBatch builds its statements
// with, since pgx's database/sql driver and go-mssqldb don't agree on one.
type Dialect string

const (
	DialectPostgres  Dialect = "postgres"
	DialectSQLServer Dialect = "sqlserver"
)

// InsertBatch writes entities to table, one row per entity, using
// reflection to turn each entity's exported scalar fields into columns.
// Slice and nested-struct fields (occurs-group children, which belong in
// their own child table) are skipped.
func InsertBatch(ctx context.Context, db DB, dialect Dialect, table string, entities []any) error {
	for _, entity := range entities {
		cols, vals, err := scalarColumns(entity)
		if err != nil {
			return fmt.Errorf("persisting into %s: %w", table, err)
		}
		if len(cols) == 0 {
			continue
		}

		placeholders := make([]string, len(cols))
		for i := range cols {
			placeholders[i] = placeholder(dialect, i+1)
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
		if _, err := db.ExecContext(ctx, query, vals...); err != nil {
			return fmt.Errorf("persisting into %s: %w", table, err)
		}
	}
	return nil
}

func placeholder(dialect Dialect, n int) string {
	if dialect == DialectSQLServer {
		return fmt.Sprintf("@p%d", n)
	}
	return fmt.Sprintf("$%d", n)
}

// scalarColumns reflects over entity's exported fields and returns the
// subset that map to a single SQL column: basic kinds, time.Time, and
// decimal.Decimal. Slices, maps, and nested structs are skipped rather than
// rejected, since a graph-mode parent entity legitimately carries a Lines
// []OrderLine field alongside its own scalar columns.
func scalarColumns(entity any) ([]string, []any, error) {
	rv := reflect.ValueOf(entity)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, fmt.Errorf("nil entity")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("entity of kind %s is not a struct", rv.Kind())
	}

	rt := rv.Type()
	var cols []string
	var vals []any
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if !isScalar(fv) {
			continue
		}
		cols = append(cols, f.Name)
		vals = append(vals, fv.Interface())
	}
	return cols, vals, nil
}

func isScalar(v reflect.Value) bool {
	switch v.Interface().(type) {
	case time.Time, decimal.Decimal:
		return true
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct, reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return false
	default:
		return true
	}
}
