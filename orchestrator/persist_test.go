package orchestrator

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	queries []string
	args    [][]any
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.queries = append(f.queries, query)
	f.args = append(f.args, args)
	return nil, nil
}

func (f *fakeDB) Conn(_ context.Context) (*sql.Conn, error) {
	return nil, nil
}

type persistCustomer struct {
	ID       int64
	Name     string
	Balance  decimal.Decimal
	OpenedOn time.Time
}

func TestInsertBatch_BuildsOneInsertPerEntityPostgres(t *testing.T) {
	db := &fakeDB{}
	entities := []any{
		&persistCustomer{ID: 1, Name: "Smith", Balance: decimal.NewFromInt(100), OpenedOn: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		&persistCustomer{ID: 2, Name: "Jones", Balance: decimal.NewFromInt(0), OpenedOn: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, InsertBatch(context.Background(), db, DialectPostgres, "customer", entities))

	require.Len(t, db.queries, 2)
	assert.Equal(t, "INSERT INTO customer (ID, Name, Balance, OpenedOn) VALUES ($1, $2, $3, $4)", db.queries[0])
	assert.Equal(t, []any{int64(1), "Smith", decimal.NewFromInt(100), entities[0].(*persistCustomer).OpenedOn}, db.args[0])
}

func TestInsertBatch_SQLServerUsesNamedPlaceholders(t *testing.T) {
	db := &fakeDB{}
	entities := []any{&persistCustomer{ID: 1, Name: "Smith"}}

	require.NoError(t, InsertBatch(context.Background(), db, DialectSQLServer, "customer", entities))

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0], "@p1, @p2, @p3, @p4")
}

func TestInsertBatch_SkipsSliceAndNestedStructFields(t *testing.T) {
	type orderLine struct {
		SKU string
	}
	type order struct {
		OrderID int64
		Lines   []orderLine
	}

	db := &fakeDB{}
	require.NoError(t, InsertBatch(context.Background(), db, DialectPostgres, "order", []any{&order{OrderID: 5, Lines: []orderLine{{SKU: "A"}}}}))

	require.Len(t, db.queries, 1)
	assert.Equal(t, "INSERT INTO order (OrderID) VALUES ($1)", db.queries[0])
}

func TestInsertBatch_RejectsNonStructEntity(t *testing.T) {
	db := &fakeDB{}
	err := InsertBatch(context.Background(), db, DialectPostgres, "customer", []any{"not a struct"})
	require.Error(t, err)
}
