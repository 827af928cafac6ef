// Package fixtures provides example domain entities and a pre-built
// registry, used by the CLI's default configuration and by tests that
// need a realistic parent/child entity graph instead of a minimal
// single-purpose struct.
package fixtures

import (
	"time"

	"github.com/cobolimport/flatfileimport/fwparse"
	"github.com/shopspring/decimal"
)

// Customer is a flat (single-mode) entity: one line, one record.
type Customer struct {
	ID            int64
	Name          string
	Balance       decimal.Decimal
	Active        bool
	OpenedOn      time.Time
	ImportedAtUtc time.Time
	ImportBatchId string
}

// Order is a graph-mode parent entity: one line produces the order header
// plus its repeating OrderLines.
type Order struct {
	OrderID       int64
	LineCount     int64
	Lines         []OrderLine
	ImportedAtUtc time.Time
	ImportBatchId string
}

// OrderLine is one item in an Order's occurs group.
type OrderLine struct {
	SKU      string
	Quantity int64
	Seq      int64
}

// NewRegistry returns a *fwparse.Registry with every fixture entity
// pre-registered under its layout-facing name.
func NewRegistry() *fwparse.Registry {
	reg := fwparse.NewRegistry()
	reg.Register("Customer", Customer{})
	reg.Register("Order", Order{})
	reg.Register("OrderLine", OrderLine{})
	return reg
}
