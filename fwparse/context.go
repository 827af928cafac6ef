package fwparse

import "time"

// ImportContext carries the values that are constant across every line of
// one job: the timestamp all rows share, and the source-system / batch-id
// tokens the constant value source can substitute into field values.
type ImportContext struct {
	ImportedAtUTC time.Time
	SourceSystem  string
	BatchID       string
}
