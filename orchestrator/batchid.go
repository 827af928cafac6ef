package orchestrator

import "github.com/gofrs/uuid"

// NewBatchID returns a fresh batch identifier for a job whose manifest
// entry does not override batchId, grounded on the teacher's own
// uuid.Must(uuid.NewV4()).String() call used to name throwaway test
// databases.
func NewBatchID() string {
	return uuid.Must(uuid.NewV4()).String()
}
