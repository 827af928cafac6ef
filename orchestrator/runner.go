package orchestrator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"time"

	"github.com/cobolimport/flatfileimport/fwparse"
	"github.com/cobolimport/flatfileimport/layout"
	"github.com/cobolimport/flatfileimport/manifest"
	"github.com/sirupsen/logrus"
)

// PersistFunc writes one batch of freshly parsed entities to durable
// storage. Supplying nil to Runner.Persist is valid and simply discards
// each batch, which is useful for dry runs.
type PersistFunc func(ctx context.Context, entities []any) error

// Runner drives one manifest job: enumerate its input files, stream their
// lines, parse each one through the core, batch the results, and persist
// them. A Runner holds no per-job state and is reused across jobs.
type Runner struct {
	Registry  *fwparse.Registry
	Persist   PersistFunc
	Logger    logrus.FieldLogger
	BatchSize int
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}
	return logrus.StandardLogger()
}

func (r *Runner) batchSize() int {
	if r.BatchSize > 0 {
		return r.BatchSize
	}
	return 500
}

// RunJob executes one job: a ConfigError aborts the job immediately and is
// returned to the caller; a RecordError is logged (with file, line number,
// and field context) and the offending line is skipped.
func (r *Runner) RunJob(ctx context.Context, job manifest.Job, lay layout.Layout) error {
	entityType, err := r.Registry.Lookup(job.TargetEntity)
	if err != nil {
		return err
	}

	files, err := filepath.Glob(job.InputGlob)
	if err != nil {
		return fmt.Errorf("job %s: bad inputGlob %q: %w", job.Name, job.InputGlob, err)
	}
	sort.Strings(files)

	batchID := job.BatchID
	if batchID == "" {
		batchID = NewBatchID()
	}
	importCtx := fwparse.ImportContext{
		ImportedAtUTC: time.Now().UTC(),
		SourceSystem:  job.SourceSystem,
		BatchID:       batchID,
	}

	var batch []any
	for _, file := range files {
		if err := r.runFile(ctx, job, file, entityType, lay, importCtx, &batch); err != nil {
			return err
		}
	}

	if len(batch) > 0 {
		return r.persist(ctx, batch)
	}
	return nil
}

func (r *Runner) runFile(ctx context.Context, job manifest.Job, file string, entityType reflect.Type, lay layout.Layout, importCtx fwparse.ImportContext, batch *[]any) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("job %s: opening %s: %w", job.Name, file, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		var entity any
		var perr error
		switch job.Mode {
		case manifest.ModeGraph:
			entity, perr = fwparse.ParseGraph(line, entityType, lay, importCtx, r.Registry)
		default:
			entity, perr = fwparse.ParseSingle(line, entityType, lay, importCtx)
		}

		if perr != nil {
			var cfgErr *layout.ConfigError
			if errors.As(perr, &cfgErr) {
				return fmt.Errorf("job %s: %s:%d: fatal configuration error: %w", job.Name, file, lineNo, perr)
			}

			var recErr *fwparse.RecordError
			fields := logrus.Fields{"job": job.Name, "file": file, "line": lineNo}
			if errors.As(perr, &recErr) {
				fields["field"] = recErr.FieldName
				fields["raw"] = recErr.RawText
			}
			r.logger().WithFields(fields).WithError(perr).Warn("skipping malformed line")
			continue
		}

		*batch = append(*batch, entity)
		if len(*batch) >= r.batchSize() {
			if err := r.persist(ctx, *batch); err != nil {
				return fmt.Errorf("job %s: %s:%d: %w", job.Name, file, lineNo, err)
			}
			*batch = (*batch)[:0]
		}
	}

	return scanner.Err()
}

func (r *Runner) persist(ctx context.Context, batch []any) error {
	if r.Persist == nil {
		return nil
	}
	return r.Persist(ctx, batch)
}
