package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cobolimport/flatfileimport/internal/fixtures"
	"github.com/cobolimport/flatfileimport/manifest"
	"github.com/cobolimport/flatfileimport/orchestrator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	postgresDSN  string
	sqlserverDSN string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run every job in the manifest",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		layouts, err := m.Layouts()
		if err != nil {
			return err
		}

		db, dialect, err := openDB()
		if err != nil {
			return err
		}

		runner := &orchestrator.Runner{
			Registry: fixtures.NewRegistry(),
			Logger:   logrus.StandardLogger(),
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		for _, job := range m.Jobs {
			lay := layouts[job.LayoutPath]
			runner.Persist = persistFuncFor(db, dialect, job.TargetEntity)
			logrus.WithField("job", job.Name).Info("starting job")
			if err := runner.RunJob(ctx, job, lay); err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
		}
		return nil
	},
}

// openDB picks a backend from --postgres-dsn/--sqlserver-dsn. Neither flag
// given is a valid dry run: openDB returns a nil db, and persistFuncFor
// turns that into a logged no-op rather than a silent one.
func openDB() (*sql.DB, orchestrator.Dialect, error) {
	switch {
	case postgresDSN != "":
		db, err := orchestrator.NewPostgresDB(postgresDSN)
		return db, orchestrator.DialectPostgres, err
	case sqlserverDSN != "":
		db, err := orchestrator.NewSQLServerDB(sqlserverDSN)
		return db, orchestrator.DialectSQLServer, err
	default:
		return nil, "", nil
	}
}

// persistFuncFor inserts each batch into a table named after the target
// entity via orchestrator.InsertBatch. With no DB configured it logs what
// it would have persisted instead of discarding the batch silently.
func persistFuncFor(db *sql.DB, dialect orchestrator.Dialect, targetEntity string) orchestrator.PersistFunc {
	table := strings.ToLower(targetEntity)

	if db == nil {
		return func(_ context.Context, entities []any) error {
			logrus.WithFields(logrus.Fields{"entity": targetEntity, "count": len(entities)}).
				Warn("no --postgres-dsn/--sqlserver-dsn given, dropping parsed batch instead of persisting it")
			return nil
		}
	}

	return func(ctx context.Context, entities []any) error {
		if err := orchestrator.InsertBatch(ctx, db, dialect, table, entities); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"entity": targetEntity, "count": len(entities)}).Info("persisted batch")
		return nil
	}
}

func init() {
	runCmd.Flags().StringVar(&postgresDSN, "postgres-dsn", "", "Postgres DSN to persist parsed entities through")
	runCmd.Flags().StringVar(&sqlserverDSN, "sqlserver-dsn", "", "SQL Server DSN to persist parsed entities through")
	rootCmd.AddCommand(runCmd)
}
