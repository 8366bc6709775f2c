package cmd

import (
	"context"
	"fmt"

	"spawner-loot/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check storage, catalog, database schema, stored loot and snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), checkAll)
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the catalog object",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkCatalog)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkSchema)
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Compare persisted spawners with their backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkSnapshots)
	},
}

var lootCmd = &cobra.Command{
	Use:   "loot",
	Short: "Check the persisted loot rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkLoot)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, catalogCmd, schemaCmd, lootCmd, snapshotsCmd)
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
}

type checkSet uint8

const (
	checkStructure checkSet = 1 << iota
	checkCatalog
	checkSchema
	checkLoot
	checkSnapshots

	checkAll = checkStructure | checkCatalog | checkSchema | checkLoot | checkSnapshots
)

func runIntegrityChecks(ctx context.Context, set checkSet) error {
	// the full run skips database checks when no database is reachable
	e, err := setup(set == checkSchema || set == checkLoot || set == checkSnapshots)
	if err != nil {
		return err
	}
	logg := e.logger
	svc := integrity.NewService(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, e.db, logg)
	failed := false

	if set&checkStructure != 0 {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag && set == checkStructure:
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.", zap.Strings("created", missing))
		default:
			failed = true
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if set == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if set&checkCatalog != 0 {
		logg.Info("Checking catalog...", zap.String("object", e.cfg.Catalog.Object))
		report, err := svc.CheckCatalog(ctx)
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}
		switch {
		case !report.Present:
			failed = true
			logg.Warn("Catalog object missing", zap.String("object", report.Object))
		case !report.Valid:
			failed = true
			logg.Warn("Catalog object invalid", zap.String("error", report.Error))
		default:
			logg.Info("Catalog is valid.", zap.Int("kinds", report.Kinds))
		}
	}

	if set&checkSchema != 0 && e.db != nil {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Schema matches the models.")
		} else {
			failed = true
			for table, tbl := range report.Tables {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, msg := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", msg))
			}
		}
	}

	if set&checkLoot != 0 && e.db != nil {
		logg.Info("Checking stored loot...")
		report, err := svc.CheckLoot()
		if err != nil {
			return fmt.Errorf("loot check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Stored loot is consistent.", zap.Int("spawners", report.Spawners), zap.Int("rows", report.Rows))
		} else {
			failed = true
			logg.Warn("Stored loot problems",
				zap.Strings("invalid", report.Invalid),
				zap.Strings("orphans", report.Orphans),
				zap.Strings("duplicates", report.Duplicates),
			)
		}
	}

	if set&checkSnapshots != 0 && e.db != nil {
		logg.Info("Checking snapshots...")
		report, err := svc.CheckSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("snapshot check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Every persisted spawner has a snapshot.", zap.Int("snapshots", report.Snapshots))
		} else {
			failed = true
			logg.Warn("Snapshot drift",
				zap.Strings("missing", report.Missing),
				zap.Strings("orphans", report.Orphans),
			)
		}
	}

	if failed {
		return fmt.Errorf("integrity problems found")
	}
	return nil
}
