package cmd

import (
	"spawner-loot/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var backupSpawner string

// backupCmd writes snapshots of persisted spawners to object storage.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write spawner snapshots to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(true)
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, e.store, e.cfg.Storage.Bucket); err != nil {
			return err
		}

		cat, err := e.loadCatalog(ctx)
		if err != nil {
			e.logger.Warn("Catalog not loaded, using defaults", zap.Error(err))
		}
		svc, err := e.spawnerService(ctx, cat, nil, nil)
		if err != nil {
			return err
		}

		if backupSpawner != "" {
			name, err := svc.Backup(ctx, backupSpawner)
			if err != nil {
				return err
			}
			e.logger.Info("Backup written", zap.String("object", name))
			return nil
		}

		names, err := svc.BackupAll(ctx)
		e.logger.Info("Backups written", zap.Int("count", len(names)), zap.String("bucket", e.cfg.Storage.Bucket))
		return err
	},
}

func init() {
	RootCmd.AddCommand(backupCmd)
	backupCmd.Flags().StringVar(&backupSpawner, "spawner", "", "Back up a single spawner")
}
