package cmd

import (
	"fmt"

	"spawner-loot/core/database"
	"spawner-loot/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		if err := e.migrate(); err != nil {
			return err
		}

		for _, model := range checks.Models {
			want := checks.ColumnNames(checks.ExpectedColumns(model))
			missing, err := database.MissingColumns(e.db, model.TableName(), want)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("table %s still lacks %v after migration", model.TableName(), missing)
			}
		}
		e.logger.Info("Database migrated", zap.String("driver", e.cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
