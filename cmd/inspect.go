package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"spawner-loot/core/loot"
	"spawner-loot/feature/spawner"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectPage int

// inspectCmd prints one page of a persisted spawner without starting the server.
var inspectCmd = &cobra.Command{
	Use:   "inspect <spawner-id>",
	Short: "Print a page of a persisted spawner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(true)
		if err != nil {
			return err
		}

		cat, err := e.loadCatalog(ctx)
		if err != nil {
			// stack sizes fall back to the defaults
			e.logger.Warn("Catalog not loaded", zap.Error(err))
		}

		rec, entries, err := spawner.NewRepository(e.db).Load(ctx, args[0])
		if err != nil {
			return err
		}
		acc := loot.New(cat)
		acc.Restore(entries)

		page, ok := acc.Page(inspectPage)
		if !ok {
			return fmt.Errorf("page %d out of range, spawner has %d", inspectPage, acc.TotalPages())
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"id":          rec.ID,
			"kind":        rec.Kind,
			"total_units": acc.TotalUnits(),
			"stacks":      acc.TotalStacks(),
			"page":        page,
		})
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectPage, "page", 1, "Page number, starting at 1")
}
