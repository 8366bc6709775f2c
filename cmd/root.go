package cmd

import (
	"fmt"
	"os"

	"spawner-loot/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spawner-loot",
	Short: "Spawner loot service",
	Long: `spawner-loot accumulates the drops of virtual spawners, pages them for
players, moves them into inventories and siphons, and settles bulk sales.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// console encoding with ISO8601 timestamps reads better on a terminal
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
