package cmd

import (
	"fmt"
	"os"

	"gamegestor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gamegestor",
	Short: "GameGestor service",
	Long: `GameGestor is a personal game library tracker. It keeps a shared game
catalog enriched from the RAWG metadata provider and a per-user library of
tracked entries on top of it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format so CLI failures stay readable outside of a
		// log aggregator.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
