package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cohort-intel/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cohort-intel",
	Short: "Startup cohort enrichment and analytics",
	Long:  "Deep-enriches company records via a structured-extraction provider and runs batch analytics: classification, scoring, trends, competitive matrices.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
