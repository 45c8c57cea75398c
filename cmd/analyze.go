package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cohort-intel/internal/report"
)

var (
	analyzeBatchName string
	analyzeEnrich    bool
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <companies-file>",
	Short: "Run batch analytics over a company collection",
	Long:  "Classifies, scores, and summarizes a company collection: industry and location breakdowns, top performers, trends, and competitive matrices.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		companies, err := loadCompanies(args[0])
		if err != nil {
			return err
		}

		if analyzeEnrich {
			orch, err := newOrchestrator()
			if err != nil {
				return err
			}
			zap.L().Info("enriching before analysis", zap.Int("companies", len(companies)))
			companies = orch.All(ctx, companies, cfg.Enrich.MaxConcurrentCompanies)
		}

		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		name := analyzeBatchName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		analysis := analyzer.Analyze(companies, name)

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		}

		fmt.Print(report.Render(analysis))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeBatchName, "batch", "", "batch name (default derived from filename)")
	analyzeCmd.Flags().BoolVar(&analyzeEnrich, "enrich", false, "deep-enrich companies before analyzing")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit raw JSON instead of the rendered report")
	rootCmd.AddCommand(analyzeCmd)
}
