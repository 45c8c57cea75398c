package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchOut         string
	batchConcurrency int
	batchLimit       int
)

var batchCmd = &cobra.Command{
	Use:   "batch <companies-file>",
	Short: "Enrich a company collection with a bounded worker pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		companies, err := loadCompanies(args[0])
		if err != nil {
			return err
		}
		if batchLimit > 0 && len(companies) > batchLimit {
			companies = companies[:batchLimit]
		}

		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Enrich.MaxConcurrentCompanies
		}

		zap.L().Info("enriching batch",
			zap.Int("companies", len(companies)),
			zap.Int("concurrency", concurrency),
		)

		enriched := orch.All(ctx, companies, concurrency)

		out := os.Stdout
		if batchOut != "" {
			f, err := os.Create(batchOut)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(enriched)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file (default stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent companies (default from config)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max companies to enrich (0 = all)")
	rootCmd.AddCommand(batchCmd)
}
