package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/cohort-intel/internal/model"
)

var (
	enrichName        string
	enrichWebsite     string
	enrichDescription string
	enrichLocation    string
	enrichTeamSize    string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Deep-enrich a single company",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		orch, err := newOrchestrator()
		if err != nil {
			return err
		}

		company := model.CompanyRecord{
			Name:        enrichName,
			Website:     enrichWebsite,
			Description: enrichDescription,
			Location:    enrichLocation,
			TeamSize:    enrichTeamSize,
		}

		enriched, err := orch.Enrich(ctx, company)
		if err != nil {
			return eris.Wrap(err, "enrich company")
		}

		zap.L().Info("enrichment complete", zap.String("company", enriched.Name))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(enriched)
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichName, "name", "", "company name")
	enrichCmd.Flags().StringVar(&enrichWebsite, "website", "", "company website (required)")
	enrichCmd.Flags().StringVar(&enrichDescription, "description", "", "company description")
	enrichCmd.Flags().StringVar(&enrichLocation, "location", "", "company location")
	enrichCmd.Flags().StringVar(&enrichTeamSize, "team-size", "", "team size text, e.g. \"5-10\"")
	_ = enrichCmd.MarkFlagRequired("website")
	rootCmd.AddCommand(enrichCmd)
}
