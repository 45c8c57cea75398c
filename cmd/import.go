package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importOut string

var importCmd = &cobra.Command{
	Use:   "import <companies-file>",
	Short: "Convert a CSV or XLSX company collection to normalized JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		companies, err := loadCompanies(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if importOut != "" {
			f, err := os.Create(importOut)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(companies); err != nil {
			return eris.Wrap(err, "encode companies")
		}

		zap.L().Info("import complete",
			zap.Int("companies", len(companies)),
			zap.String("source", args[0]),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(importCmd)
}
