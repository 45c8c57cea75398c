package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cohort-intel/internal/analyze"
	"github.com/sells-group/cohort-intel/internal/enrich"
	"github.com/sells-group/cohort-intel/internal/extract"
	"github.com/sells-group/cohort-intel/internal/fetcher"
	"github.com/sells-group/cohort-intel/internal/model"
	"github.com/sells-group/cohort-intel/pkg/anthropic"
	"github.com/sells-group/cohort-intel/pkg/firecrawl"
)

// newOrchestrator wires the configured extraction provider into an
// enrichment orchestrator.
func newOrchestrator() (*enrich.Orchestrator, error) {
	var provider extract.Provider

	switch cfg.Provider.Name {
	case "firecrawl":
		if cfg.Firecrawl.Key == "" {
			return nil, eris.New("firecrawl key is required (COHORT_FIRECRAWL_KEY)")
		}
		provider = extract.NewFirecrawlProvider(
			firecrawl.NewClient(cfg.Firecrawl.Key, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL)),
		)
	case "claude":
		if cfg.Anthropic.Key == "" {
			return nil, eris.New("anthropic key is required (COHORT_ANTHROPIC_KEY)")
		}
		provider = extract.NewClaudeProvider(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
	default:
		return nil, eris.Errorf("unknown extraction provider %q", cfg.Provider.Name)
	}

	task := extract.NewTask(provider,
		extract.WithTimeout(time.Duration(cfg.Provider.TimeoutSecs)*time.Second),
		extract.WithRateLimit(cfg.Provider.RateLimitPerSec),
	)
	return enrich.New(task), nil
}

// newAnalyzer builds the batch analyzer, applying a keyword-table override
// when one is configured.
func newAnalyzer() (*analyze.Analyzer, error) {
	var opts []analyze.AnalyzerOption
	if cfg.Analyze.KeywordFile != "" {
		table, err := analyze.LoadIndustryTable(cfg.Analyze.KeywordFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, analyze.WithIndustryTable(table))
	}
	return analyze.NewAnalyzer(opts...), nil
}

// loadCompanies reads a company collection by file extension.
func loadCompanies(path string) ([]model.CompanyRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fetcher.ReadCompaniesCSV(path)
	case ".xlsx":
		return fetcher.ReadCompaniesXLSX(path)
	case ".json":
		return fetcher.ReadCompaniesJSON(path)
	default:
		return nil, eris.Errorf("unsupported input format %q (want .csv, .xlsx, or .json)", filepath.Ext(path))
	}
}
