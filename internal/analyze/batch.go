// Package analyze implements the deterministic batch analytics engine:
// classification, scoring, trend detection, and competitive matrices over
// company collections. Everything here is a pure function of its input and
// safe for concurrent use.
package analyze

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/cohort-intel/internal/model"
)

// topPerformerCount is the ranked top-performer list bound.
const topPerformerCount = 10

// fundingPerCompanyUSD is the fixed per-company multiplier behind the
// order-of-magnitude total funding estimate. Not real financial data.
const fundingPerCompanyUSD = 2_000_000

// fundingSignals marks a company as funded when any appears in its description.
var fundingSignals = []string{"funded", "raised", "series", "investment"}

// Analyzer runs the batch analytics pass. The zero value is not usable; use
// NewAnalyzer.
type Analyzer struct {
	industries       []IndustryRule
	matrixIndustries []string
	topN             int
}

// AnalyzerOption customizes an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithIndustryTable replaces the built-in industry keyword table. Order is
// the classification tie-break order.
func WithIndustryTable(table []IndustryRule) AnalyzerOption {
	return func(a *Analyzer) {
		if len(table) > 0 {
			a.industries = table
		}
	}
}

// WithMatrixIndustries replaces the industries eligible for competitive
// matrices.
func WithMatrixIndustries(industries []string) AnalyzerOption {
	return func(a *Analyzer) {
		if len(industries) > 0 {
			a.matrixIndustries = industries
		}
	}
}

// NewAnalyzer creates a batch analyzer with the default tables.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		industries:       defaultIndustryTable,
		matrixIndustries: defaultMatrixIndustries,
		topN:             topPerformerCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces one BatchAnalysis over an arbitrary-size collection. It
// never errors on well-formed input; an empty collection yields zeroed counts
// and empty lists.
func (a *Analyzer) Analyze(companies []model.CompanyRecord, batchName string) *model.BatchAnalysis {
	analysis := &model.BatchAnalysis{
		ID:                uuid.NewString(),
		BatchName:         batchName,
		TotalCompanies:    len(companies),
		IndustryBreakdown: map[string]int{},
		LocationBreakdown: map[string]int{},
		TopPerformers:     []model.CompanyRecord{},
		Trends:            []string{},
		CompetitiveMatrix: []model.CompetitiveMatrix{},
		GeneratedAt:       time.Now().UTC(),
	}

	if len(companies) == 0 {
		return analysis
	}

	for _, c := range companies {
		analysis.IndustryBreakdown[ClassifyIndustryWith(a.industries, c.Description)]++
		analysis.LocationBreakdown[NormalizeLocation(c.Location)]++
	}

	analysis.AvgTeamSize = averageTeamSize(companies)
	analysis.FundedCompanies = countFunded(companies)
	analysis.EstimatedFunding = int64(analysis.FundedCompanies) * fundingPerCompanyUSD
	analysis.TopPerformers = RankTop(companies, a.topN)
	analysis.Trends = detectTrendsWith(a.industries, companies)
	analysis.CompetitiveMatrix = buildMatricesWith(a.industries, a.matrixIndustries, companies)

	zap.L().Info("analyze: batch complete",
		zap.String("analysis_id", analysis.ID),
		zap.String("batch", batchName),
		zap.Int("companies", analysis.TotalCompanies),
		zap.Int("industries", len(analysis.IndustryBreakdown)),
		zap.Int("trends", len(analysis.Trends)),
		zap.Int("matrices", len(analysis.CompetitiveMatrix)),
	)

	return analysis
}

// averageTeamSize averages the parseable team-size texts, rounded to the
// nearest integer. Returns nil when none parse.
func averageTeamSize(companies []model.CompanyRecord) *int {
	sum := 0.0
	parsed := 0
	for _, c := range companies {
		if v, ok := ParseTeamSize(c.TeamSize); ok {
			sum += v
			parsed++
		}
	}
	if parsed == 0 {
		return nil
	}
	avg := int(math.Round(sum / float64(parsed)))
	return &avg
}

// countFunded counts companies whose description carries a funding signal.
func countFunded(companies []model.CompanyRecord) int {
	count := 0
	for _, c := range companies {
		if containsAny(strings.ToLower(c.Description), fundingSignals) {
			count++
		}
	}
	return count
}
