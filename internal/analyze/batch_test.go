package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cohort-intel/internal/model"
)

func TestAnalyzer_Analyze(t *testing.T) {
	companies := []model.CompanyRecord{
		{Name: "NeuralCo", Description: "machine learning for retailers, recently raised a seed round", Location: "SF", TeamSize: "5-10", Website: "https://neural.co"},
		{Name: "PayFast", Description: "payments for restaurants", Location: "NYC", TeamSize: "15"},
		{Name: "CandleWorks", Description: "artisanal candles", Location: "Austin, TX"},
	}

	analysis := NewAnalyzer().Analyze(companies, "summer-2026")

	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, "summer-2026", analysis.BatchName)
	assert.Equal(t, 3, analysis.TotalCompanies)
	assert.False(t, analysis.GeneratedAt.IsZero())

	// Every company lands in exactly one industry and one location bucket.
	industryTotal := 0
	for _, n := range analysis.IndustryBreakdown {
		industryTotal += n
	}
	assert.Equal(t, 3, industryTotal)

	locationTotal := 0
	for _, n := range analysis.LocationBreakdown {
		locationTotal += n
	}
	assert.Equal(t, 3, locationTotal)

	assert.Equal(t, 1, analysis.IndustryBreakdown[IndustryAIML])
	assert.Equal(t, 1, analysis.IndustryBreakdown[IndustryFintech])
	assert.Equal(t, 1, analysis.IndustryBreakdown[IndustryOther])
	assert.Equal(t, 1, analysis.LocationBreakdown["San Francisco Bay Area"])
	assert.Equal(t, 1, analysis.LocationBreakdown["Austin, TX"])

	// (7.5 + 15) / 2 = 11.25, rounded to 11.
	require.NotNil(t, analysis.AvgTeamSize)
	assert.Equal(t, 11, *analysis.AvgTeamSize)

	assert.Equal(t, 1, analysis.FundedCompanies)
	assert.Equal(t, int64(2_000_000), analysis.EstimatedFunding)

	require.NotEmpty(t, analysis.TopPerformers)
	assert.Equal(t, "NeuralCo", analysis.TopPerformers[0].Name)
	assert.LessOrEqual(t, len(analysis.TopPerformers), 10)
}

func TestAnalyzer_AnalyzeEmpty(t *testing.T) {
	analysis := NewAnalyzer().Analyze(nil, "empty-batch")

	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, 0, analysis.TotalCompanies)
	assert.Empty(t, analysis.IndustryBreakdown)
	assert.Empty(t, analysis.LocationBreakdown)
	assert.Nil(t, analysis.AvgTeamSize)
	assert.Zero(t, analysis.FundedCompanies)
	assert.Zero(t, analysis.EstimatedFunding)
	assert.Empty(t, analysis.TopPerformers)
	assert.Empty(t, analysis.Trends)
	assert.Empty(t, analysis.CompetitiveMatrix)

	// Empty collections still serialize with empty lists, not nulls.
	assert.NotNil(t, analysis.IndustryBreakdown)
	assert.NotNil(t, analysis.TopPerformers)
	assert.NotNil(t, analysis.Trends)
	assert.NotNil(t, analysis.CompetitiveMatrix)
}

func TestAnalyzer_NoParseableTeamSizes(t *testing.T) {
	companies := []model.CompanyRecord{
		{Name: "A", TeamSize: "a few"},
		{Name: "B"},
	}

	analysis := NewAnalyzer().Analyze(companies, "b")
	assert.Nil(t, analysis.AvgTeamSize)
}

func TestAnalyzer_WithIndustryTable(t *testing.T) {
	table := []IndustryRule{
		{Name: "Gaming", Keywords: []string{"game"}},
	}
	companies := []model.CompanyRecord{
		{Name: "PlayCo", Description: "game studio"},
	}

	analysis := NewAnalyzer(WithIndustryTable(table)).Analyze(companies, "b")
	assert.Equal(t, 1, analysis.IndustryBreakdown["Gaming"])
}

func TestAnalyzer_WithMatrixIndustries(t *testing.T) {
	companies := []model.CompanyRecord{
		{Name: "A", Description: "carbon accounting"},
		{Name: "B", Description: "renewable energy forecasting"},
		{Name: "C", Description: "emissions tracking"},
	}

	analysis := NewAnalyzer(WithMatrixIndustries([]string{IndustryClimate})).Analyze(companies, "b")
	require.Len(t, analysis.CompetitiveMatrix, 1)
	assert.Equal(t, IndustryClimate, analysis.CompetitiveMatrix[0].Industry)
}
