package analyze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cohort-intel/internal/model"
)

func repeatCompanies(n int, description, location string) []model.CompanyRecord {
	out := make([]model.CompanyRecord, n)
	for i := range out {
		out[i] = model.CompanyRecord{
			Name:        fmt.Sprintf("Co %d", i),
			Description: description,
			Location:    location,
		}
	}
	return out
}

func TestDetectTrends_IndustryDominance(t *testing.T) {
	// 4 of 20 fintech companies is exactly 20%, above the 15% floor.
	companies := repeatCompanies(16, "handmade furniture", "Austin")
	companies = append(companies, repeatCompanies(4, "payments for freelancers", "Austin")...)

	trends := DetectTrends(companies)
	assert.Contains(t, trends, "Fintech dominance: 20% of companies")
}

func TestDetectTrends_BelowDominanceFloor(t *testing.T) {
	// 2 of 20 is 10%, under the floor, so no fintech line appears.
	companies := repeatCompanies(18, "handmade furniture", "")
	companies = append(companies, repeatCompanies(2, "payments for freelancers", "")...)

	for _, trend := range DetectTrends(companies) {
		assert.NotContains(t, trend, "Fintech")
	}
}

func TestDetectTrends_BuzzwordThreshold(t *testing.T) {
	// 3 mentions meets the floor of max(3, n/10) for small collections.
	companies := []model.CompanyRecord{
		{Description: "automation for warehouses"},
		{Description: "sales automation suite"},
		{Description: "marketing automation tools"},
	}

	trends := DetectTrends(companies)
	assert.Contains(t, trends, `"automation" is a recurring theme (3 mentions)`)
}

func TestDetectTrends_GeographicConcentration(t *testing.T) {
	companies := repeatCompanies(7, "handmade furniture", "SF")
	companies = append(companies, repeatCompanies(3, "handmade furniture", "Berlin")...)

	trends := DetectTrends(companies)
	assert.Contains(t, trends, "Geographic concentration: 70% of companies in San Francisco Bay Area")
}

func TestDetectTrends_CappedAtFive(t *testing.T) {
	// One dominant industry, many recurring buzzwords, one dominant location.
	desc := "platform for automation with analytics, optimization and integration for payments"
	companies := repeatCompanies(10, desc, "NYC")

	trends := DetectTrends(companies)
	require.NotEmpty(t, trends)
	assert.LessOrEqual(t, len(trends), 5)
}

func TestDetectTrends_Empty(t *testing.T) {
	assert.Empty(t, DetectTrends(nil))
	assert.Empty(t, DetectTrends([]model.CompanyRecord{}))
}
