package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/cohort-intel/internal/model"
)

func TestRender(t *testing.T) {
	avg := 11
	a := &model.BatchAnalysis{
		BatchName:      "summer-2026",
		TotalCompanies: 3,
		IndustryBreakdown: map[string]int{
			"AI/ML":   2,
			"Fintech": 1,
		},
		LocationBreakdown: map[string]int{
			"San Francisco Bay Area": 2,
			"New York":               1,
		},
		AvgTeamSize:      &avg,
		FundedCompanies:  2,
		EstimatedFunding: 4_000_000,
		TopPerformers: []model.CompanyRecord{
			{Name: "NeuralCo", Location: "SF"},
			{Name: "PayFast"},
		},
		Trends: []string{"AI/ML dominance: 67% of companies"},
		CompetitiveMatrix: []model.CompetitiveMatrix{
			{
				Industry:        "AI/ML",
				Companies:       []string{"NeuralCo", "DeepStack", "VisionAI"},
				MarketLeader:    "NeuralCo",
				EmergingPlayers: []string{"DeepStack", "VisionAI"},
				Opportunities:   []string{"3 companies are competing directly in AI/ML"},
			},
		},
	}

	out := Render(a)

	assert.Contains(t, out, "# summer-2026")
	assert.Contains(t, out, "Companies analyzed: 3")
	assert.Contains(t, out, "Average team size: 11")
	assert.Contains(t, out, "$4,000,000")
	assert.Contains(t, out, "- AI/ML: 2\n- Fintech: 1")
	assert.Contains(t, out, "1. NeuralCo (SF)")
	assert.Contains(t, out, "2. PayFast")
	assert.Contains(t, out, "- AI/ML dominance: 67% of companies")
	assert.Contains(t, out, "## Competitive Landscape: AI/ML")
	assert.Contains(t, out, "Market leader: NeuralCo")
	assert.Contains(t, out, "Emerging players: DeepStack, VisionAI")
}

func TestRender_Minimal(t *testing.T) {
	out := Render(&model.BatchAnalysis{TotalCompanies: 0})

	assert.Contains(t, out, "# Batch Analysis")
	assert.Contains(t, out, "Companies analyzed: 0")
	assert.NotContains(t, out, "Average team size")
	assert.NotContains(t, out, "Funding signals")
	assert.NotContains(t, out, "## Industries")
	assert.NotContains(t, out, "## Trends")
}

func TestRender_BreakdownOrdering(t *testing.T) {
	a := &model.BatchAnalysis{
		BatchName:      "b",
		TotalCompanies: 4,
		IndustryBreakdown: map[string]int{
			"Fintech": 1,
			"AI/ML":   1,
			"Other":   2,
		},
	}

	out := Render(a)
	assert.Contains(t, out, "- Other: 2\n- AI/ML: 1\n- Fintech: 1")
}
