package model

import "time"

// BatchAnalysis is the aggregate report over one company collection.
// Breakdown counts sum to TotalCompanies per dimension.
type BatchAnalysis struct {
	ID                string              `json:"id"`
	BatchName         string              `json:"batch_name,omitempty"`
	TotalCompanies    int                 `json:"total_companies"`
	IndustryBreakdown map[string]int      `json:"industry_breakdown"`
	LocationBreakdown map[string]int      `json:"location_breakdown"`
	AvgTeamSize       *int                `json:"avg_team_size,omitempty"`
	FundedCompanies   int                 `json:"funded_companies"`
	EstimatedFunding  int64               `json:"estimated_funding_usd"`
	TopPerformers     []CompanyRecord     `json:"top_performers"`
	Trends            []string            `json:"trends"`
	CompetitiveMatrix []CompetitiveMatrix `json:"competitive_matrix"`
	GeneratedAt       time.Time           `json:"generated_at"`
}

// CompetitiveMatrix summarizes head-to-head competition within one industry.
// Emitted only for industries with at least 3 classified members.
type CompetitiveMatrix struct {
	Industry        string   `json:"industry"`
	Companies       []string `json:"companies"`
	MarketLeader    string   `json:"market_leader"`
	EmergingPlayers []string `json:"emerging_players"`
	Opportunities   []string `json:"opportunities"`
}
