package analyze

import (
	"fmt"
	"sort"

	"github.com/sells-group/cohort-intel/internal/model"
)

// matrixMinMembers is the minimum classified members an industry needs before
// a competitive matrix is emitted for it.
const matrixMinMembers = 3

// matrixMaxEmerging bounds the emerging-players list per matrix.
const matrixMaxEmerging = 3

// defaultMatrixIndustries are the industries eligible for competitive
// matrices. Extendable via AnalyzerOption.
var defaultMatrixIndustries = []string{IndustryAIML, IndustryFintech, IndustryHealthcare}

// BuildMatrices groups companies by classified industry and emits a
// competitive matrix for each of the top 3 eligible industries that has at
// least 3 members. The market leader is simply the first member in input
// order; there is no independent leadership heuristic.
func BuildMatrices(companies []model.CompanyRecord) []model.CompetitiveMatrix {
	return buildMatricesWith(defaultIndustryTable, defaultMatrixIndustries, companies)
}

func buildMatricesWith(table []IndustryRule, eligible []string, companies []model.CompanyRecord) []model.CompetitiveMatrix {
	byIndustry := make(map[string][]string)
	for _, c := range companies {
		industry := ClassifyIndustryWith(table, c.Description)
		byIndustry[industry] = append(byIndustry[industry], c.Name)
	}

	// Rank eligible industries by member count, keep the top 3, preserve
	// eligibility-list order on ties.
	ranked := make([]string, 0, len(eligible))
	for _, industry := range eligible {
		if len(byIndustry[industry]) >= matrixMinMembers {
			ranked = append(ranked, industry)
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return len(byIndustry[ranked[a]]) > len(byIndustry[ranked[b]])
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	matrices := []model.CompetitiveMatrix{}
	for _, industry := range ranked {
		members := byIndustry[industry]

		emerging := members[1:]
		if len(emerging) > matrixMaxEmerging {
			emerging = emerging[:matrixMaxEmerging]
		}

		matrices = append(matrices, model.CompetitiveMatrix{
			Industry:        industry,
			Companies:       members,
			MarketLeader:    members[0],
			EmergingPlayers: emerging,
			Opportunities:   opportunityStatements(industry, len(members)),
		})
	}
	return matrices
}

// opportunityStatements returns the three fixed narrative lines for a matrix,
// parameterized by member count and industry name.
func opportunityStatements(industry string, memberCount int) []string {
	return []string{
		fmt.Sprintf("%d companies are competing directly in %s", memberCount, industry),
		fmt.Sprintf("Differentiation opportunity: most %s players target overlapping segments", industry),
		fmt.Sprintf("Partnership or consolidation potential among the %d %s companies", memberCount, industry),
	}
}
