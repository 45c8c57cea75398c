package analyze

import (
	"sort"
	"strings"

	"github.com/sells-group/cohort-intel/internal/model"
)

// Fixed additive score increments. All signals are independent; there is no
// normalization or weighting beyond these integers.
const (
	scoreDescriptionLength = 2
	scoreQuantSignal       = 3
	scoreEnterprise        = 2
	scoreHotSector         = 1
	scoreHasWebsite        = 1
	scoreHasTeamSize       = 1
	scoreHasLocation       = 1
)

var (
	quantSignals      = []string{"million", "thousand", "%"}
	enterpriseSignals = []string{"enterprise", "b2b", "business"}
	hotSectorSignals  = []string{"ai", "fintech", "health"}
)

// Score computes the heuristic desirability score for one company. The score
// is used only for ranking and is never stored on the record.
func Score(c model.CompanyRecord) int {
	score := 0
	desc := strings.ToLower(c.Description)

	if n := len(c.Description); n > 100 && n < 300 {
		score += scoreDescriptionLength
	}
	if containsAny(desc, quantSignals) {
		score += scoreQuantSignal
	}
	if containsAny(desc, enterpriseSignals) {
		score += scoreEnterprise
	}
	if containsAny(desc, hotSectorSignals) {
		score += scoreHotSector
	}
	if c.Website != "" {
		score += scoreHasWebsite
	}
	if c.TeamSize != "" {
		score += scoreHasTeamSize
	}
	if c.Location != "" {
		score += scoreHasLocation
	}

	return score
}

// RankTop returns the n highest-scoring companies, sorted descending by
// score. The sort is stable, so ties keep input order. Scores are transient
// and stripped from the output (they are never fields on the record).
func RankTop(companies []model.CompanyRecord, n int) []model.CompanyRecord {
	ranked := make([]model.CompanyRecord, len(companies))
	copy(ranked, companies)

	scores := make(map[int]int, len(ranked))
	order := make([]int, len(ranked))
	for i := range ranked {
		scores[i] = Score(ranked[i])
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]model.CompanyRecord, 0, n)
	for _, idx := range order[:n] {
		top = append(top, ranked[idx])
	}
	return top
}

func containsAny(text string, needles []string) bool {
	for _, s := range needles {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
